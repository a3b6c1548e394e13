package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tair/book-inventory/internal/inventory/domain"
)

var tracer = otel.Tracer("inventory-repository")

// GormTransactionRepositoryWithTracing wraps GormTransactionRepository with tracing
type GormTransactionRepositoryWithTracing struct {
	inner *GormTransactionRepository
}

// NewGormTransactionRepositoryWithTracing creates a new repository with tracing
func NewGormTransactionRepositoryWithTracing(db *gorm.DB) *GormTransactionRepositoryWithTracing {
	return &GormTransactionRepositoryWithTracing{
		inner: NewGormTransactionRepository(db),
	}
}

func (r *GormTransactionRepositoryWithTracing) AutoMigrate() error {
	return r.inner.AutoMigrate()
}

// Append with tracing
func (r *GormTransactionRepositoryWithTracing) Append(ctx context.Context, bookID string, delta int, reason domain.Reason, note string) (*domain.Transaction, error) {
	ctx, span := tracer.Start(ctx, "repository.Append",
		trace.WithAttributes(
			attribute.String("transaction.book_id", bookID),
			attribute.Int("transaction.delta_quantity", delta),
			attribute.String("transaction.reason", string(reason)),
		),
	)
	defer span.End()

	entry, err := r.inner.Append(ctx, bookID, delta, reason, note)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("transaction.id", entry.ID),
		attribute.Int("transaction.resulting_quantity", entry.ResultingQuantity),
	)
	return entry, nil
}

// FindByID with tracing
func (r *GormTransactionRepositoryWithTracing) FindByID(ctx context.Context, id string) (*domain.Transaction, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(
			attribute.String("transaction.id", id),
		),
	)
	defer span.End()

	entry, err := r.inner.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("transaction.book_id", entry.BookID),
		attribute.String("transaction.reason", string(entry.Reason)),
	)
	return entry, nil
}

// List with tracing
func (r *GormTransactionRepositoryWithTracing) List(ctx context.Context, query domain.TransactionQuery) ([]domain.Transaction, int64, error) {
	ctx, span := tracer.Start(ctx, "repository.List",
		trace.WithAttributes(
			attribute.Int("query.page", query.Page.Number),
			attribute.Int("query.limit", query.Page.Limit),
		),
	)
	defer span.End()

	entries, total, err := r.inner.List(ctx, query)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, 0, err
	}

	span.SetAttributes(attribute.Int("result.count", len(entries)))
	return entries, total, err
}

// CountByBook with tracing
func (r *GormTransactionRepositoryWithTracing) CountByBook(ctx context.Context, bookID string) (int64, error) {
	ctx, span := tracer.Start(ctx, "repository.CountByBook",
		trace.WithAttributes(
			attribute.String("transaction.book_id", bookID),
		),
	)
	defer span.End()

	count, err := r.inner.CountByBook(ctx, bookID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	span.SetAttributes(attribute.Int64("result.count", count))
	return count, nil
}

// BookExists with tracing
func (r *GormTransactionRepositoryWithTracing) BookExists(ctx context.Context, bookID string) (bool, error) {
	ctx, span := tracer.Start(ctx, "repository.BookExists",
		trace.WithAttributes(
			attribute.String("transaction.book_id", bookID),
		),
	)
	defer span.End()

	exists, err := r.inner.BookExists(ctx, bookID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return false, err
	}

	span.SetAttributes(attribute.Bool("result.exists", exists))
	return exists, nil
}
