package command

import (
	"context"

	"github.com/tair/book-inventory/internal/inventory/domain"
	"github.com/tair/book-inventory/kafka"
	"github.com/tair/book-inventory/pkg/apperrors"
	"github.com/tair/book-inventory/pkg/logger"
)

// EventPublisher publishes ledger append events. The Kafka publisher
// satisfies it; a nil publisher disables publishing.
type EventPublisher interface {
	PublishTransactionRecorded(ctx context.Context, event kafka.TransactionRecordedEvent) error
}

// RecordTransactionCommand represents the command to append one inventory
// ledger entry
type RecordTransactionCommand struct {
	BookID string
	Delta  int
	Reason string
	Note   string
}

// RecordTransactionHandler handles ledger append command
type RecordTransactionHandler struct {
	repo      domain.TransactionRepository
	publisher EventPublisher
}

// NewRecordTransactionHandler creates a new record transaction handler
func NewRecordTransactionHandler(repo domain.TransactionRepository, publisher EventPublisher) *RecordTransactionHandler {
	return &RecordTransactionHandler{repo: repo, publisher: publisher}
}

// Handle executes the record transaction command. The append itself is
// atomic in the repository; event publishing happens after commit and is
// best effort, a broker failure never rolls back the ledger.
func (h *RecordTransactionHandler) Handle(ctx context.Context, cmd RecordTransactionCommand) (*domain.Transaction, error) {
	fields := apperrors.FieldErrors{}

	if cmd.Delta == 0 {
		fields.Merge("delta_quantity", domain.ErrZeroDelta)
	}
	reason, err := domain.ParseReason(cmd.Reason)
	if err != nil {
		fields.Merge("reason", err)
	}
	if len(cmd.Note) > 255 {
		fields.Add("note", "note must be at most 255 characters")
	}
	if err := fields.Err(); err != nil {
		return nil, err
	}

	entry, err := h.repo.Append(ctx, cmd.BookID, cmd.Delta, reason, cmd.Note)
	if err != nil {
		return nil, err
	}

	if h.publisher != nil {
		event := kafka.TransactionRecordedEvent{
			TransactionID:     entry.ID,
			BookID:            entry.BookID,
			DeltaQuantity:     entry.DeltaQuantity,
			Reason:            string(entry.Reason),
			ResultingQuantity: entry.ResultingQuantity,
		}
		if err := h.publisher.PublishTransactionRecorded(ctx, event); err != nil {
			logger.Error(ctx).
				Err(err).
				Str("transaction_id", entry.ID).
				Msg("Failed to publish transaction event")
		}
	}

	return entry, nil
}
