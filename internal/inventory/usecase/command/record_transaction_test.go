package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/tair/book-inventory/internal/catalog/domain"
	"github.com/tair/book-inventory/internal/inventory/domain"
	"github.com/tair/book-inventory/kafka"
	"github.com/tair/book-inventory/pkg/apperrors"
)

// fakeLedger mirrors the repository's atomic append contract in memory.
type fakeLedger struct {
	quantities map[string]int
	entries    []domain.Transaction
}

func newFakeLedger(quantities map[string]int) *fakeLedger {
	return &fakeLedger{quantities: quantities}
}

func (f *fakeLedger) Append(_ context.Context, bookID string, delta int, reason domain.Reason, note string) (*domain.Transaction, error) {
	current, ok := f.quantities[bookID]
	if !ok {
		return nil, catalog.ErrBookNotFound
	}
	next, err := domain.Apply(current, delta)
	if err != nil {
		return nil, err
	}
	entry := domain.Transaction{
		ID:                "txn-" + string(rune('a'+len(f.entries))),
		BookID:            bookID,
		DeltaQuantity:     delta,
		Reason:            reason,
		Note:              note,
		ResultingQuantity: next,
	}
	f.entries = append(f.entries, entry)
	f.quantities[bookID] = next
	return &entry, nil
}

func (f *fakeLedger) FindByID(_ context.Context, id string) (*domain.Transaction, error) {
	for i := range f.entries {
		if f.entries[i].ID == id {
			return &f.entries[i], nil
		}
	}
	return nil, domain.ErrTransactionNotFound
}

func (f *fakeLedger) List(_ context.Context, query domain.TransactionQuery) ([]domain.Transaction, int64, error) {
	var out []domain.Transaction
	for _, e := range f.entries {
		if query.BookID != "" && e.BookID != query.BookID {
			continue
		}
		if query.Reason != "" && e.Reason != query.Reason {
			continue
		}
		out = append(out, e)
	}
	return out, int64(len(out)), nil
}

func (f *fakeLedger) CountByBook(_ context.Context, bookID string) (int64, error) {
	var n int64
	for _, e := range f.entries {
		if e.BookID == bookID {
			n++
		}
	}
	return n, nil
}

func (f *fakeLedger) BookExists(_ context.Context, bookID string) (bool, error) {
	_, ok := f.quantities[bookID]
	return ok, nil
}

var _ domain.TransactionRepository = (*fakeLedger)(nil)

type fakePublisher struct {
	events []kafka.TransactionRecordedEvent
	err    error
}

func (p *fakePublisher) PublishTransactionRecorded(_ context.Context, event kafka.TransactionRecordedEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func TestRecordTransactionRunningSum(t *testing.T) {
	ledger := newFakeLedger(map[string]int{"book-1": 0})
	handler := NewRecordTransactionHandler(ledger, nil)
	ctx := context.Background()

	first, err := handler.Handle(ctx, RecordTransactionCommand{
		BookID: "book-1", Delta: 10, Reason: "PURCHASE",
	})
	require.NoError(t, err)
	assert.Equal(t, 10, first.ResultingQuantity)

	second, err := handler.Handle(ctx, RecordTransactionCommand{
		BookID: "book-1", Delta: -3, Reason: "SALE", Note: "walk-in sale",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, second.ResultingQuantity)
	assert.Equal(t, 7, ledger.quantities["book-1"])
}

func TestRecordTransactionNeverGoesNegative(t *testing.T) {
	ledger := newFakeLedger(map[string]int{"book-1": 0})
	handler := NewRecordTransactionHandler(ledger, nil)
	ctx := context.Background()

	_, err := handler.Handle(ctx, RecordTransactionCommand{
		BookID: "book-1", Delta: 10, Reason: "PURCHASE",
	})
	require.NoError(t, err)

	_, err = handler.Handle(ctx, RecordTransactionCommand{
		BookID: "book-1", Delta: -15, Reason: "SALE",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNegativeStock))
	assert.Equal(t, apperrors.KindBadRequest, apperrors.KindOf(err))

	// The failed append left no trace: one entry, quantity still 10.
	assert.Len(t, ledger.entries, 1)
	assert.Equal(t, 10, ledger.quantities["book-1"])
}

func TestRecordTransactionRejectsZeroDelta(t *testing.T) {
	ledger := newFakeLedger(map[string]int{"book-1": 5})
	handler := NewRecordTransactionHandler(ledger, nil)

	_, err := handler.Handle(context.Background(), RecordTransactionCommand{
		BookID: "book-1", Delta: 0, Reason: "ADJUSTMENT",
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	assert.Empty(t, ledger.entries)
}

func TestRecordTransactionRejectsUnknownReason(t *testing.T) {
	ledger := newFakeLedger(map[string]int{"book-1": 5})
	handler := NewRecordTransactionHandler(ledger, nil)

	_, err := handler.Handle(context.Background(), RecordTransactionCommand{
		BookID: "book-1", Delta: 1, Reason: "GIFT",
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestRecordTransactionNormalizesReasonCase(t *testing.T) {
	ledger := newFakeLedger(map[string]int{"book-1": 0})
	handler := NewRecordTransactionHandler(ledger, nil)

	entry, err := handler.Handle(context.Background(), RecordTransactionCommand{
		BookID: "book-1", Delta: 2, Reason: "purchase",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ReasonPurchase, entry.Reason)
}

func TestRecordTransactionUnknownBook(t *testing.T) {
	ledger := newFakeLedger(map[string]int{})
	handler := NewRecordTransactionHandler(ledger, nil)

	_, err := handler.Handle(context.Background(), RecordTransactionCommand{
		BookID: "missing", Delta: 1, Reason: "PURCHASE",
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestRecordTransactionPublishesEvent(t *testing.T) {
	ledger := newFakeLedger(map[string]int{"book-1": 0})
	publisher := &fakePublisher{}
	handler := NewRecordTransactionHandler(ledger, publisher)

	entry, err := handler.Handle(context.Background(), RecordTransactionCommand{
		BookID: "book-1", Delta: 4, Reason: "PURCHASE",
	})
	require.NoError(t, err)

	require.Len(t, publisher.events, 1)
	event := publisher.events[0]
	assert.Equal(t, entry.ID, event.TransactionID)
	assert.Equal(t, "book-1", event.BookID)
	assert.Equal(t, 4, event.DeltaQuantity)
	assert.Equal(t, 4, event.ResultingQuantity)
}

func TestRecordTransactionPublishFailureDoesNotFail(t *testing.T) {
	ledger := newFakeLedger(map[string]int{"book-1": 0})
	publisher := &fakePublisher{err: errors.New("broker down")}
	handler := NewRecordTransactionHandler(ledger, publisher)

	entry, err := handler.Handle(context.Background(), RecordTransactionCommand{
		BookID: "book-1", Delta: 4, Reason: "PURCHASE",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, entry.ResultingQuantity)
}
