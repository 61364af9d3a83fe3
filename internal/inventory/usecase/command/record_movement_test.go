package command_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adilbekov/stockledger/internal/inventory/domain"
	"github.com/adilbekov/stockledger/internal/inventory/store"
	"github.com/adilbekov/stockledger/internal/inventory/usecase/command"
	"github.com/adilbekov/stockledger/kafka"
	"github.com/adilbekov/stockledger/pkg/kv"
)

type capturingPublisher struct {
	events []kafka.StockMovementEvent
}

func (p *capturingPublisher) PublishStockMovement(_ context.Context, event kafka.StockMovementEvent) error {
	p.events = append(p.events, event)
	return nil
}

func newMovementFixture(t *testing.T) (*store.Store, *capturingPublisher, *command.RecordMovementHandler) {
	t.Helper()

	s, err := store.Open(context.Background(), kv.NewMemoryStore(),
		store.WithClock(func() time.Time {
			return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
		}))
	require.NoError(t, err)

	publisher := &capturingPublisher{}
	return s, publisher, command.NewRecordMovementHandler(s, s, publisher)
}

func TestRecordMovementIn(t *testing.T) {
	ctx := context.Background()
	s, publisher, handler := newMovementFixture(t)

	tx, err := handler.Handle(ctx, command.RecordMovementCommand{
		ProductID: "P001",
		Type:      domain.MovementIn,
		Quantity:  10,
		Notes:     "Restock from supplier",
		Actor:     "warehouse@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "T005", tx.ID)
	assert.Equal(t, "Laptop Pro 15", tx.ProductName)
	assert.Equal(t, "warehouse@example.com", tx.User)

	p, err := s.Product(ctx, "P001")
	require.NoError(t, err)
	assert.Equal(t, 35, p.Stock)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, "P001", publisher.events[0].ProductID)
	assert.Equal(t, "IN", publisher.events[0].Movement)
	assert.Equal(t, 10, publisher.events[0].Quantity)
}

func TestRecordMovementOutWithinStock(t *testing.T) {
	ctx := context.Background()
	s, _, handler := newMovementFixture(t)

	_, err := handler.Handle(ctx, command.RecordMovementCommand{
		ProductID: "P001",
		Type:      domain.MovementOut,
		Quantity:  25,
		Actor:     "sales@example.com",
	})
	require.NoError(t, err)

	p, err := s.Product(ctx, "P001")
	require.NoError(t, err)
	assert.Equal(t, 0, p.Stock, "an OUT for the entire stock is allowed")
}

func TestRecordMovementOutInsufficientStock(t *testing.T) {
	ctx := context.Background()
	s, publisher, handler := newMovementFixture(t)

	_, err := handler.Handle(ctx, command.RecordMovementCommand{
		ProductID: "P001",
		Type:      domain.MovementOut,
		Quantity:  30,
		Actor:     "sales@example.com",
	})
	assert.ErrorIs(t, err, command.ErrInsufficientStock)

	// Nothing was persisted.
	p, err := s.Product(ctx, "P001")
	require.NoError(t, err)
	assert.Equal(t, 25, p.Stock)

	transactions, err := s.Transactions(ctx)
	require.NoError(t, err)
	assert.Len(t, transactions, 4)
	assert.Empty(t, publisher.events)
}

func TestRecordMovementUnknownProduct(t *testing.T) {
	_, _, handler := newMovementFixture(t)

	_, err := handler.Handle(context.Background(), command.RecordMovementCommand{
		ProductID: "P999",
		Type:      domain.MovementIn,
		Quantity:  1,
		Actor:     "ops@example.com",
	})
	assert.ErrorIs(t, err, command.ErrProductNotFound)
}

func TestRecordMovementValidation(t *testing.T) {
	_, _, handler := newMovementFixture(t)
	ctx := context.Background()

	cases := []struct {
		name string
		cmd  command.RecordMovementCommand
	}{
		{"missing product id", command.RecordMovementCommand{Type: domain.MovementIn, Quantity: 1, Actor: "a"}},
		{"invalid type", command.RecordMovementCommand{ProductID: "P001", Type: "SIDEWAYS", Quantity: 1, Actor: "a"}},
		{"zero quantity", command.RecordMovementCommand{ProductID: "P001", Type: domain.MovementIn, Actor: "a"}},
		{"negative quantity", command.RecordMovementCommand{ProductID: "P001", Type: domain.MovementIn, Quantity: -5, Actor: "a"}},
		{"missing actor", command.RecordMovementCommand{ProductID: "P001", Type: domain.MovementIn, Quantity: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := handler.Handle(ctx, tc.cmd)
			assert.Error(t, err)
		})
	}
}

func TestRecordMovementWithoutPublisher(t *testing.T) {
	ctx := context.Background()

	s, err := store.Open(ctx, kv.NewMemoryStore())
	require.NoError(t, err)
	handler := command.NewRecordMovementHandler(s, s, nil)

	_, err = handler.Handle(ctx, command.RecordMovementCommand{
		ProductID: "P002",
		Type:      domain.MovementIn,
		Quantity:  3,
		Actor:     "ops@example.com",
	})
	assert.NoError(t, err)
}
