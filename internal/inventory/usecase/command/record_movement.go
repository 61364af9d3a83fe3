package command

import (
	"context"
	"fmt"

	"github.com/adilbekov/stockledger/internal/inventory/domain"
	"github.com/adilbekov/stockledger/kafka"
	"github.com/adilbekov/stockledger/pkg/logger"
)

// RecordMovementCommand represents an IN or OUT stock movement. Actor is
// the user recording it.
type RecordMovementCommand struct {
	ProductID string
	Type      domain.MovementType
	Quantity  int
	Notes     string
	Actor     string
}

// EventPublisher publishes stock movement events. A nil publisher disables
// publishing.
type EventPublisher interface {
	PublishStockMovement(ctx context.Context, event kafka.StockMovementEvent) error
}

// RecordMovementHandler validates and records stock movements. The stock
// floor check for OUT movements lives here, before the transaction is
// recorded: the store's AdjustStock applies whatever it is told.
type RecordMovementHandler struct {
	products     domain.ProductRepository
	transactions domain.TransactionRepository
	publisher    EventPublisher
}

// NewRecordMovementHandler creates a new record movement handler.
func NewRecordMovementHandler(
	products domain.ProductRepository,
	transactions domain.TransactionRepository,
	publisher EventPublisher,
) *RecordMovementHandler {
	return &RecordMovementHandler{
		products:     products,
		transactions: transactions,
		publisher:    publisher,
	}
}

// Handle executes the record movement command.
func (h *RecordMovementHandler) Handle(ctx context.Context, cmd RecordMovementCommand) (*domain.Transaction, error) {
	if cmd.ProductID == "" {
		return nil, fmt.Errorf("product id is required")
	}
	if !cmd.Type.Valid() {
		return nil, fmt.Errorf("movement type must be IN or OUT")
	}
	if cmd.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}
	if cmd.Actor == "" {
		return nil, fmt.Errorf("actor is required")
	}

	product, err := h.products.Product(ctx, cmd.ProductID)
	if err != nil {
		return nil, ErrProductNotFound
	}

	if cmd.Type == domain.MovementOut && cmd.Quantity > product.Stock {
		return nil, fmt.Errorf("%w: %d requested, %d available",
			ErrInsufficientStock, cmd.Quantity, product.Stock)
	}

	tx, err := h.transactions.AddTransaction(ctx, domain.Transaction{
		ProductID:   cmd.ProductID,
		ProductName: product.Name,
		Type:        cmd.Type,
		Quantity:    cmd.Quantity,
		Notes:       cmd.Notes,
		User:        cmd.Actor,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	if err := h.products.AdjustStock(ctx, cmd.ProductID, cmd.Quantity, cmd.Type); err != nil {
		return nil, fmt.Errorf("failed to adjust stock: %w", err)
	}

	if h.publisher != nil {
		event := kafka.StockMovementEvent{
			ProductID:   cmd.ProductID,
			ProductName: product.Name,
			Movement:    string(cmd.Type),
			Quantity:    cmd.Quantity,
			Actor:       cmd.Actor,
		}
		if err := h.publisher.PublishStockMovement(ctx, event); err != nil {
			// The movement is already persisted; a lost event is not
			// worth failing the command over.
			logger.Warn(ctx).Err(err).
				Str("product_id", cmd.ProductID).
				Msg("Failed to publish stock movement event")
		}
	}

	return tx, nil
}
