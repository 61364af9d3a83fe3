package query

import (
	"context"
	"fmt"

	"github.com/adilbekov/stockledger/internal/inventory/domain"
)

// LowStockQuery lists the products at or below their reorder threshold.
type LowStockQuery struct{}

// LowStockHandler handles the low stock query.
type LowStockHandler struct {
	repo domain.ProductRepository
}

// NewLowStockHandler creates a new low stock handler.
func NewLowStockHandler(repo domain.ProductRepository) *LowStockHandler {
	return &LowStockHandler{repo: repo}
}

// Handle executes the low stock query.
func (h *LowStockHandler) Handle(ctx context.Context, _ LowStockQuery) ([]domain.Product, error) {
	products, err := h.repo.LowStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock products: %w", err)
	}
	return products, nil
}
