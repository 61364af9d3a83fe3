package query

import (
	"context"

	"github.com/adilbekov/stockledger/internal/inventory/domain"
)

// GetProductQuery fetches a single product by identifier.
type GetProductQuery struct {
	ID string
}

// GetProductHandler handles the get product query.
type GetProductHandler struct {
	repo domain.ProductRepository
}

// NewGetProductHandler creates a new get product handler.
func NewGetProductHandler(repo domain.ProductRepository) *GetProductHandler {
	return &GetProductHandler{repo: repo}
}

// Handle executes the get product query.
func (h *GetProductHandler) Handle(ctx context.Context, q GetProductQuery) (*domain.Product, error) {
	return h.repo.Product(ctx, q.ID)
}
