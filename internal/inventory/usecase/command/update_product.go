package command

import (
	"context"
	"fmt"

	"github.com/adilbekov/stockledger/internal/inventory/domain"
)

// UpdateProductCommand represents a partial product update. Nil patch
// fields are left as they are.
type UpdateProductCommand struct {
	ID    string
	Patch domain.ProductPatch
}

// UpdateProductHandler handles product updates.
type UpdateProductHandler struct {
	repo domain.ProductRepository
}

// NewUpdateProductHandler creates a new update product handler.
func NewUpdateProductHandler(repo domain.ProductRepository) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo}
}

// Handle executes the update product command.
func (h *UpdateProductHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*domain.Product, error) {
	if cmd.ID == "" {
		return nil, fmt.Errorf("product id is required")
	}
	if cmd.Patch.Stock != nil && *cmd.Patch.Stock < 0 {
		return nil, fmt.Errorf("stock cannot be negative")
	}
	if cmd.Patch.MinStock != nil && *cmd.Patch.MinStock < 0 {
		return nil, fmt.Errorf("minimum stock cannot be negative")
	}
	if cmd.Patch.Price != nil && *cmd.Patch.Price < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}

	found, err := h.repo.UpdateProduct(ctx, cmd.ID, cmd.Patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	if !found {
		return nil, ErrProductNotFound
	}

	return h.repo.Product(ctx, cmd.ID)
}
