package command

import (
	"context"
	"fmt"

	"github.com/adilbekov/stockledger/internal/inventory/domain"
)

// DeleteProductCommand represents the command to delete a product.
// Deleting an absent identifier is not an error.
type DeleteProductCommand struct {
	ID string
}

// DeleteProductHandler handles product deletion.
type DeleteProductHandler struct {
	repo domain.ProductRepository
}

// NewDeleteProductHandler creates a new delete product handler.
func NewDeleteProductHandler(repo domain.ProductRepository) *DeleteProductHandler {
	return &DeleteProductHandler{repo: repo}
}

// Handle executes the delete product command.
func (h *DeleteProductHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if cmd.ID == "" {
		return fmt.Errorf("product id is required")
	}
	if err := h.repo.DeleteProduct(ctx, cmd.ID); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
