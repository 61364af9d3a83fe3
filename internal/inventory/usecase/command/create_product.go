package command

import (
	"context"
	"fmt"

	"github.com/adilbekov/stockledger/internal/inventory/domain"
)

// CreateProductCommand represents the command to create a new product.
type CreateProductCommand struct {
	Name        string
	SKU         string
	Category    string
	Stock       int
	MinStock    int
	Price       float64
	Supplier    string
	Description string
}

// CreateProductHandler handles product creation.
type CreateProductHandler struct {
	repo domain.ProductRepository
}

// NewCreateProductHandler creates a new create product handler.
func NewCreateProductHandler(repo domain.ProductRepository) *CreateProductHandler {
	return &CreateProductHandler{repo: repo}
}

// Handle executes the create product command.
func (h *CreateProductHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if cmd.SKU == "" {
		return nil, fmt.Errorf("SKU is required")
	}
	if cmd.Stock < 0 {
		return nil, fmt.Errorf("stock cannot be negative")
	}
	if cmd.MinStock < 0 {
		return nil, fmt.Errorf("minimum stock cannot be negative")
	}
	if cmd.Price < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}

	product, err := h.repo.AddProduct(ctx, domain.Product{
		Name:        cmd.Name,
		SKU:         cmd.SKU,
		Category:    cmd.Category,
		Stock:       cmd.Stock,
		MinStock:    cmd.MinStock,
		Price:       cmd.Price,
		Supplier:    cmd.Supplier,
		Description: cmd.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}
