package domain

import (
	"context"
	"errors"
)

// DateLayout is the date-stamp format used across the persisted state
// (lastUpdated, transaction dates, backup filenames).
const DateLayout = "2006-01-02"

// ErrNotFound is returned when a record lookup by identifier finds nothing.
var ErrNotFound = errors.New("inventory: record not found")

// Product represents a tracked product. JSON field names match the
// persisted-state and backup format.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	SKU         string  `json:"sku"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
	MinStock    int     `json:"minStock"`
	Price       float64 `json:"price"`
	Supplier    string  `json:"supplier"`
	Description string  `json:"description,omitempty"`
	LastUpdated string  `json:"lastUpdated"`
}

// Value returns the stock value of the product (stock x unit price).
func (p *Product) Value() float64 {
	return float64(p.Stock) * p.Price
}

// ProductPatch carries a partial update; nil fields are left untouched.
type ProductPatch struct {
	Name        *string
	SKU         *string
	Category    *string
	Stock       *int
	MinStock    *int
	Price       *float64
	Supplier    *string
	Description *string
}

// Apply merges the patch into the product.
func (patch ProductPatch) Apply(p *Product) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.SKU != nil {
		p.SKU = *patch.SKU
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.MinStock != nil {
		p.MinStock = *patch.MinStock
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Supplier != nil {
		p.Supplier = *patch.Supplier
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
}

// ProductRepository defines the contract for product data access.
type ProductRepository interface {
	Products(ctx context.Context) ([]Product, error)
	Product(ctx context.Context, id string) (*Product, error)
	AddProduct(ctx context.Context, product Product) (*Product, error)
	UpdateProduct(ctx context.Context, id string, patch ProductPatch) (bool, error)
	DeleteProduct(ctx context.Context, id string) error
	AdjustStock(ctx context.Context, productID string, quantity int, movement MovementType) error
	LowStock(ctx context.Context) ([]Product, error)
}
