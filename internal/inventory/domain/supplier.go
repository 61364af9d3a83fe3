package domain

import "context"

// Supplier represents a product supplier.
type Supplier struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// SupplierRepository defines the contract for supplier data access.
// SaveSuppliers replaces the whole collection.
type SupplierRepository interface {
	Suppliers(ctx context.Context) ([]Supplier, error)
	AddSupplier(ctx context.Context, supplier Supplier) (*Supplier, error)
	SaveSuppliers(ctx context.Context, suppliers []Supplier) error
}
