package command

import (
	"context"
	"fmt"

	"github.com/adilbekov/stockledger/internal/inventory/domain"
)

// CreateSupplierCommand represents the command to add a supplier.
type CreateSupplierCommand struct {
	Name    string
	Contact string
	Email   string
	Phone   string
	Address string
}

// SaveSuppliersCommand overwrites the whole supplier collection.
type SaveSuppliersCommand struct {
	Suppliers []domain.Supplier
}

// SupplierHandler handles supplier mutations.
type SupplierHandler struct {
	repo domain.SupplierRepository
}

// NewSupplierHandler creates a new supplier handler.
func NewSupplierHandler(repo domain.SupplierRepository) *SupplierHandler {
	return &SupplierHandler{repo: repo}
}

// HandleCreate executes the create supplier command.
func (h *SupplierHandler) HandleCreate(ctx context.Context, cmd CreateSupplierCommand) (*domain.Supplier, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("supplier name is required")
	}

	supplier, err := h.repo.AddSupplier(ctx, domain.Supplier{
		Name:    cmd.Name,
		Contact: cmd.Contact,
		Email:   cmd.Email,
		Phone:   cmd.Phone,
		Address: cmd.Address,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}
	return supplier, nil
}

// HandleSave executes the save suppliers command.
func (h *SupplierHandler) HandleSave(ctx context.Context, cmd SaveSuppliersCommand) error {
	if err := h.repo.SaveSuppliers(ctx, cmd.Suppliers); err != nil {
		return fmt.Errorf("failed to save suppliers: %w", err)
	}
	return nil
}
