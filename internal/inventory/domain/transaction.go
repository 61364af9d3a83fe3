package domain

import "context"

// MovementType is the direction of a stock transaction.
type MovementType string

const (
	MovementIn  MovementType = "IN"
	MovementOut MovementType = "OUT"
)

// Valid reports whether the movement type is one of IN or OUT.
func (m MovementType) Valid() bool {
	return m == MovementIn || m == MovementOut
}

// Transaction records a single stock movement. ProductName is denormalized
// at creation time so the history stays readable after a product is deleted.
type Transaction struct {
	ID          string       `json:"id"`
	ProductID   string       `json:"productId"`
	ProductName string       `json:"productName"`
	Type        MovementType `json:"type"`
	Quantity    int          `json:"quantity"`
	Date        string       `json:"date"`
	Notes       string       `json:"notes,omitempty"`
	User        string       `json:"user"`
}

// TransactionRepository defines the contract for transaction data access.
// Transactions returns the collection newest-first.
type TransactionRepository interface {
	Transactions(ctx context.Context) ([]Transaction, error)
	AddTransaction(ctx context.Context, tx Transaction) (*Transaction, error)
}
