package query

import (
	"context"
	"fmt"

	"github.com/adilbekov/stockledger/internal/inventory/domain"
)

// ListTransactionsQuery lists transactions newest-first with optional
// filters. Limit caps the result after filtering; zero means no cap.
type ListTransactionsQuery struct {
	Type      domain.MovementType
	ProductID string
	Limit     int
}

// ListTransactionsHandler handles the list transactions query.
type ListTransactionsHandler struct {
	repo domain.TransactionRepository
}

// NewListTransactionsHandler creates a new list transactions handler.
func NewListTransactionsHandler(repo domain.TransactionRepository) *ListTransactionsHandler {
	return &ListTransactionsHandler{repo: repo}
}

// Handle executes the list transactions query.
func (h *ListTransactionsHandler) Handle(ctx context.Context, q ListTransactionsQuery) ([]domain.Transaction, error) {
	transactions, err := h.repo.Transactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	filtered := []domain.Transaction{}
	for _, tx := range transactions {
		if q.Type != "" && tx.Type != q.Type {
			continue
		}
		if q.ProductID != "" && tx.ProductID != q.ProductID {
			continue
		}
		filtered = append(filtered, tx)
		if q.Limit > 0 && len(filtered) == q.Limit {
			break
		}
	}
	return filtered, nil
}
