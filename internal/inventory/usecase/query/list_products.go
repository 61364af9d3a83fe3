package query

import (
	"context"
	"fmt"
	"strings"

	"github.com/adilbekov/stockledger/internal/inventory/domain"
)

// ListProductsQuery lists products with optional filters: category,
// free-text search over name and SKU, and stock-status severity.
type ListProductsQuery struct {
	Category string
	Search   string
	Severity domain.Severity
}

// ListProductsHandler handles the list products query.
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler.
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query.
func (h *ListProductsHandler) Handle(ctx context.Context, q ListProductsQuery) ([]domain.Product, error) {
	products, err := h.repo.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	if q.Category == "" && q.Search == "" && q.Severity == "" {
		return products, nil
	}

	search := strings.ToLower(q.Search)
	filtered := []domain.Product{}
	for _, p := range products {
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.SKU), search) {
			continue
		}
		if q.Severity != "" && domain.Classify(p.Stock, p.MinStock).Severity != q.Severity {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered, nil
}
