package query

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/adilbekov/stockledger/internal/inventory/domain"
)

// GetReportQuery builds the report-page summary.
type GetReportQuery struct{}

// CategorySummary aggregates a single category.
type CategorySummary struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Value    float64 `json:"value"`
}

// MovementSummary counts movements of one type over the activity window.
type MovementSummary struct {
	Count         int `json:"count"`
	TotalQuantity int `json:"totalQuantity"`
}

// ProductValue names a product together with its stock value.
type ProductValue struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// ReportSummary is the full report: category distribution, last-7-days
// activity and the top products by stock value.
type ReportSummary struct {
	Categories  []CategorySummary `json:"categories"`
	StockIn     MovementSummary   `json:"stockIn"`
	StockOut    MovementSummary   `json:"stockOut"`
	TopProducts []ProductValue    `json:"topProducts"`
}

// GetReportHandler handles the report summary query.
type GetReportHandler struct {
	products     domain.ProductRepository
	transactions domain.TransactionRepository
	now          func() time.Time
}

// NewGetReportHandler creates a new report handler.
func NewGetReportHandler(products domain.ProductRepository, transactions domain.TransactionRepository) *GetReportHandler {
	return &GetReportHandler{
		products:     products,
		transactions: transactions,
		now:          time.Now,
	}
}

// WithClock overrides the time source. Used by tests.
func (h *GetReportHandler) WithClock(now func() time.Time) *GetReportHandler {
	h.now = now
	return h
}

// Handle executes the report summary query.
func (h *GetReportHandler) Handle(ctx context.Context, _ GetReportQuery) (*ReportSummary, error) {
	products, err := h.products.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	transactions, err := h.transactions.Transactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	summary := &ReportSummary{
		Categories:  categoryDistribution(products),
		TopProducts: topByValue(products, 5),
	}

	weekAgo := h.now().AddDate(0, 0, -7)
	for _, tx := range transactions {
		date, err := time.Parse(domain.DateLayout, tx.Date)
		if err != nil || date.Before(weekAgo) {
			continue
		}
		switch tx.Type {
		case domain.MovementIn:
			summary.StockIn.Count++
			summary.StockIn.TotalQuantity += tx.Quantity
		case domain.MovementOut:
			summary.StockOut.Count++
			summary.StockOut.TotalQuantity += tx.Quantity
		}
	}

	return summary, nil
}

func categoryDistribution(products []domain.Product) []CategorySummary {
	byCategory := make(map[string]*CategorySummary)
	for _, p := range products {
		agg, ok := byCategory[p.Category]
		if !ok {
			agg = &CategorySummary{Category: p.Category}
			byCategory[p.Category] = agg
		}
		agg.Count++
		agg.Value += p.Value()
	}

	categories := make([]CategorySummary, 0, len(byCategory))
	for _, agg := range byCategory {
		categories = append(categories, *agg)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Category < categories[j].Category
	})
	return categories
}

func topByValue(products []domain.Product, n int) []ProductValue {
	values := make([]ProductValue, 0, len(products))
	for _, p := range products {
		values = append(values, ProductValue{ID: p.ID, Name: p.Name, Value: p.Value()})
	}
	sort.SliceStable(values, func(i, j int) bool {
		return values[i].Value > values[j].Value
	})
	if len(values) > n {
		values = values[:n]
	}
	return values
}
