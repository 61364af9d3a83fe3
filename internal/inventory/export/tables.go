package export

import (
	"sort"
	"strconv"
	"strings"

	"github.com/adilbekov/stockledger/internal/inventory/domain"
)

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', 2, 64)
}

// ProductsTable lists every product field, one row per product.
func ProductsTable(products []domain.Product) Table {
	t := Table{
		Header: []string{"id", "name", "sku", "category", "stock", "minStock", "price", "supplier", "description", "lastUpdated"},
	}
	for _, p := range products {
		t.Rows = append(t.Rows, []string{
			p.ID,
			p.Name,
			p.SKU,
			p.Category,
			strconv.Itoa(p.Stock),
			strconv.Itoa(p.MinStock),
			formatPrice(p.Price),
			p.Supplier,
			p.Description,
			p.LastUpdated,
		})
	}
	return t
}

// TransactionsTable lists every transaction field, one row per movement.
func TransactionsTable(transactions []domain.Transaction) Table {
	t := Table{
		Header: []string{"id", "productId", "productName", "type", "quantity", "date", "notes", "user"},
	}
	for _, tx := range transactions {
		t.Rows = append(t.Rows, []string{
			tx.ID,
			tx.ProductID,
			tx.ProductName,
			string(tx.Type),
			strconv.Itoa(tx.Quantity),
			tx.Date,
			tx.Notes,
			tx.User,
		})
	}
	return t
}

// ValuationTable is the inventory valuation report: per-product stock value
// with the classified stock status.
func ValuationTable(products []domain.Product) Table {
	t := Table{
		Header: []string{"SKU", "Name", "Category", "Stock", "Unit Price", "Total Value", "Min Stock", "Status"},
	}
	for _, p := range products {
		t.Rows = append(t.Rows, []string{
			p.SKU,
			p.Name,
			p.Category,
			strconv.Itoa(p.Stock),
			formatPrice(p.Price),
			formatPrice(p.Value()),
			strconv.Itoa(p.MinStock),
			domain.Classify(p.Stock, p.MinStock).Label,
		})
	}
	return t
}

// CategoryTable aggregates products per category: item count, total stock
// value and up to three sample item names. Categories are sorted for a
// stable export.
func CategoryTable(products []domain.Product) Table {
	type categoryAgg struct {
		count int
		value float64
		items []string
	}

	byCategory := make(map[string]*categoryAgg)
	for _, p := range products {
		agg, ok := byCategory[p.Category]
		if !ok {
			agg = &categoryAgg{}
			byCategory[p.Category] = agg
		}
		agg.count++
		agg.value += p.Value()
		agg.items = append(agg.items, p.Name)
	}

	names := make([]string, 0, len(byCategory))
	for name := range byCategory {
		names = append(names, name)
	}
	sort.Strings(names)

	t := Table{
		Header: []string{"Category", "Item Count", "Total Value", "Sample Items"},
	}
	for _, name := range names {
		agg := byCategory[name]
		samples := agg.items
		if len(samples) > 3 {
			samples = samples[:3]
		}
		t.Rows = append(t.Rows, []string{
			name,
			strconv.Itoa(agg.count),
			formatPrice(agg.value),
			strings.Join(samples, ", "),
		})
	}
	return t
}
