package store_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adilbekov/stockledger/internal/inventory/domain"
	"github.com/adilbekov/stockledger/internal/inventory/store"
	"github.com/adilbekov/stockledger/pkg/kv"
)

var testNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func newTestStore(t *testing.T) (*store.Store, *kv.MemoryStore) {
	t.Helper()

	backend := kv.NewMemoryStore()
	s, err := store.Open(context.Background(), backend,
		store.WithClock(func() time.Time { return testNow }))
	require.NoError(t, err)
	return s, backend
}

// restoreFixture replaces the store contents with the given collections.
func restoreFixture(t *testing.T, s *store.Store, backup domain.Backup) {
	t.Helper()

	data, err := json.Marshal(backup)
	require.NoError(t, err)
	require.NoError(t, s.Restore(context.Background(), data))
}

func TestOpenSeedsSampleData(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	products, err := s.Products(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 5)
	assert.Equal(t, "P001", products[0].ID)
	assert.Equal(t, "Laptop Pro 15", products[0].Name)

	transactions, err := s.Transactions(ctx)
	require.NoError(t, err)
	assert.Len(t, transactions, 4)

	suppliers, err := s.Suppliers(ctx)
	require.NoError(t, err)
	require.Len(t, suppliers, 4)

	seen := map[string]bool{}
	for _, sup := range suppliers {
		assert.False(t, seen[sup.ID], "duplicate supplier id %s", sup.ID)
		seen[sup.ID] = true
	}
}

func TestOpenDoesNotReseedExistingData(t *testing.T) {
	ctx := context.Background()
	s, backend := newTestStore(t)

	_, err := s.AddProduct(ctx, domain.Product{Name: "Desk Lamp", SKU: "DL-001"})
	require.NoError(t, err)

	reopened, err := store.Open(ctx, backend,
		store.WithClock(func() time.Time { return testNow }))
	require.NoError(t, err)

	products, err := reopened.Products(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 6)
}

func TestOpenTreatsGarbageAsEmpty(t *testing.T) {
	ctx := context.Background()

	backend := kv.NewMemoryStore()
	require.NoError(t, backend.Set(ctx, "inventory_products", []byte("{{not json")))

	s, err := store.Open(ctx, backend)
	require.NoError(t, err)

	products, err := s.Products(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 5, "garbage blob should read as empty and trigger seeding")
}

func TestAddProductAssignsIDAndStamp(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	created, err := s.AddProduct(ctx, domain.Product{
		Name:        "Standing Desk",
		SKU:         "SD-006",
		Category:    "Furniture",
		Stock:       7,
		MinStock:    3,
		Price:       499.00,
		Supplier:    "Furniture World",
		Description: "Adjustable standing desk",
	})
	require.NoError(t, err)
	assert.Equal(t, "P006", created.ID)
	assert.Equal(t, "2024-03-15", created.LastUpdated)

	got, err := s.Product(ctx, "P006")
	require.NoError(t, err)
	assert.Equal(t, *created, *got)
}

func TestProductNotFound(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Product(context.Background(), "P999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIdentifiersSurviveDeleteAddCycles(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	// A length-derived identifier would hand out P005 again here.
	require.NoError(t, s.DeleteProduct(ctx, "P003"))

	created, err := s.AddProduct(ctx, domain.Product{Name: "Monitor", SKU: "MN-006"})
	require.NoError(t, err)
	assert.Equal(t, "P006", created.ID)

	products, err := s.Products(ctx)
	require.NoError(t, err)
	seen := map[string]bool{}
	for _, p := range products {
		assert.False(t, seen[p.ID], "duplicate product id %s", p.ID)
		seen[p.ID] = true
	}
}

func TestUpdateProductMergesPartialFields(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	price := 1199.99
	found, err := s.UpdateProduct(ctx, "P001", domain.ProductPatch{Price: &price})
	require.NoError(t, err)
	assert.True(t, found)

	p, err := s.Product(ctx, "P001")
	require.NoError(t, err)
	assert.Equal(t, 1199.99, p.Price)
	assert.Equal(t, "Laptop Pro 15", p.Name, "unpatched fields keep their values")
	assert.Equal(t, 25, p.Stock)
	assert.Equal(t, "2024-03-15", p.LastUpdated, "every mutation restamps lastUpdated")
}

func TestUpdateProductMissingReturnsNotFound(t *testing.T) {
	s, _ := newTestStore(t)

	name := "Ghost"
	found, err := s.UpdateProduct(context.Background(), "P999", domain.ProductPatch{Name: &name})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	require.NoError(t, s.DeleteProduct(ctx, "P002"))

	_, err := s.Product(ctx, "P002")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	products, err := s.Products(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 4)

	// Deleting an absent identifier persists the unchanged collection.
	require.NoError(t, s.DeleteProduct(ctx, "P999"))
	products, err = s.Products(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 4)
}

func TestAddTransactionPrepends(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	created, err := s.AddTransaction(ctx, domain.Transaction{
		ProductID:   "P001",
		ProductName: "Laptop Pro 15",
		Type:        domain.MovementOut,
		Quantity:    2,
		Notes:       "Customer order #99",
		User:        "sales@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "T005", created.ID)
	assert.Equal(t, "2024-03-15", created.Date)
	assert.Equal(t, "sales@example.com", created.User)

	transactions, err := s.Transactions(ctx)
	require.NoError(t, err)
	require.Len(t, transactions, 5)
	assert.Equal(t, "T005", transactions[0].ID, "newest transaction comes first")
	assert.Equal(t, "T001", transactions[1].ID)
}

func TestAdjustStock(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	// IN adds.
	require.NoError(t, s.AdjustStock(ctx, "P001", 10, domain.MovementIn))
	p, err := s.Product(ctx, "P001")
	require.NoError(t, err)
	assert.Equal(t, 35, p.Stock)
	assert.Equal(t, "2024-03-15", p.LastUpdated)

	// OUT subtracts, with no floor: the precondition check belongs to the
	// caller, not here.
	require.NoError(t, s.AdjustStock(ctx, "P001", 50, domain.MovementOut))
	p, err = s.Product(ctx, "P001")
	require.NoError(t, err)
	assert.Equal(t, -15, p.Stock)

	// Missing product is a no-op.
	require.NoError(t, s.AdjustStock(ctx, "P999", 5, domain.MovementIn))
}

func TestSuppliers(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	created, err := s.AddSupplier(ctx, domain.Supplier{
		Name:    "Cable Kingdom",
		Contact: "Ann Lee",
		Email:   "ann@cables.example",
	})
	require.NoError(t, err)
	assert.Equal(t, "S005", created.ID)

	suppliers, err := s.Suppliers(ctx)
	require.NoError(t, err)
	assert.Len(t, suppliers, 5)

	replacement := []domain.Supplier{{ID: "S001", Name: "Only One Left"}}
	require.NoError(t, s.SaveSuppliers(ctx, replacement))

	suppliers, err = s.Suppliers(ctx)
	require.NoError(t, err)
	require.Len(t, suppliers, 1)
	assert.Equal(t, "Only One Left", suppliers[0].Name)
}

func TestLowStock(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	restoreFixture(t, s, domain.Backup{
		Products: []domain.Product{
			{ID: "P001", Name: "Plenty", Stock: 25, MinStock: 10},
			{ID: "P002", Name: "Gone", Stock: 0, MinStock: 5},
			{ID: "P003", Name: "Scarce", Stock: 8, MinStock: 20},
		},
	})

	low, err := s.LowStock(ctx)
	require.NoError(t, err)
	require.Len(t, low, 2)
	assert.Equal(t, "P002", low[0].ID)
	assert.Equal(t, "P003", low[1].ID)
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	restoreFixture(t, s, domain.Backup{
		Products: []domain.Product{
			{ID: "P001", Stock: 2, MinStock: 1, Price: 10.00},
			{ID: "P002", Stock: 3, MinStock: 1, Price: 5.50},
			{ID: "P003", Stock: 0, MinStock: 5, Price: 99.99},
		},
		Transactions: []domain.Transaction{
			{ID: "T003", Date: "2024-03-01", Type: domain.MovementIn, Quantity: 1},
			{ID: "T002", Date: "2024-02-20", Type: domain.MovementOut, Quantity: 2},
			{ID: "T001", Date: "2024-01-10", Type: domain.MovementIn, Quantity: 3},
		},
	})

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalProducts)
	assert.Equal(t, "36.50", stats.TotalValue, "out-of-stock products add nothing to the value")
	assert.Equal(t, 1, stats.LowStockCount)
	assert.Equal(t, 1, stats.OutOfStockCount)
	assert.Equal(t, 2, stats.MonthlyTransactions, "only transactions within the trailing month count")
}

func TestLastSavedAt(t *testing.T) {
	ctx := context.Background()

	backend := kv.NewMemoryStore()
	s, err := store.Open(ctx, backend,
		store.WithClock(func() time.Time { return testNow }))
	require.NoError(t, err)

	// Bootstrap already persisted the seeds.
	assert.Equal(t, testNow, s.LastSavedAt())
}
