package query_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adilbekov/stockledger/internal/inventory/domain"
	"github.com/adilbekov/stockledger/internal/inventory/store"
	"github.com/adilbekov/stockledger/internal/inventory/usecase/query"
	"github.com/adilbekov/stockledger/pkg/kv"
)

func newQueryStore(t *testing.T, backup domain.Backup) *store.Store {
	t.Helper()

	s, err := store.Open(context.Background(), kv.NewMemoryStore(),
		store.WithClock(func() time.Time {
			return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
		}))
	require.NoError(t, err)

	data, err := json.Marshal(backup)
	require.NoError(t, err)
	require.NoError(t, s.Restore(context.Background(), data))
	return s
}

func TestListProductsFilters(t *testing.T) {
	ctx := context.Background()
	s := newQueryStore(t, domain.Backup{
		Products: []domain.Product{
			{ID: "P001", Name: "Laptop Pro 15", SKU: "LP-001", Category: "Electronics", Stock: 25, MinStock: 10},
			{ID: "P002", Name: "Office Chair", SKU: "OC-002", Category: "Furniture", Stock: 0, MinStock: 5},
			{ID: "P003", Name: "USB Cable", SKU: "UC-003", Category: "Electronics", Stock: 3, MinStock: 10},
		},
	})
	handler := query.NewListProductsHandler(s)

	t.Run("no filters returns everything", func(t *testing.T) {
		products, err := handler.Handle(ctx, query.ListProductsQuery{})
		require.NoError(t, err)
		assert.Len(t, products, 3)
	})

	t.Run("category", func(t *testing.T) {
		products, err := handler.Handle(ctx, query.ListProductsQuery{Category: "Furniture"})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "P002", products[0].ID)
	})

	t.Run("search matches name case-insensitively", func(t *testing.T) {
		products, err := handler.Handle(ctx, query.ListProductsQuery{Search: "laptop"})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "P001", products[0].ID)
	})

	t.Run("search matches sku", func(t *testing.T) {
		products, err := handler.Handle(ctx, query.ListProductsQuery{Search: "uc-00"})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "P003", products[0].ID)
	})

	t.Run("severity", func(t *testing.T) {
		products, err := handler.Handle(ctx, query.ListProductsQuery{Severity: domain.SeverityCritical})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "P002", products[0].ID)
	})

	t.Run("filters combine", func(t *testing.T) {
		products, err := handler.Handle(ctx, query.ListProductsQuery{Category: "Electronics", Search: "cable"})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "P003", products[0].ID)
	})

	t.Run("no match yields empty slice", func(t *testing.T) {
		products, err := handler.Handle(ctx, query.ListProductsQuery{Search: "nonexistent"})
		require.NoError(t, err)
		assert.Empty(t, products)
	})
}
