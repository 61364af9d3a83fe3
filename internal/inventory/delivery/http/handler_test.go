package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adilbekov/stockledger/internal/inventory"
	"github.com/adilbekov/stockledger/internal/inventory/store"
	"github.com/adilbekov/stockledger/pkg/kv"
)

// The handler registers its metrics with the default Prometheus registry,
// so it is built once and every test drives the same router.
func newTestRouter(t *testing.T) (*mux.Router, *store.Store) {
	t.Helper()

	s, err := store.Open(context.Background(), kv.NewMemoryStore(),
		store.WithClock(func() time.Time {
			return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
		}))
	require.NoError(t, err)

	handler, err := inventory.InitializeHTTPHandler(s, nil)
	require.NoError(t, err)
	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	handler.RegisterHealthCheck(router)
	return router, s
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope map[string]interface{}
	if strings.Contains(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	}
	return rec, envelope
}

func TestInventoryAPI(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("health", func(t *testing.T) {
		rec, envelope := doJSON(t, router, http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, envelope["success"])
	})

	t.Run("list products", func(t *testing.T) {
		rec, envelope := doJSON(t, router, http.MethodGet, "/api/products", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		data := envelope["data"].(map[string]interface{})
		assert.Equal(t, float64(5), data["total"])
	})

	t.Run("low-stock route is not captured by the id route", func(t *testing.T) {
		rec, envelope := doJSON(t, router, http.MethodGet, "/api/products/low-stock", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, envelope["success"])
	})

	t.Run("get unknown product", func(t *testing.T) {
		rec, _ := doJSON(t, router, http.MethodGet, "/api/products/P999", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("create product", func(t *testing.T) {
		rec, envelope := doJSON(t, router, http.MethodPost, "/api/products",
			`{"name":"Webcam","sku":"WC-006","category":"Electronics","stock":12,"minStock":4,"price":59.99}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		data := envelope["data"].(map[string]interface{})
		assert.Equal(t, "P006", data["id"])
		assert.Equal(t, "2024-03-15", data["lastUpdated"])
	})

	t.Run("create product rejects missing name", func(t *testing.T) {
		rec, _ := doJSON(t, router, http.MethodPost, "/api/products", `{"sku":"XX-001"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("update product patches fields", func(t *testing.T) {
		rec, envelope := doJSON(t, router, http.MethodPut, "/api/products/P001", `{"price":899.5}`)
		require.Equal(t, http.StatusOK, rec.Code)
		data := envelope["data"].(map[string]interface{})
		assert.Equal(t, 899.5, data["price"])
		assert.Equal(t, "Laptop Pro 15", data["name"])
	})

	t.Run("update unknown product", func(t *testing.T) {
		rec, _ := doJSON(t, router, http.MethodPut, "/api/products/P999", `{"price":1}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("movement out over stock conflicts", func(t *testing.T) {
		rec, envelope := doJSON(t, router, http.MethodPost, "/api/transactions",
			`{"productId":"P002","type":"OUT","quantity":9999,"user":"sales@example.com"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, envelope["error"], "insufficient stock")
	})

	t.Run("movement in", func(t *testing.T) {
		rec, envelope := doJSON(t, router, http.MethodPost, "/api/transactions",
			`{"productId":"P002","type":"IN","quantity":5,"notes":"restock","user":"warehouse@example.com"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		data := envelope["data"].(map[string]interface{})
		assert.Equal(t, "T005", data["id"])
		assert.Equal(t, "warehouse@example.com", data["user"])
	})

	t.Run("stats", func(t *testing.T) {
		rec, envelope := doJSON(t, router, http.MethodGet, "/api/stats", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		data := envelope["data"].(map[string]interface{})
		assert.Equal(t, float64(6), data["totalProducts"])
	})

	t.Run("status exposes lastSavedAt", func(t *testing.T) {
		rec, envelope := doJSON(t, router, http.MethodGet, "/api/status", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		data := envelope["data"].(map[string]interface{})
		assert.NotNil(t, data["lastSavedAt"])
	})

	t.Run("suppliers round trip", func(t *testing.T) {
		rec, envelope := doJSON(t, router, http.MethodPost, "/api/suppliers",
			`{"name":"Cable Kingdom","contact":"Ann Lee","email":"ann@cables.example"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		data := envelope["data"].(map[string]interface{})
		assert.Equal(t, "S005", data["id"])

		rec, envelope = doJSON(t, router, http.MethodGet, "/api/suppliers", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, envelope["data"], 5)
	})

	t.Run("products export", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/exports/products", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "products_export_")

		lines := strings.Split(rec.Body.String(), "\n")
		assert.Equal(t, "id,name,sku,category,stock,minStock,price,supplier,description,lastUpdated", lines[0])
		assert.True(t, strings.HasPrefix(lines[1], `"P001",`))
	})

	t.Run("unknown export report", func(t *testing.T) {
		rec, _ := doJSON(t, router, http.MethodGet, "/api/exports/everything", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("backup and restore", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/backup", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		backup := rec.Body.Bytes()

		rec, _ = doJSON(t, router, http.MethodDelete, "/api/products/P001", "")
		require.Equal(t, http.StatusOK, rec.Code)

		req = httptest.NewRequest(http.MethodPost, "/api/restore", bytes.NewReader(backup))
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		rec, _ = doJSON(t, router, http.MethodGet, "/api/products/P001", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("restore rejects malformed payload", func(t *testing.T) {
		rec, _ := doJSON(t, router, http.MethodPost, "/api/restore", "{{nope")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
