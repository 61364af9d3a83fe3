// Package http is the collaborator-facing surface of the inventory store:
// everything a rendering or reporting layer may call goes through here.
package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/adilbekov/stockledger/internal/inventory/domain"
	"github.com/adilbekov/stockledger/internal/inventory/usecase/command"
	"github.com/adilbekov/stockledger/internal/inventory/usecase/query"
	"github.com/adilbekov/stockledger/pkg/logger"
)

// StatusReporter exposes the last time the store persisted anything, for
// clients that render a "last saved" indicator.
type StatusReporter interface {
	LastSavedAt() time.Time
}

// InventoryHandler handles HTTP requests using the CQRS handlers.
type InventoryHandler struct {
	createProduct  *command.CreateProductHandler
	updateProduct  *command.UpdateProductHandler
	deleteProduct  *command.DeleteProductHandler
	recordMovement *command.RecordMovementHandler
	suppliers      *command.SupplierHandler
	restoreBackup  *command.RestoreBackupHandler

	getProduct       *query.GetProductHandler
	listProducts     *query.ListProductsHandler
	listTransactions *query.ListTransactionsHandler
	lowStock         *query.LowStockHandler
	stats            *query.GetStatsHandler
	report           *query.GetReportHandler

	products     domain.ProductRepository
	transactions domain.TransactionRepository
	supplierRepo domain.SupplierRepository
	archiver     domain.Archiver
	status       StatusReporter

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
	totalProducts  prometheus.Gauge
	lowStockCount  prometheus.Gauge
}

// NewInventoryHandler creates the handler and registers its Prometheus
// metrics.
func NewInventoryHandler(
	createProduct *command.CreateProductHandler,
	updateProduct *command.UpdateProductHandler,
	deleteProduct *command.DeleteProductHandler,
	recordMovement *command.RecordMovementHandler,
	suppliers *command.SupplierHandler,
	restoreBackup *command.RestoreBackupHandler,
	getProduct *query.GetProductHandler,
	listProducts *query.ListProductsHandler,
	listTransactions *query.ListTransactionsHandler,
	lowStock *query.LowStockHandler,
	stats *query.GetStatsHandler,
	report *query.GetReportHandler,
	products domain.ProductRepository,
	transactions domain.TransactionRepository,
	supplierRepo domain.SupplierRepository,
	archiver domain.Archiver,
	status StatusReporter,
) *InventoryHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_service_requests_total",
			Help: "Total number of requests to the inventory service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inventory_service_request_duration_seconds",
			Help:    "Duration of inventory service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	requestSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "inventory_service_request_duration_summary",
			Help: "Summary of request durations with percentiles",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.01,
				0.99: 0.001,
			},
			MaxAge: 10 * time.Minute,
		},
		[]string{"method", "endpoint"},
	)

	totalProducts := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "inventory_service_total_products",
			Help: "Total number of tracked products",
		},
	)

	lowStockCount := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "inventory_service_low_stock_products",
			Help: "Number of products at or below their reorder threshold",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(requestSummary)
	prometheus.MustRegister(totalProducts)
	prometheus.MustRegister(lowStockCount)

	return &InventoryHandler{
		createProduct:    createProduct,
		updateProduct:    updateProduct,
		deleteProduct:    deleteProduct,
		recordMovement:   recordMovement,
		suppliers:        suppliers,
		restoreBackup:    restoreBackup,
		getProduct:       getProduct,
		listProducts:     listProducts,
		listTransactions: listTransactions,
		lowStock:         lowStock,
		stats:            stats,
		report:           report,
		products:         products,
		transactions:     transactions,
		supplierRepo:     supplierRepo,
		archiver:         archiver,
		status:           status,
		requestCounter:   requestCounter,
		requestLatency:   requestLatency,
		requestSummary:   requestSummary,
		totalProducts:    totalProducts,
		lowStockCount:    lowStockCount,
	}
}

// Response is the JSON envelope every endpoint answers with.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics.
func (h *InventoryHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes mounts every endpoint on the router. The low-stock route
// must be registered before the {id} route.
func (h *InventoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/products/low-stock", h.metricsMiddleware("/api/products/low-stock", h.LowStockProducts)).Methods("GET")
	router.HandleFunc("/api/products", h.metricsMiddleware("/api/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/api/products", h.metricsMiddleware("/api/products", h.CreateProduct)).Methods("POST")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", h.GetProduct)).Methods("GET")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", h.UpdateProduct)).Methods("PUT")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", h.DeleteProduct)).Methods("DELETE")

	router.HandleFunc("/api/transactions", h.metricsMiddleware("/api/transactions", h.ListTransactions)).Methods("GET")
	router.HandleFunc("/api/transactions", h.metricsMiddleware("/api/transactions", h.RecordMovement)).Methods("POST")

	router.HandleFunc("/api/suppliers", h.metricsMiddleware("/api/suppliers", h.ListSuppliers)).Methods("GET")
	router.HandleFunc("/api/suppliers", h.metricsMiddleware("/api/suppliers", h.CreateSupplier)).Methods("POST")
	router.HandleFunc("/api/suppliers", h.metricsMiddleware("/api/suppliers", h.SaveSuppliers)).Methods("PUT")

	router.HandleFunc("/api/stats", h.metricsMiddleware("/api/stats", h.GetStats)).Methods("GET")
	router.HandleFunc("/api/reports/summary", h.metricsMiddleware("/api/reports/summary", h.GetReport)).Methods("GET")
	router.HandleFunc("/api/status", h.metricsMiddleware("/api/status", h.GetStatus)).Methods("GET")

	h.registerExportRoutes(router)
}

// RegisterHealthCheck mounts the liveness endpoint.
func (h *InventoryHandler) RegisterHealthCheck(router *mux.Router) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "healthy",
		})
	}).Methods("GET")
}

// updateInventoryMetrics refreshes the product gauges after a mutation.
func (h *InventoryHandler) updateInventoryMetrics(r *http.Request) {
	products, err := h.products.Products(r.Context())
	if err != nil {
		return
	}
	low := 0
	for _, p := range products {
		if p.Stock <= p.MinStock {
			low++
		}
	}
	h.totalProducts.Set(float64(len(products)))
	h.lowStockCount.Set(float64(low))
}

// CreateProduct handles POST /api/products
func (h *InventoryHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string  `json:"name"`
		SKU         string  `json:"sku"`
		Category    string  `json:"category"`
		Stock       int     `json:"stock"`
		MinStock    int     `json:"minStock"`
		Price       float64 `json:"price"`
		Supplier    string  `json:"supplier"`
		Description string  `json:"description"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	product, err := h.createProduct.Handle(r.Context(), command.CreateProductCommand{
		Name:        req.Name,
		SKU:         req.SKU,
		Category:    req.Category,
		Stock:       req.Stock,
		MinStock:    req.MinStock,
		Price:       req.Price,
		Supplier:    req.Supplier,
		Description: req.Description,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to create product")
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	h.updateInventoryMetrics(r)
	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Product created successfully",
		Data:    product,
	})
}

// ListProducts handles GET /api/products
func (h *InventoryHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := query.ListProductsQuery{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("q"),
		Severity: domain.Severity(r.URL.Query().Get("severity")),
	}

	products, err := h.listProducts.Handle(r.Context(), q)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list products")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list products"})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"products": products,
			"total":    len(products),
		},
	})
}

// GetProduct handles GET /api/products/{id}
func (h *InventoryHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.getProduct.Handle(r.Context(), query.GetProductQuery{ID: id})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Product not found"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: product})
}

// UpdateProduct handles PUT /api/products/{id}
func (h *InventoryHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req struct {
		Name        *string  `json:"name"`
		SKU         *string  `json:"sku"`
		Category    *string  `json:"category"`
		Stock       *int     `json:"stock"`
		MinStock    *int     `json:"minStock"`
		Price       *float64 `json:"price"`
		Supplier    *string  `json:"supplier"`
		Description *string  `json:"description"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	product, err := h.updateProduct.Handle(r.Context(), command.UpdateProductCommand{
		ID: id,
		Patch: domain.ProductPatch{
			Name:        req.Name,
			SKU:         req.SKU,
			Category:    req.Category,
			Stock:       req.Stock,
			MinStock:    req.MinStock,
			Price:       req.Price,
			Supplier:    req.Supplier,
			Description: req.Description,
		},
	})
	if err != nil {
		if errors.Is(err, command.ErrProductNotFound) {
			respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Product not found"})
			return
		}
		logger.Error(r.Context()).Err(err).Msg("Failed to update product")
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product updated successfully",
		Data:    product,
	})
}

// DeleteProduct handles DELETE /api/products/{id}
func (h *InventoryHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.deleteProduct.Handle(r.Context(), command.DeleteProductCommand{ID: id}); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to delete product")
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	h.updateInventoryMetrics(r)
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product deleted successfully",
	})
}

// LowStockProducts handles GET /api/products/low-stock
func (h *InventoryHandler) LowStockProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.lowStock.Handle(r.Context(), query.LowStockQuery{})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list low stock products")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list low stock products"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: products})
}

// ListTransactions handles GET /api/transactions
func (h *InventoryHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	q := query.ListTransactionsQuery{
		Type:      domain.MovementType(r.URL.Query().Get("type")),
		ProductID: r.URL.Query().Get("product"),
		Limit:     limit,
	}

	transactions, err := h.listTransactions.Handle(r.Context(), q)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list transactions")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list transactions"})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"transactions": transactions,
			"total":        len(transactions),
		},
	})
}

// RecordMovement handles POST /api/transactions
func (h *InventoryHandler) RecordMovement(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"productId"`
		Type      string `json:"type"`
		Quantity  int    `json:"quantity"`
		Notes     string `json:"notes"`
		User      string `json:"user"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	tx, err := h.recordMovement.Handle(r.Context(), command.RecordMovementCommand{
		ProductID: req.ProductID,
		Type:      domain.MovementType(req.Type),
		Quantity:  req.Quantity,
		Notes:     req.Notes,
		Actor:     req.User,
	})
	if err != nil {
		switch {
		case errors.Is(err, command.ErrProductNotFound):
			respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Product not found"})
		case errors.Is(err, command.ErrInsufficientStock):
			respondJSON(w, http.StatusConflict, Response{Success: false, Error: err.Error()})
		default:
			logger.Error(r.Context()).Err(err).Msg("Failed to record movement")
			respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		}
		return
	}

	h.updateInventoryMetrics(r)
	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Movement recorded successfully",
		Data:    tx,
	})
}

// ListSuppliers handles GET /api/suppliers
func (h *InventoryHandler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.supplierRepo.Suppliers(r.Context())
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list suppliers")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list suppliers"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: suppliers})
}

// CreateSupplier handles POST /api/suppliers
func (h *InventoryHandler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		Contact string `json:"contact"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	supplier, err := h.suppliers.HandleCreate(r.Context(), command.CreateSupplierCommand{
		Name:    req.Name,
		Contact: req.Contact,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Supplier created successfully",
		Data:    supplier,
	})
}

// SaveSuppliers handles PUT /api/suppliers
func (h *InventoryHandler) SaveSuppliers(w http.ResponseWriter, r *http.Request) {
	var suppliers []domain.Supplier
	if err := json.NewDecoder(r.Body).Decode(&suppliers); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	if err := h.suppliers.HandleSave(r.Context(), command.SaveSuppliersCommand{Suppliers: suppliers}); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to save suppliers")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to save suppliers"})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Suppliers saved successfully",
	})
}

// GetStats handles GET /api/stats
func (h *InventoryHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.Handle(r.Context(), query.GetStatsQuery{})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to compute stats")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to compute stats"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: stats})
}

// GetReport handles GET /api/reports/summary
func (h *InventoryHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.report.Handle(r.Context(), query.GetReportQuery{})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to build report")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to build report"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: report})
}

// GetStatus handles GET /api/status
func (h *InventoryHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	var lastSaved *time.Time
	if t := h.status.LastSavedAt(); !t.IsZero() {
		lastSaved = &t
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"lastSavedAt": lastSaved,
		},
	})
}

func respondJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
