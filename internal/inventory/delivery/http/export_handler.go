package http

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/adilbekov/stockledger/internal/inventory/domain"
	"github.com/adilbekov/stockledger/internal/inventory/export"
	"github.com/adilbekov/stockledger/internal/inventory/usecase/command"
	"github.com/adilbekov/stockledger/pkg/logger"
)

// Restores larger than this are rejected outright.
const maxRestoreBytes = 16 << 20

func (h *InventoryHandler) registerExportRoutes(router *mux.Router) {
	router.HandleFunc("/api/exports/{report}", h.metricsMiddleware("/api/exports/{report}", h.ExportCSV)).Methods("GET")
	router.HandleFunc("/api/backup", h.metricsMiddleware("/api/backup", h.DownloadBackup)).Methods("GET")
	router.HandleFunc("/api/restore", h.metricsMiddleware("/api/restore", h.RestoreBackup)).Methods("POST")
}

// ExportCSV handles GET /api/exports/{report}. An export over an empty
// collection answers 204 and writes no body.
func (h *InventoryHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	report := mux.Vars(r)["report"]

	table, filename, err := h.buildExport(r, report)
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: err.Error()})
		return
	}

	if len(table.Rows) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, table); err != nil {
		logger.Error(r.Context()).Err(err).Str("report", report).Msg("Failed to build export")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to build export"})
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(buf.Bytes())
}

func (h *InventoryHandler) buildExport(r *http.Request, report string) (export.Table, string, error) {
	ctx := r.Context()
	stamp := time.Now().Format(domain.DateLayout)

	switch report {
	case "products":
		products, err := h.products.Products(ctx)
		if err != nil {
			return export.Table{}, "", err
		}
		return export.ProductsTable(products), fmt.Sprintf("products_export_%s.csv", stamp), nil

	case "transactions":
		transactions, err := h.transactions.Transactions(ctx)
		if err != nil {
			return export.Table{}, "", err
		}
		return export.TransactionsTable(transactions), fmt.Sprintf("transactions_export_%s.csv", stamp), nil

	case "low-stock":
		products, err := h.products.LowStock(ctx)
		if err != nil {
			return export.Table{}, "", err
		}
		return export.ProductsTable(products), "low_stock_report.csv", nil

	case "valuation":
		products, err := h.products.Products(ctx)
		if err != nil {
			return export.Table{}, "", err
		}
		return export.ValuationTable(products), "inventory_valuation.csv", nil

	case "categories":
		products, err := h.products.Products(ctx)
		if err != nil {
			return export.Table{}, "", err
		}
		return export.CategoryTable(products), "category_report.csv", nil

	default:
		return export.Table{}, "", fmt.Errorf("unknown report %q", report)
	}
}

// DownloadBackup handles GET /api/backup
func (h *InventoryHandler) DownloadBackup(w http.ResponseWriter, r *http.Request) {
	data, err := h.archiver.Backup(r.Context())
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to build backup")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to build backup"})
		return
	}

	filename := fmt.Sprintf("inventory_backup_%s.json", time.Now().Format(domain.DateLayout))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(data)
}

// RestoreBackup handles POST /api/restore
func (h *InventoryHandler) RestoreBackup(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxRestoreBytes))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Failed to read backup"})
		return
	}

	if err := h.restoreBackup.Handle(r.Context(), command.RestoreBackupCommand{Data: data}); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to restore backup")
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	h.updateInventoryMetrics(r)
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Backup restored successfully",
	})
}
