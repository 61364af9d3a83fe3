package domain

import "context"

// InventoryStats is the dashboard aggregate over all collections.
// TotalValue is pre-formatted with two fractional digits.
type InventoryStats struct {
	TotalProducts       int    `json:"totalProducts"`
	TotalValue          string `json:"totalValue"`
	LowStockCount       int    `json:"lowStockCount"`
	OutOfStockCount     int    `json:"outOfStockCount"`
	MonthlyTransactions int    `json:"monthlyTransactions"`
}

// StatsProvider computes the inventory aggregate.
type StatsProvider interface {
	Stats(ctx context.Context) (*InventoryStats, error)
}

// Backup is the whole-store snapshot exchanged with the outside world.
// Collections absent from a snapshot are left untouched on restore.
type Backup struct {
	Products     []Product     `json:"products"`
	Transactions []Transaction `json:"transactions"`
	Suppliers    []Supplier    `json:"suppliers"`
	BackupDate   string        `json:"backupDate"`
}

// Archiver produces and applies whole-store snapshots.
type Archiver interface {
	Backup(ctx context.Context) ([]byte, error)
	Restore(ctx context.Context, data []byte) error
}
