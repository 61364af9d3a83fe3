// Package inventory wires the store, usecase handlers and HTTP delivery
// together.
package inventory

import (
	"github.com/google/wire"

	httpdelivery "github.com/adilbekov/stockledger/internal/inventory/delivery/http"
	"github.com/adilbekov/stockledger/internal/inventory/domain"
	"github.com/adilbekov/stockledger/internal/inventory/store"
	"github.com/adilbekov/stockledger/internal/inventory/usecase/command"
	"github.com/adilbekov/stockledger/internal/inventory/usecase/query"
)

// ProvideProductRepository provides the product repository.
func ProvideProductRepository(s *store.Store) domain.ProductRepository {
	return s
}

// ProvideTransactionRepository provides the transaction repository.
func ProvideTransactionRepository(s *store.Store) domain.TransactionRepository {
	return s
}

// ProvideSupplierRepository provides the supplier repository.
func ProvideSupplierRepository(s *store.Store) domain.SupplierRepository {
	return s
}

// ProvideStatsProvider provides the stats computation.
func ProvideStatsProvider(s *store.Store) domain.StatsProvider {
	return s
}

// ProvideArchiver provides backup/restore.
func ProvideArchiver(s *store.Store) domain.Archiver {
	return s
}

// ProvideStatusReporter provides the last-persisted-at reporter.
func ProvideStatusReporter(s *store.Store) httpdelivery.StatusReporter {
	return s
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideProductRepository,
	ProvideTransactionRepository,
	ProvideSupplierRepository,
	ProvideStatsProvider,
	ProvideArchiver,
	ProvideStatusReporter,
)

var CommandSet = wire.NewSet(
	command.NewCreateProductHandler,
	command.NewUpdateProductHandler,
	command.NewDeleteProductHandler,
	command.NewRecordMovementHandler,
	command.NewSupplierHandler,
	command.NewRestoreBackupHandler,
)

var QuerySet = wire.NewSet(
	query.NewGetProductHandler,
	query.NewListProductsHandler,
	query.NewListTransactionsHandler,
	query.NewLowStockHandler,
	query.NewGetStatsHandler,
	query.NewGetReportHandler,
)
