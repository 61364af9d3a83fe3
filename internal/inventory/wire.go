//go:build wireinject
// +build wireinject

package inventory

import (
	"github.com/google/wire"

	httpdelivery "github.com/adilbekov/stockledger/internal/inventory/delivery/http"
	"github.com/adilbekov/stockledger/internal/inventory/store"
	"github.com/adilbekov/stockledger/internal/inventory/usecase/command"
)

// InitializeHTTPHandler builds the HTTP handler with all dependencies.
// A nil publisher disables event publishing.
func InitializeHTTPHandler(s *store.Store, publisher command.EventPublisher) (*httpdelivery.InventoryHandler, error) {
	wire.Build(
		RepositorySet,
		CommandSet,
		QuerySet,
		httpdelivery.NewInventoryHandler,
	)
	return nil, nil
}
