package query

import (
	"context"
	"fmt"

	"github.com/adilbekov/stockledger/internal/inventory/domain"
)

// GetStatsQuery fetches the dashboard aggregate.
type GetStatsQuery struct{}

// GetStatsHandler handles the get stats query.
type GetStatsHandler struct {
	provider domain.StatsProvider
}

// NewGetStatsHandler creates a new get stats handler.
func NewGetStatsHandler(provider domain.StatsProvider) *GetStatsHandler {
	return &GetStatsHandler{provider: provider}
}

// Handle executes the get stats query.
func (h *GetStatsHandler) Handle(ctx context.Context, _ GetStatsQuery) (*domain.InventoryStats, error) {
	stats, err := h.provider.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}
	return stats, nil
}
