package dashboard

import (
	"context"
	"errors"

	"farmaplus.org/admin/internal/admin/catalog"
)

// ErrNotConfigured indicates the dashboard service dependency has not been provided.
var ErrNotConfigured = errors.New("dashboard service not configured")

// Stats are the aggregates shown on the back-office dashboard.
type Stats struct {
	TotalProducts    int               `json:"totalProducts"`
	TotalCategories  int               `json:"totalCategories"`
	LowStockProducts int               `json:"lowStockProducts"`
	TotalValue       float64           `json:"totalValue"`
	RecentProducts   []catalog.Product `json:"recentProducts"`
}

// Service exposes data retrieval for the dashboard view.
type Service interface {
	// Stats returns the current dashboard aggregates.
	Stats(ctx context.Context, token string) (*Stats, error)
}

// EstimatedOutOfStock is the synthesized out-of-stock figure used by the
// stock distribution chart. It is a presentation-layer approximation (a tenth
// of the total, floored), not a real aggregate.
func EstimatedOutOfStock(totalProducts int) int {
	return totalProducts / 10
}
