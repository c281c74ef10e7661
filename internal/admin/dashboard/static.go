package dashboard

import (
	"context"
	"sort"

	"farmaplus.org/admin/internal/admin/catalog"
)

// Stock at or below this count is flagged as low.
const lowStockThreshold = 10

// StaticService derives dashboard aggregates from a catalog service instead
// of the backend stats endpoint. Used when running against the bundled
// dataset.
type StaticService struct {
	catalog catalog.Service
	// RecentLimit caps the recent products list; defaults to 5.
	RecentLimit int
}

// NewStaticService wires a StaticService over the given catalog.
func NewStaticService(svc catalog.Service) *StaticService {
	return &StaticService{catalog: svc, RecentLimit: 5}
}

// Stats computes the aggregates from the current catalog contents.
func (s *StaticService) Stats(ctx context.Context, token string) (*Stats, error) {
	if s.catalog == nil {
		return nil, catalog.ErrNotConfigured
	}

	products, err := s.catalog.Products(ctx, token)
	if err != nil {
		return nil, err
	}
	categories, err := s.catalog.Categories(ctx, token)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		TotalProducts:   len(products),
		TotalCategories: len(categories),
	}
	for _, p := range products {
		if p.Stock <= lowStockThreshold {
			stats.LowStockProducts++
		}
		stats.TotalValue += p.Price * float64(p.Stock)
	}

	recent := append([]catalog.Product(nil), products...)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	limit := s.RecentLimit
	if limit <= 0 {
		limit = 5
	}
	if len(recent) > limit {
		recent = recent[:limit]
	}
	stats.RecentProducts = recent

	return stats, nil
}
