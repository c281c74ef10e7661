package dashboard

import (
	"strconv"

	admindashboard "farmaplus.org/admin/internal/admin/dashboard"
	"farmaplus.org/admin/internal/admin/templates/helpers"
)

// Card is a single KPI tile.
type Card struct {
	ID    string
	Label string
	Value string
	Tone  string
}

// RecentRow is a recently added product entry.
type RecentRow struct {
	Name     string
	Category string
	Price    string
	Stock    int
	Added    string
}

// StockSlice is one segment of the stock distribution summary.
type StockSlice struct {
	Label string
	Count int
	Tone  string
}

// PageData represents the dashboard payload.
type PageData struct {
	Cards  []Card
	Stock  []StockSlice
	Recent []RecentRow
}

// BuildPageData prepares the dashboard payload from the stats aggregate.
func BuildPageData(stats *admindashboard.Stats) PageData {
	if stats == nil {
		return PageData{}
	}

	cards := []Card{
		{ID: "total-products", Label: "Productos", Value: strconv.Itoa(stats.TotalProducts)},
		{ID: "total-categories", Label: "Categorías", Value: strconv.Itoa(stats.TotalCategories)},
		{ID: "low-stock", Label: "Stock bajo", Value: strconv.Itoa(stats.LowStockProducts), Tone: "warning"},
		{ID: "total-value", Label: "Valor del inventario", Value: helpers.Price(stats.TotalValue)},
	}

	outOfStock := admindashboard.EstimatedOutOfStock(stats.TotalProducts)
	inStock := stats.TotalProducts - stats.LowStockProducts - outOfStock
	if inStock < 0 {
		inStock = 0
	}
	stock := []StockSlice{
		{Label: "En stock", Count: inStock, Tone: "success"},
		{Label: "Stock bajo", Count: stats.LowStockProducts, Tone: "warning"},
		{Label: "Sin stock", Count: outOfStock, Tone: "danger"},
	}

	recent := make([]RecentRow, 0, len(stats.RecentProducts))
	for _, p := range stats.RecentProducts {
		recent = append(recent, RecentRow{
			Name:     p.Name,
			Category: p.Category,
			Price:    helpers.Price(p.Price),
			Stock:    p.Stock,
			Added:    helpers.Date(p.CreatedAt, ""),
		})
	}

	return PageData{Cards: cards, Stock: stock, Recent: recent}
}
