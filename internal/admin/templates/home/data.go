package home

import (
	"farmaplus.org/admin/internal/admin/catalog"
	"farmaplus.org/admin/internal/admin/picks"
	"farmaplus.org/admin/internal/admin/templates/helpers"
)

// ProductCard is the rendered representation of a storefront item.
type ProductCard struct {
	ID                   string
	Name                 string
	Description          string
	Category             string
	Manufacturer         string
	ActiveIngredient     string
	Price                string
	Stock                int
	StockLabel           string
	StockTone            string
	RequiresPrescription bool
	Favorite             bool
	InCart               bool
}

// CategoryOption is a filter dropdown entry.
type CategoryOption struct {
	Name     string
	Selected bool
}

// PageData represents the storefront payload.
type PageData struct {
	Query      string
	Category   string
	Categories []CategoryOption
	Featured   []ProductCard
	Products   []ProductCard
	CSRFToken  string
}

// BuildCards converts products into rendered cards, marking each one with the
// visitor's favorite and cart membership.
func BuildCards(products []catalog.Product, favorites, cart picks.Set) []ProductCard {
	cards := make([]ProductCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, ProductCard{
			ID:                   string(p.ID),
			Name:                 p.Name,
			Description:          p.Description,
			Category:             p.Category,
			Manufacturer:         p.Manufacturer,
			ActiveIngredient:     p.ActiveIngredient,
			Price:                helpers.Price(p.Price),
			Stock:                p.Stock,
			StockLabel:           helpers.StockLabel(p.Stock),
			StockTone:            helpers.StockTone(p.Stock),
			RequiresPrescription: p.RequiresPrescription,
			Favorite:             favorites.Has(p.ID),
			InCart:               cart.Has(p.ID),
		})
	}
	return cards
}

// BuildPageData prepares the storefront payload.
func BuildPageData(products []catalog.Product, categories []catalog.Category, favorites, cart picks.Set, query, category string) PageData {
	options := make([]CategoryOption, 0, len(categories))
	for _, c := range categories {
		options = append(options, CategoryOption{Name: c.Name, Selected: c.Name == category})
	}

	return PageData{
		Query:      query,
		Category:   category,
		Categories: options,
		Products:   BuildCards(products, favorites, cart),
	}
}
