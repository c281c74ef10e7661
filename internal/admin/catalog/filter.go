package catalog

import (
	"sort"
	"strings"
)

// Filter returns the products matching the free-text query AND the category
// selection, preserving the original relative order. Text matching is a
// case-insensitive substring test over name, description, active ingredient
// and manufacturer. Category matching is exact and case-sensitive against the
// resolved category name; an empty categoryName matches everything. The input
// slice is never mutated.
func Filter(products []Product, query, categoryName string) []Product {
	term := strings.ToLower(query)

	result := make([]Product, 0, len(products))
	for _, p := range products {
		if !matchesText(p, term) {
			continue
		}
		if categoryName != "" && p.Category != categoryName {
			continue
		}
		result = append(result, p)
	}
	return result
}

func matchesText(p Product, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term) ||
		(p.ActiveIngredient != "" && strings.Contains(strings.ToLower(p.ActiveIngredient), term)) ||
		(p.Manufacturer != "" && strings.Contains(strings.ToLower(p.Manufacturer), term))
}

// Featured returns up to limit products ordered by stock, highest first.
// Ties keep their original relative order.
func Featured(products []Product, limit int) []Product {
	sorted := append([]Product(nil), products...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Stock > sorted[j].Stock
	})
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
