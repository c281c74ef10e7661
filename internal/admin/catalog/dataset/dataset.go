// Package dataset bundles the static storefront data used when the admin is
// not wired to the live backend API. The JSON file is embedded at build time
// and parsed once; callers must treat the returned slices as read-only.
package dataset

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"farmaplus.org/admin/internal/admin/catalog"
)

//go:embed data.json
var raw []byte

// Statistics are the precomputed aggregates shipped with the dataset.
type Statistics struct {
	TotalProducts    int     `json:"totalProducts"`
	TotalCategories  int     `json:"totalCategories"`
	LowStockProducts int     `json:"lowStockProducts"`
	TotalValue       float64 `json:"totalValue"`
}

// PriceRange is a storefront price filter bucket. Max of zero means open-ended.
type PriceRange struct {
	Label string  `json:"label"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// Data is the full bundled dataset.
type Data struct {
	Categories    []catalog.Category `json:"categories"`
	Products      []catalog.Product  `json:"products"`
	Statistics    Statistics         `json:"statistics"`
	Manufacturers []string           `json:"manufacturers"`
	PriceRanges   []PriceRange       `json:"priceRanges"`
	ProductForms  []string           `json:"productForms"`
}

var (
	once     sync.Once
	parsed   *Data
	parseErr error
)

// Load parses the embedded dataset. The parse happens once per process.
func Load() (*Data, error) {
	once.Do(func() {
		var d Data
		if err := json.Unmarshal(raw, &d); err != nil {
			parseErr = fmt.Errorf("dataset: parse embedded data: %w", err)
			return
		}
		parsed = &d
	})
	return parsed, parseErr
}
