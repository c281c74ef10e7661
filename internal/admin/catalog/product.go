package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Key is the canonical string form of a product or category identifier. The
// backend emits identifiers as either JSON numbers or strings depending on the
// data source; Key normalizes both so membership tests and lookups agree.
type Key string

// ParseKey normalizes a raw textual identifier into its canonical form.
func ParseKey(raw string) Key {
	return Key(strings.TrimSpace(raw))
}

// UnmarshalJSON accepts both numeric and string identifiers. Integral numbers
// lose their fractional notation so that 1 and "1" map to the same key.
func (k *Key) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == "" {
		*k = ""
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("catalog: decode key: %w", err)
		}
		*k = ParseKey(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("catalog: decode key: %w", err)
	}
	if i, err := num.Int64(); err == nil {
		*k = Key(strconv.FormatInt(i, 10))
		return nil
	}
	if f, err := num.Float64(); err == nil && f == float64(int64(f)) {
		*k = Key(strconv.FormatInt(int64(f), 10))
		return nil
	}
	*k = Key(num.String())
	return nil
}

// MarshalJSON emits a JSON number when the key is an integer literal, matching
// the representation the backend originally used, and a string otherwise.
func (k Key) MarshalJSON() ([]byte, error) {
	if i, err := strconv.ParseInt(string(k), 10, 64); err == nil {
		return json.Marshal(i)
	}
	return json.Marshal(string(k))
}

// IsZero reports whether the key is empty.
func (k Key) IsZero() bool { return k == "" }

// Category is a product grouping. Name is unique within the active set.
type Category struct {
	ID           Key    `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ProductCount int    `json:"productCount,omitempty"`
}

// Product is a storefront item. Category holds the resolved category name
// regardless of whether the wire form embedded a category object, a bare name
// string, or only a category_id.
type Product struct {
	ID                   Key
	Name                 string
	Description          string
	Price                float64
	Stock                int
	CategoryID           Key
	Category             string
	ActiveIngredient     string
	Strength             string
	Form                 string
	Manufacturer         string
	RequiresPrescription bool
	Image                string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type productWire struct {
	ID                   Key             `json:"id"`
	Name                 string          `json:"name"`
	Description          string          `json:"description"`
	Price                float64         `json:"price"`
	Stock                int             `json:"stock"`
	CategoryID           Key             `json:"category_id,omitempty"`
	Category             json.RawMessage `json:"category,omitempty"`
	ActiveIngredient     string          `json:"activeIngredient,omitempty"`
	Strength             string          `json:"strength,omitempty"`
	Form                 string          `json:"form,omitempty"`
	Manufacturer         string          `json:"manufacturer,omitempty"`
	RequiresPrescription bool            `json:"requiresPrescription,omitempty"`
	Image                string          `json:"image,omitempty"`
	CreatedAtSnake       string          `json:"created_at,omitempty"`
	UpdatedAtSnake       string          `json:"updated_at,omitempty"`
	CreatedAtCamel       string          `json:"createdAt,omitempty"`
	UpdatedAtCamel       string          `json:"updatedAt,omitempty"`
}

// UnmarshalJSON normalizes the union shapes at the data boundary: identifiers
// become canonical keys, the category union collapses to a name (plus id when
// an object was embedded), and both timestamp spellings are accepted.
func (p *Product) UnmarshalJSON(data []byte) error {
	var wire productWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("catalog: decode product: %w", err)
	}

	out := Product{
		ID:                   wire.ID,
		Name:                 wire.Name,
		Description:          wire.Description,
		Price:                wire.Price,
		Stock:                wire.Stock,
		CategoryID:           wire.CategoryID,
		ActiveIngredient:     wire.ActiveIngredient,
		Strength:             wire.Strength,
		Form:                 wire.Form,
		Manufacturer:         wire.Manufacturer,
		RequiresPrescription: wire.RequiresPrescription,
		Image:                wire.Image,
	}

	if len(wire.Category) > 0 {
		name, id, err := decodeCategoryRef(wire.Category)
		if err != nil {
			return err
		}
		out.Category = name
		if out.CategoryID.IsZero() {
			out.CategoryID = id
		}
	}

	out.CreatedAt = parseTimestamp(wire.CreatedAtSnake, wire.CreatedAtCamel)
	out.UpdatedAt = parseTimestamp(wire.UpdatedAtSnake, wire.UpdatedAtCamel)

	*p = out
	return nil
}

// MarshalJSON emits the camelCase wire form with the category as a plain name.
func (p Product) MarshalJSON() ([]byte, error) {
	wire := productWire{
		ID:                   p.ID,
		Name:                 p.Name,
		Description:          p.Description,
		Price:                p.Price,
		Stock:                p.Stock,
		CategoryID:           p.CategoryID,
		ActiveIngredient:     p.ActiveIngredient,
		Strength:             p.Strength,
		Form:                 p.Form,
		Manufacturer:         p.Manufacturer,
		RequiresPrescription: p.RequiresPrescription,
		Image:                p.Image,
	}
	if p.Category != "" {
		encoded, err := json.Marshal(p.Category)
		if err != nil {
			return nil, err
		}
		wire.Category = encoded
	}
	if !p.CreatedAt.IsZero() {
		wire.CreatedAtCamel = p.CreatedAt.UTC().Format(time.RFC3339)
	}
	if !p.UpdatedAt.IsZero() {
		wire.UpdatedAtCamel = p.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return json.Marshal(wire)
}

func decodeCategoryRef(raw json.RawMessage) (string, Key, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return "", "", nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var name string
		if err := json.Unmarshal(raw, &name); err != nil {
			return "", "", fmt.Errorf("catalog: decode category name: %w", err)
		}
		return name, "", nil
	}
	var cat Category
	if err := json.Unmarshal(raw, &cat); err != nil {
		return "", "", fmt.Errorf("catalog: decode embedded category: %w", err)
	}
	return cat.Name, cat.ID, nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTimestamp(values ...string) time.Time {
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		for _, layout := range timestampLayouts {
			if ts, err := time.Parse(layout, v); err == nil {
				return ts
			}
		}
	}
	return time.Time{}
}

// ProductInput carries the mutable product fields for create/update calls.
// The backend expects a numeric category_id, which Key restores on encode.
type ProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	CategoryID  Key     `json:"category_id"`
}

// CategoryInput carries the mutable category fields for create/update calls.
type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
