package products

import (
	"strconv"

	"farmaplus.org/admin/internal/admin/catalog"
	"farmaplus.org/admin/internal/admin/templates/helpers"
)

// Row is the rendered representation of a product in the admin table.
type Row struct {
	ID         string
	Name       string
	Category   string
	Price      string
	Stock      int
	StockTone  string
	EditPath   string
	DeletePath string
}

// ListData represents the product index payload.
type ListData struct {
	Rows      []Row
	NewPath   string
	CSRFToken string
}

// FormValues carries the raw form field values so invalid submissions can be
// re-rendered as typed.
type FormValues struct {
	Name        string
	Description string
	Price       string
	Stock       string
	CategoryID  string
}

// FormData represents the create/edit form payload.
type FormData struct {
	Title      string
	Action     string
	BackPath   string
	Values     FormValues
	Categories []catalog.Category
	Errors     map[string]string
	CSRFToken  string
}

// BuildListData prepares the admin table rows.
func BuildListData(basePath string, list []catalog.Product) ListData {
	rows := make([]Row, 0, len(list))
	for _, p := range list {
		id := string(p.ID)
		rows = append(rows, Row{
			ID:         id,
			Name:       p.Name,
			Category:   p.Category,
			Price:      helpers.Price(p.Price),
			Stock:      p.Stock,
			StockTone:  helpers.StockTone(p.Stock),
			EditPath:   helpers.JoinPath(basePath, "productos/"+id+"/editar"),
			DeletePath: helpers.JoinPath(basePath, "productos/"+id+"/eliminar"),
		})
	}
	return ListData{
		Rows:    rows,
		NewPath: helpers.JoinPath(basePath, "productos/nuevo"),
	}
}

// ValuesFromProduct seeds the edit form from an existing product.
func ValuesFromProduct(p catalog.Product) FormValues {
	return FormValues{
		Name:        p.Name,
		Description: p.Description,
		Price:       strconv.FormatFloat(p.Price, 'f', 2, 64),
		Stock:       strconv.Itoa(p.Stock),
		CategoryID:  string(p.CategoryID),
	}
}
