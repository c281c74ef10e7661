package categories

import (
	"farmaplus.org/admin/internal/admin/catalog"
	"farmaplus.org/admin/internal/admin/templates/helpers"
)

// Row is the rendered representation of a category in the admin table.
type Row struct {
	ID           string
	Name         string
	Description  string
	ProductCount int
	EditPath     string
	DeletePath   string
}

// ListData represents the category index payload.
type ListData struct {
	Rows      []Row
	NewPath   string
	CSRFToken string
}

// FormValues carries the raw form field values.
type FormValues struct {
	Name        string
	Description string
}

// FormData represents the create/edit form payload.
type FormData struct {
	Title     string
	Action    string
	BackPath  string
	Values    FormValues
	Errors    map[string]string
	CSRFToken string
}

// BuildListData prepares the admin table rows.
func BuildListData(basePath string, list []catalog.Category) ListData {
	rows := make([]Row, 0, len(list))
	for _, c := range list {
		id := string(c.ID)
		rows = append(rows, Row{
			ID:           id,
			Name:         c.Name,
			Description:  c.Description,
			ProductCount: c.ProductCount,
			EditPath:     helpers.JoinPath(basePath, "categorias/"+id+"/editar"),
			DeletePath:   helpers.JoinPath(basePath, "categorias/"+id+"/eliminar"),
		})
	}
	return ListData{
		Rows:    rows,
		NewPath: helpers.JoinPath(basePath, "categorias/nueva"),
	}
}

// ValuesFromCategory seeds the edit form from an existing category.
func ValuesFromCategory(c catalog.Category) FormValues {
	return FormValues{Name: c.Name, Description: c.Description}
}
