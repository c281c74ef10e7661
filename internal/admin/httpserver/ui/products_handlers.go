package ui

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"farmaplus.org/admin/internal/admin/catalog"
	custommw "farmaplus.org/admin/internal/admin/httpserver/middleware"
	productstpl "farmaplus.org/admin/internal/admin/templates/products"
	"farmaplus.org/admin/internal/admin/validate"
)

// ProductList renders the admin product table.
func (h *Handlers) ProductList(w http.ResponseWriter, r *http.Request) {
	token := custommw.TokenFromContext(r.Context())

	products, err := h.catalog.Products(r.Context(), token)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	data := productstpl.BuildListData(h.basePath, products)
	data.CSRFToken = custommw.CSRFTokenFromContext(r.Context())

	shell := h.shell(r, "Productos")
	shell.Flash = flashMessage(r.URL.Query().Get("ok"))
	h.render(w, r, shell, productstpl.List(data))
}

// ProductNew renders an empty create form.
func (h *Handlers) ProductNew(w http.ResponseWriter, r *http.Request) {
	data, err := h.productFormData(r, "Nuevo producto", h.adminPath("productos"), productstpl.FormValues{}, nil)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.render(w, r, h.shell(r, data.Title), productstpl.Form(data))
}

// ProductCreate validates the submission and creates the product.
func (h *Handlers) ProductCreate(w http.ResponseWriter, r *http.Request) {
	values, input, fieldErrors := parseProductForm(r)
	if len(fieldErrors) > 0 {
		h.rerenderProductForm(w, r, "Nuevo producto", h.adminPath("productos"), values, fieldErrors)
		return
	}

	token := custommw.TokenFromContext(r.Context())
	if _, err := h.catalog.CreateProduct(r.Context(), token, input); err != nil {
		h.serviceError(w, r, err)
		return
	}
	http.Redirect(w, r, h.adminPath("productos")+"?ok=created", http.StatusSeeOther)
}

// ProductEdit renders the edit form seeded with the stored product.
func (h *Handlers) ProductEdit(w http.ResponseWriter, r *http.Request) {
	id := catalog.ParseKey(chi.URLParam(r, "id"))
	token := custommw.TokenFromContext(r.Context())

	product, err := h.catalog.Product(r.Context(), token, id)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	action := h.adminPath("productos/" + string(id))
	data, err := h.productFormData(r, "Editar producto", action, productstpl.ValuesFromProduct(*product), nil)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.render(w, r, h.shell(r, data.Title), productstpl.Form(data))
}

// ProductUpdate validates the submission and updates the product.
func (h *Handlers) ProductUpdate(w http.ResponseWriter, r *http.Request) {
	id := catalog.ParseKey(chi.URLParam(r, "id"))
	action := h.adminPath("productos/" + string(id))

	values, input, fieldErrors := parseProductForm(r)
	if len(fieldErrors) > 0 {
		h.rerenderProductForm(w, r, "Editar producto", action, values, fieldErrors)
		return
	}

	token := custommw.TokenFromContext(r.Context())
	if _, err := h.catalog.UpdateProduct(r.Context(), token, id, input); err != nil {
		h.serviceError(w, r, err)
		return
	}
	http.Redirect(w, r, h.adminPath("productos")+"?ok=updated", http.StatusSeeOther)
}

// ProductDelete removes the product and returns to the list.
func (h *Handlers) ProductDelete(w http.ResponseWriter, r *http.Request) {
	id := catalog.ParseKey(chi.URLParam(r, "id"))
	token := custommw.TokenFromContext(r.Context())

	if err := h.catalog.DeleteProduct(r.Context(), token, id); err != nil {
		h.serviceError(w, r, err)
		return
	}
	http.Redirect(w, r, h.adminPath("productos")+"?ok=deleted", http.StatusSeeOther)
}

func (h *Handlers) productFormData(r *http.Request, title, action string, values productstpl.FormValues, fieldErrors map[string]string) (productstpl.FormData, error) {
	token := custommw.TokenFromContext(r.Context())
	categories, err := h.catalog.Categories(r.Context(), token)
	if err != nil {
		return productstpl.FormData{}, err
	}
	return productstpl.FormData{
		Title:      title,
		Action:     action,
		BackPath:   h.adminPath("productos"),
		Values:     values,
		Categories: categories,
		Errors:     fieldErrors,
		CSRFToken:  custommw.CSRFTokenFromContext(r.Context()),
	}, nil
}

func (h *Handlers) rerenderProductForm(w http.ResponseWriter, r *http.Request, title, action string, values productstpl.FormValues, fieldErrors map[string]string) {
	data, err := h.productFormData(r, title, action, values, fieldErrors)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.render(w, r, h.shell(r, title), productstpl.Form(data))
}

// parseProductForm converts the raw submission into a typed input, collecting
// per-field messages for anything that fails to parse or validate.
func parseProductForm(r *http.Request) (productstpl.FormValues, catalog.ProductInput, map[string]string) {
	_ = r.ParseForm()

	values := productstpl.FormValues{
		Name:        strings.TrimSpace(r.PostFormValue("name")),
		Description: strings.TrimSpace(r.PostFormValue("description")),
		Price:       strings.TrimSpace(r.PostFormValue("price")),
		Stock:       strings.TrimSpace(r.PostFormValue("stock")),
		CategoryID:  strings.TrimSpace(r.PostFormValue("category_id")),
	}

	parseErrors := make(map[string]string)

	price := 0.0
	if values.Price != "" {
		parsed, err := strconv.ParseFloat(strings.Replace(values.Price, ",", ".", 1), 64)
		if err != nil {
			parseErrors["price"] = "El precio no es válido"
		} else {
			price = parsed
		}
	}

	stock := 0
	if values.Stock != "" {
		parsed, err := strconv.Atoi(values.Stock)
		if err != nil {
			parseErrors["stock"] = "El stock no es válido"
		} else {
			stock = parsed
		}
	}

	form := validate.ProductForm{
		Name:        values.Name,
		Description: values.Description,
		Price:       price,
		Stock:       stock,
		CategoryID:  values.CategoryID,
	}

	fieldErrors := map[string]string(validate.Product(form))
	for field, msg := range parseErrors {
		if fieldErrors == nil {
			fieldErrors = make(map[string]string)
		}
		fieldErrors[field] = msg
	}
	if len(fieldErrors) > 0 {
		return values, catalog.ProductInput{}, fieldErrors
	}

	input := catalog.ProductInput{
		Name:        form.Name,
		Description: form.Description,
		Price:       form.Price,
		Stock:       form.Stock,
		CategoryID:  catalog.ParseKey(form.CategoryID),
	}
	return values, input, nil
}

func flashMessage(key string) string {
	switch key {
	case "created":
		return "Guardado correctamente"
	case "updated":
		return "Actualizado correctamente"
	case "deleted":
		return "Eliminado correctamente"
	default:
		return ""
	}
}
