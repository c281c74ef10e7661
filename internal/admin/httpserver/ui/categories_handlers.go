package ui

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"farmaplus.org/admin/internal/admin/catalog"
	custommw "farmaplus.org/admin/internal/admin/httpserver/middleware"
	categoriestpl "farmaplus.org/admin/internal/admin/templates/categories"
	"farmaplus.org/admin/internal/admin/validate"
)

// CategoryList renders the admin category table.
func (h *Handlers) CategoryList(w http.ResponseWriter, r *http.Request) {
	token := custommw.TokenFromContext(r.Context())

	categories, err := h.catalog.Categories(r.Context(), token)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	data := categoriestpl.BuildListData(h.basePath, categories)
	data.CSRFToken = custommw.CSRFTokenFromContext(r.Context())

	shell := h.shell(r, "Categorías")
	shell.Flash = flashMessage(r.URL.Query().Get("ok"))
	h.render(w, r, shell, categoriestpl.List(data))
}

// CategoryNew renders an empty create form.
func (h *Handlers) CategoryNew(w http.ResponseWriter, r *http.Request) {
	data := h.categoryFormData(r, "Nueva categoría", h.adminPath("categorias"), categoriestpl.FormValues{}, nil)
	h.render(w, r, h.shell(r, data.Title), categoriestpl.Form(data))
}

// CategoryCreate validates the submission and creates the category.
func (h *Handlers) CategoryCreate(w http.ResponseWriter, r *http.Request) {
	values, input, fieldErrors := parseCategoryForm(r)
	if len(fieldErrors) > 0 {
		data := h.categoryFormData(r, "Nueva categoría", h.adminPath("categorias"), values, fieldErrors)
		h.render(w, r, h.shell(r, data.Title), categoriestpl.Form(data))
		return
	}

	token := custommw.TokenFromContext(r.Context())
	if _, err := h.catalog.CreateCategory(r.Context(), token, input); err != nil {
		h.serviceError(w, r, err)
		return
	}
	http.Redirect(w, r, h.adminPath("categorias")+"?ok=created", http.StatusSeeOther)
}

// CategoryEdit renders the edit form seeded with the stored category.
func (h *Handlers) CategoryEdit(w http.ResponseWriter, r *http.Request) {
	id := catalog.ParseKey(chi.URLParam(r, "id"))
	token := custommw.TokenFromContext(r.Context())

	category, err := h.catalog.Category(r.Context(), token, id)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	action := h.adminPath("categorias/" + string(id))
	data := h.categoryFormData(r, "Editar categoría", action, categoriestpl.ValuesFromCategory(*category), nil)
	h.render(w, r, h.shell(r, data.Title), categoriestpl.Form(data))
}

// CategoryUpdate validates the submission and updates the category.
func (h *Handlers) CategoryUpdate(w http.ResponseWriter, r *http.Request) {
	id := catalog.ParseKey(chi.URLParam(r, "id"))
	action := h.adminPath("categorias/" + string(id))

	values, input, fieldErrors := parseCategoryForm(r)
	if len(fieldErrors) > 0 {
		data := h.categoryFormData(r, "Editar categoría", action, values, fieldErrors)
		h.render(w, r, h.shell(r, data.Title), categoriestpl.Form(data))
		return
	}

	token := custommw.TokenFromContext(r.Context())
	if _, err := h.catalog.UpdateCategory(r.Context(), token, id, input); err != nil {
		h.serviceError(w, r, err)
		return
	}
	http.Redirect(w, r, h.adminPath("categorias")+"?ok=updated", http.StatusSeeOther)
}

// CategoryDelete removes the category and returns to the list.
func (h *Handlers) CategoryDelete(w http.ResponseWriter, r *http.Request) {
	id := catalog.ParseKey(chi.URLParam(r, "id"))
	token := custommw.TokenFromContext(r.Context())

	if err := h.catalog.DeleteCategory(r.Context(), token, id); err != nil {
		h.serviceError(w, r, err)
		return
	}
	http.Redirect(w, r, h.adminPath("categorias")+"?ok=deleted", http.StatusSeeOther)
}

func (h *Handlers) categoryFormData(r *http.Request, title, action string, values categoriestpl.FormValues, fieldErrors map[string]string) categoriestpl.FormData {
	return categoriestpl.FormData{
		Title:     title,
		Action:    action,
		BackPath:  h.adminPath("categorias"),
		Values:    values,
		Errors:    fieldErrors,
		CSRFToken: custommw.CSRFTokenFromContext(r.Context()),
	}
}

func parseCategoryForm(r *http.Request) (categoriestpl.FormValues, catalog.CategoryInput, map[string]string) {
	_ = r.ParseForm()

	values := categoriestpl.FormValues{
		Name:        strings.TrimSpace(r.PostFormValue("name")),
		Description: strings.TrimSpace(r.PostFormValue("description")),
	}

	form := validate.CategoryForm{Name: values.Name, Description: values.Description}
	if fieldErrors := validate.Category(form); fieldErrors.Any() {
		return values, catalog.CategoryInput{}, fieldErrors
	}

	return values, catalog.CategoryInput{Name: values.Name, Description: values.Description}, nil
}
