package ui

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"farmaplus.org/admin/internal/admin/catalog"
	custommw "farmaplus.org/admin/internal/admin/httpserver/middleware"
	"farmaplus.org/admin/internal/admin/picks"
	hometpl "farmaplus.org/admin/internal/admin/templates/home"
)

// Home renders the public catalog with the active search and category filter.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	category := r.URL.Query().Get("categoria")

	products, err := h.catalog.Products(r.Context(), "")
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	categories, err := h.catalog.Categories(r.Context(), "")
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	filtered := catalog.Filter(products, query, category)

	var favorites, cart picks.Set
	if sess, ok := custommw.SessionFromContext(r.Context()); ok {
		favorites = sess.Favorites()
		cart = sess.Cart()
	}

	data := hometpl.BuildPageData(filtered, categories, favorites, cart, query, category)
	if query == "" && category == "" {
		data.Featured = hometpl.BuildCards(catalog.Featured(products, featuredLimit), favorites, cart)
	}
	data.CSRFToken = custommw.CSRFTokenFromContext(r.Context())

	h.render(w, r, h.shell(r, "Catálogo"), hometpl.Page(data))
}

const featuredLimit = 8

// Favorites renders the visitor's saved products.
func (h *Handlers) Favorites(w http.ResponseWriter, r *http.Request) {
	var favorites, cart picks.Set
	if sess, ok := custommw.SessionFromContext(r.Context()); ok {
		favorites = sess.Favorites()
		cart = sess.Cart()
	}

	products, err := h.catalog.Products(r.Context(), "")
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	saved := make([]catalog.Product, 0, len(favorites))
	for _, p := range products {
		if favorites.Has(p.ID) {
			saved = append(saved, p)
		}
	}

	data := hometpl.PageData{
		Products:  hometpl.BuildCards(saved, favorites, cart),
		CSRFToken: custommw.CSRFTokenFromContext(r.Context()),
	}

	h.render(w, r, h.shell(r, "Favoritos"), hometpl.FavoritesPage(data))
}

// ToggleFavorite flips favorite membership for a product and returns to the
// page the visitor came from.
func (h *Handlers) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	h.togglePick(w, r, func(sess toggler, id catalog.Key) { sess.ToggleFavorite(id) })
}

// ToggleCart flips cart membership for a product.
func (h *Handlers) ToggleCart(w http.ResponseWriter, r *http.Request) {
	h.togglePick(w, r, func(sess toggler, id catalog.Key) { sess.ToggleCart(id) })
}

type toggler interface {
	ToggleFavorite(catalog.Key)
	ToggleCart(catalog.Key)
}

func (h *Handlers) togglePick(w http.ResponseWriter, r *http.Request, apply func(toggler, catalog.Key)) {
	id := catalog.ParseKey(chi.URLParam(r, "id"))
	if id == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	sess, ok := custommw.SessionFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	apply(sess, id)

	http.Redirect(w, r, backTarget(r), http.StatusSeeOther)
}

// backTarget returns the same-site page to return to after a toggle.
func backTarget(r *http.Request) string {
	ref := r.Header.Get("Referer")
	if ref != "" && strings.HasPrefix(ref, "/") && !strings.HasPrefix(ref, "//") {
		return ref
	}
	if ref != "" {
		if r.URL != nil && r.Host != "" {
			prefix := "://" + r.Host + "/"
			if idx := strings.Index(ref, prefix); idx > 0 {
				return ref[idx+len(prefix)-1:]
			}
		}
	}
	return "/"
}
