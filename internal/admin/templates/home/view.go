// Package home renders the public storefront.
package home

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/a-h/templ"

	"farmaplus.org/admin/internal/admin/templates/helpers"
)

// Page renders the catalog with the search form and product grid.
func Page(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b bytes.Buffer

		b.WriteString(`<section><h1 class="mb-4 text-xl font-semibold">Catálogo</h1>`)
		renderSearchForm(&b, data)
		renderFeatured(&b, data)
		renderGrid(&b, data)
		b.WriteString(`</section>`)

		_, err := w.Write(b.Bytes())
		return err
	})
}

// FavoritesPage renders the visitor's saved products.
func FavoritesPage(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b bytes.Buffer

		b.WriteString(`<section><h1 class="mb-4 text-xl font-semibold">Favoritos</h1>`)
		if len(data.Products) == 0 {
			b.WriteString(`<p class="text-sm text-slate-500" data-testid="empty-favorites">Todavía no has guardado ningún producto.</p>`)
		} else {
			fmt.Fprintf(&b, `<p class="mb-3 text-sm text-slate-500">%d productos guardados</p>`, len(data.Products))
			b.WriteString(`<div class="grid grid-cols-1 gap-4 sm:grid-cols-2 lg:grid-cols-3" data-testid="favorites-grid">`)
			for _, card := range data.Products {
				renderCard(&b, card, data.CSRFToken)
			}
			b.WriteString(`</div>`)
		}
		b.WriteString(`</section>`)

		_, err := w.Write(b.Bytes())
		return err
	})
}

func renderFeatured(b *bytes.Buffer, data PageData) {
	if len(data.Featured) == 0 {
		return
	}
	b.WriteString(`<h2 class="mb-3 text-lg font-semibold">Destacados</h2>`)
	b.WriteString(`<div class="mb-6 grid grid-cols-1 gap-4 sm:grid-cols-2 lg:grid-cols-4" data-testid="featured-grid">`)
	for _, card := range data.Featured {
		renderCard(b, card, data.CSRFToken)
	}
	b.WriteString(`</div>`)
}

func renderSearchForm(b *bytes.Buffer, data PageData) {
	b.WriteString(`<form method="get" action="/" class="mb-6 flex flex-wrap items-end gap-3" data-testid="search-form">`)

	fmt.Fprintf(b, `<div><label for="q" class="mb-1 block text-sm font-medium text-slate-700">Buscar</label>`+
		`<input id="q" name="q" type="search" value="%s" placeholder="Nombre, principio activo, laboratorio..." class="w-64 rounded-md border border-slate-300 px-3 py-2 text-sm"/></div>`,
		templ.EscapeString(data.Query))

	b.WriteString(`<div><label for="categoria" class="mb-1 block text-sm font-medium text-slate-700">Categoría</label>` +
		`<select id="categoria" name="categoria" class="rounded-md border border-slate-300 px-3 py-2 text-sm">` +
		`<option value="">Todas</option>`)
	for _, opt := range data.Categories {
		selected := ""
		if opt.Selected {
			selected = ` selected`
		}
		fmt.Fprintf(b, `<option value="%s"%s>%s</option>`,
			templ.EscapeString(opt.Name), selected, templ.EscapeString(opt.Name))
	}
	b.WriteString(`</select></div>`)

	b.WriteString(`<button type="submit" class="rounded-md bg-emerald-700 px-4 py-2 text-sm font-medium text-white hover:bg-emerald-800">Filtrar</button>`)
	if data.Query != "" || data.Category != "" {
		b.WriteString(`<a href="/" class="text-sm text-slate-500 hover:text-slate-700" data-testid="clear-filters">Limpiar filtros</a>`)
	}
	b.WriteString(`</form>`)
}

func renderGrid(b *bytes.Buffer, data PageData) {
	if len(data.Products) == 0 {
		b.WriteString(`<p class="text-sm text-slate-500" data-testid="empty-results">No se encontraron productos.</p>`)
		return
	}

	fmt.Fprintf(b, `<p class="mb-3 text-sm text-slate-500">%d productos</p>`, len(data.Products))
	b.WriteString(`<div class="grid grid-cols-1 gap-4 sm:grid-cols-2 lg:grid-cols-3" data-testid="product-grid">`)
	for _, card := range data.Products {
		renderCard(b, card, data.CSRFToken)
	}
	b.WriteString(`</div>`)
}

func renderCard(b *bytes.Buffer, card ProductCard, csrfToken string) {
	fmt.Fprintf(b, `<article class="flex flex-col rounded-lg border border-slate-200 bg-white p-4 shadow-sm" data-product-id="%s">`,
		templ.EscapeString(card.ID))

	fmt.Fprintf(b, `<h2 class="text-base font-semibold">%s</h2>`, templ.EscapeString(card.Name))
	fmt.Fprintf(b, `<p class="mt-1 text-xs text-slate-500">%s · %s</p>`,
		templ.EscapeString(card.Category), templ.EscapeString(card.Manufacturer))
	fmt.Fprintf(b, `<p class="mt-2 flex-1 text-sm text-slate-600">%s</p>`, templ.EscapeString(card.Description))
	if card.ActiveIngredient != "" {
		fmt.Fprintf(b, `<p class="mt-1 text-xs text-slate-500">Principio activo: %s</p>`, templ.EscapeString(card.ActiveIngredient))
	}
	if card.RequiresPrescription {
		fmt.Fprintf(b, `<span class="%s mt-2">Requiere receta</span>`, helpers.BadgeClass("warning"))
	}

	fmt.Fprintf(b, `<div class="mt-3 flex items-center justify-between"><span class="text-lg font-semibold">%s</span><span class="%s">%s</span></div>`,
		templ.EscapeString(card.Price), helpers.BadgeClass(card.StockTone), templ.EscapeString(card.StockLabel))

	b.WriteString(`<div class="mt-3 flex gap-2">`)
	renderToggle(b, "/favoritos/"+url.PathEscape(card.ID), card.Favorite, "Quitar de favoritos", "Añadir a favoritos", "favorite-toggle", csrfToken)
	renderToggle(b, "/carrito/"+url.PathEscape(card.ID), card.InCart, "Quitar del carrito", "Añadir al carrito", "cart-toggle", csrfToken)
	b.WriteString(`</div></article>`)
}

func renderToggle(b *bytes.Buffer, action string, active bool, activeLabel, inactiveLabel, testID, csrfToken string) {
	label := inactiveLabel
	class := "rounded-md border border-slate-300 px-3 py-1 text-xs font-medium text-slate-600 hover:bg-slate-100"
	if active {
		label = activeLabel
		class = "rounded-md bg-emerald-700 px-3 py-1 text-xs font-medium text-white hover:bg-emerald-800"
	}
	fmt.Fprintf(b, `<form method="post" action="%s">`, templ.EscapeString(action))
	fmt.Fprintf(b, `<input type="hidden" name="csrf_token" value="%s"/>`, templ.EscapeString(csrfToken))
	fmt.Fprintf(b, `<button type="submit" class="%s" data-testid="%s">%s</button></form>`,
		class, testID, templ.EscapeString(label))
}
