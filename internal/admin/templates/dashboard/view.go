// Package dashboard renders the back-office landing page.
package dashboard

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"farmaplus.org/admin/internal/admin/templates/helpers"
)

// Page renders the KPI cards, stock distribution and recent products.
func Page(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b bytes.Buffer

		b.WriteString(`<section><h1 class="mb-4 text-xl font-semibold">Panel de administración</h1>`)

		b.WriteString(`<div class="grid grid-cols-1 gap-4 sm:grid-cols-2 lg:grid-cols-4" data-testid="kpi-cards">`)
		for _, card := range data.Cards {
			fmt.Fprintf(&b, `<div class="rounded-lg border border-slate-200 bg-white p-4 shadow-sm" data-kpi="%s">`, templ.EscapeString(card.ID))
			fmt.Fprintf(&b, `<p class="text-xs uppercase text-slate-500">%s</p>`, templ.EscapeString(card.Label))
			fmt.Fprintf(&b, `<p class="mt-1 text-2xl font-semibold">%s</p>`, templ.EscapeString(card.Value))
			b.WriteString(`</div>`)
		}
		b.WriteString(`</div>`)

		b.WriteString(`<h2 class="mb-2 mt-8 text-base font-semibold">Distribución de stock</h2>`)
		b.WriteString(`<div class="flex gap-3" data-testid="stock-distribution">`)
		for _, slice := range data.Stock {
			fmt.Fprintf(&b, `<span class="%s">%s: %d</span>`, helpers.BadgeClass(slice.Tone), templ.EscapeString(slice.Label), slice.Count)
		}
		b.WriteString(`</div>`)

		b.WriteString(`<h2 class="mb-2 mt-8 text-base font-semibold">Productos recientes</h2>`)
		if len(data.Recent) == 0 {
			b.WriteString(`<p class="text-sm text-slate-500">Sin productos recientes.</p>`)
		} else {
			b.WriteString(`<table class="w-full border-collapse overflow-hidden rounded-lg bg-white text-sm shadow-sm" data-testid="recent-products">`)
			b.WriteString(`<thead><tr class="border-b border-slate-200 text-left text-xs uppercase text-slate-500">` +
				`<th class="px-4 py-3">Nombre</th><th class="px-4 py-3">Categoría</th><th class="px-4 py-3">Precio</th><th class="px-4 py-3">Stock</th><th class="px-4 py-3">Alta</th></tr></thead><tbody>`)
			for _, row := range data.Recent {
				b.WriteString(`<tr class="border-b border-slate-100">`)
				fmt.Fprintf(&b, `<td class="px-4 py-3 font-medium">%s</td>`, templ.EscapeString(row.Name))
				fmt.Fprintf(&b, `<td class="px-4 py-3">%s</td>`, templ.EscapeString(row.Category))
				fmt.Fprintf(&b, `<td class="px-4 py-3">%s</td>`, templ.EscapeString(row.Price))
				fmt.Fprintf(&b, `<td class="px-4 py-3">%d</td>`, row.Stock)
				fmt.Fprintf(&b, `<td class="px-4 py-3">%s</td>`, templ.EscapeString(row.Added))
				b.WriteString(`</tr>`)
			}
			b.WriteString(`</tbody></table>`)
		}
		b.WriteString(`</section>`)

		_, err := w.Write(b.Bytes())
		return err
	})
}
