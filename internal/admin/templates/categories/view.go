// Package categories renders the back-office category pages.
package categories

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// List renders the category index table.
func List(data ListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b bytes.Buffer

		b.WriteString(`<section><div class="mb-4 flex items-center justify-between"><h1 class="text-xl font-semibold">Categorías</h1>`)
		fmt.Fprintf(&b, `<a href="%s" class="rounded-md bg-emerald-700 px-4 py-2 text-sm font-medium text-white hover:bg-emerald-800" data-testid="new-category">Nueva categoría</a></div>`,
			templ.EscapeString(data.NewPath))

		if len(data.Rows) == 0 {
			b.WriteString(`<p class="text-sm text-slate-500">No hay categorías.</p></section>`)
			_, err := w.Write(b.Bytes())
			return err
		}

		b.WriteString(`<table class="w-full border-collapse overflow-hidden rounded-lg bg-white text-sm shadow-sm" data-testid="category-table">`)
		b.WriteString(`<thead><tr class="border-b border-slate-200 text-left text-xs uppercase text-slate-500">` +
			`<th class="px-4 py-3">Nombre</th><th class="px-4 py-3">Descripción</th><th class="px-4 py-3">Productos</th><th class="px-4 py-3"></th></tr></thead><tbody>`)
		for _, row := range data.Rows {
			fmt.Fprintf(&b, `<tr class="border-b border-slate-100" data-category-id="%s">`, templ.EscapeString(row.ID))
			fmt.Fprintf(&b, `<td class="px-4 py-3 font-medium">%s</td>`, templ.EscapeString(row.Name))
			fmt.Fprintf(&b, `<td class="px-4 py-3">%s</td>`, templ.EscapeString(row.Description))
			fmt.Fprintf(&b, `<td class="px-4 py-3">%d</td>`, row.ProductCount)
			b.WriteString(`<td class="px-4 py-3 text-right">`)
			fmt.Fprintf(&b, `<a href="%s" class="mr-2 text-emerald-700 hover:underline">Editar</a>`, templ.EscapeString(row.EditPath))
			fmt.Fprintf(&b, `<form method="post" action="%s" class="inline">`, templ.EscapeString(row.DeletePath))
			fmt.Fprintf(&b, `<input type="hidden" name="csrf_token" value="%s"/>`, templ.EscapeString(data.CSRFToken))
			b.WriteString(`<button type="submit" class="text-rose-600 hover:underline">Eliminar</button></form></td></tr>`)
		}
		b.WriteString(`</tbody></table></section>`)

		_, err := w.Write(b.Bytes())
		return err
	})
}

// Form renders the create/edit form.
func Form(data FormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b bytes.Buffer

		fmt.Fprintf(&b, `<section class="mx-auto max-w-lg"><h1 class="mb-4 text-xl font-semibold">%s</h1>`, templ.EscapeString(data.Title))

		fmt.Fprintf(&b, `<form method="post" action="%s" class="space-y-4 rounded-lg border border-slate-200 bg-white p-6 shadow-sm" data-testid="category-form">`,
			templ.EscapeString(data.Action))
		fmt.Fprintf(&b, `<input type="hidden" name="csrf_token" value="%s"/>`, templ.EscapeString(data.CSRFToken))

		fmt.Fprintf(&b, `<div><label for="name" class="mb-1 block text-sm font-medium text-slate-700">Nombre</label>`+
			`<input id="name" name="name" type="text" value="%s" class="w-full rounded-md border border-slate-300 px-3 py-2 text-sm"/>`,
			templ.EscapeString(data.Values.Name))
		if msg := data.Errors["name"]; msg != "" {
			fmt.Fprintf(&b, `<p class="mt-1 text-xs text-rose-600" data-field-error="name">%s</p>`, templ.EscapeString(msg))
		}
		b.WriteString(`</div>`)

		fmt.Fprintf(&b, `<div><label for="description" class="mb-1 block text-sm font-medium text-slate-700">Descripción</label>`+
			`<textarea id="description" name="description" rows="3" class="w-full rounded-md border border-slate-300 px-3 py-2 text-sm">%s</textarea>`,
			templ.EscapeString(data.Values.Description))
		if msg := data.Errors["description"]; msg != "" {
			fmt.Fprintf(&b, `<p class="mt-1 text-xs text-rose-600" data-field-error="description">%s</p>`, templ.EscapeString(msg))
		}
		b.WriteString(`</div>`)

		b.WriteString(`<div class="flex items-center gap-3">`)
		b.WriteString(`<button type="submit" class="rounded-md bg-emerald-700 px-4 py-2 text-sm font-medium text-white hover:bg-emerald-800">Guardar</button>`)
		fmt.Fprintf(&b, `<a href="%s" class="text-sm text-slate-500 hover:underline">Cancelar</a>`, templ.EscapeString(data.BackPath))
		b.WriteString(`</div></form></section>`)

		_, err := w.Write(b.Bytes())
		return err
	})
}
