// Package products renders the back-office product pages.
package products

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"farmaplus.org/admin/internal/admin/templates/helpers"
)

// List renders the product index table.
func List(data ListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b bytes.Buffer

		b.WriteString(`<section><div class="mb-4 flex items-center justify-between"><h1 class="text-xl font-semibold">Productos</h1>`)
		fmt.Fprintf(&b, `<a href="%s" class="rounded-md bg-emerald-700 px-4 py-2 text-sm font-medium text-white hover:bg-emerald-800" data-testid="new-product">Nuevo producto</a></div>`,
			templ.EscapeString(data.NewPath))

		if len(data.Rows) == 0 {
			b.WriteString(`<p class="text-sm text-slate-500">No hay productos.</p></section>`)
			_, err := w.Write(b.Bytes())
			return err
		}

		b.WriteString(`<table class="w-full border-collapse overflow-hidden rounded-lg bg-white text-sm shadow-sm" data-testid="product-table">`)
		b.WriteString(`<thead><tr class="border-b border-slate-200 text-left text-xs uppercase text-slate-500">` +
			`<th class="px-4 py-3">Nombre</th><th class="px-4 py-3">Categoría</th><th class="px-4 py-3">Precio</th><th class="px-4 py-3">Stock</th><th class="px-4 py-3"></th></tr></thead><tbody>`)
		for _, row := range data.Rows {
			fmt.Fprintf(&b, `<tr class="border-b border-slate-100" data-product-id="%s">`, templ.EscapeString(row.ID))
			fmt.Fprintf(&b, `<td class="px-4 py-3 font-medium">%s</td>`, templ.EscapeString(row.Name))
			fmt.Fprintf(&b, `<td class="px-4 py-3">%s</td>`, templ.EscapeString(row.Category))
			fmt.Fprintf(&b, `<td class="px-4 py-3">%s</td>`, templ.EscapeString(row.Price))
			fmt.Fprintf(&b, `<td class="px-4 py-3"><span class="%s">%d</span></td>`, helpers.BadgeClass(row.StockTone), row.Stock)
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

		fmt.Fprintf(&b, `<form method="post" action="%s" class="space-y-4 rounded-lg border border-slate-200 bg-white p-6 shadow-sm" data-testid="product-form">`,
			templ.EscapeString(data.Action))
		fmt.Fprintf(&b, `<input type="hidden" name="csrf_token" value="%s"/>`, templ.EscapeString(data.CSRFToken))

		writeInput(&b, "name", "Nombre", "text", data.Values.Name, data.Errors["name"])
		writeTextarea(&b, "description", "Descripción", data.Values.Description, data.Errors["description"])
		writeInput(&b, "price", "Precio (€)", "text", data.Values.Price, data.Errors["price"])
		writeInput(&b, "stock", "Stock", "text", data.Values.Stock, data.Errors["stock"])
		writeCategorySelect(&b, data)

		b.WriteString(`<div class="flex items-center gap-3">`)
		b.WriteString(`<button type="submit" class="rounded-md bg-emerald-700 px-4 py-2 text-sm font-medium text-white hover:bg-emerald-800">Guardar</button>`)
		fmt.Fprintf(&b, `<a href="%s" class="text-sm text-slate-500 hover:underline">Cancelar</a>`, templ.EscapeString(data.BackPath))
		b.WriteString(`</div></form></section>`)

		_, err := w.Write(b.Bytes())
		return err
	})
}

func writeCategorySelect(b *bytes.Buffer, data FormData) {
	b.WriteString(`<div><label for="category_id" class="mb-1 block text-sm font-medium text-slate-700">Categoría</label>` +
		`<select id="category_id" name="category_id" class="w-full rounded-md border border-slate-300 px-3 py-2 text-sm">` +
		`<option value="">Seleccione una categoría</option>`)
	for _, c := range data.Categories {
		selected := ""
		if string(c.ID) == data.Values.CategoryID {
			selected = ` selected`
		}
		fmt.Fprintf(b, `<option value="%s"%s>%s</option>`,
			templ.EscapeString(string(c.ID)), selected, templ.EscapeString(c.Name))
	}
	b.WriteString(`</select>`)
	if msg := data.Errors["category_id"]; msg != "" {
		fmt.Fprintf(b, `<p class="mt-1 text-xs text-rose-600" data-field-error="category_id">%s</p>`, templ.EscapeString(msg))
	}
	b.WriteString(`</div>`)
}

func writeInput(b *bytes.Buffer, name, label, kind, value, fieldError string) {
	fmt.Fprintf(b, `<div><label for="%s" class="mb-1 block text-sm font-medium text-slate-700">%s</label>`,
		name, templ.EscapeString(label))
	fmt.Fprintf(b, `<input id="%s" name="%s" type="%s" value="%s" class="w-full rounded-md border border-slate-300 px-3 py-2 text-sm"/>`,
		name, name, kind, templ.EscapeString(value))
	if fieldError != "" {
		fmt.Fprintf(b, `<p class="mt-1 text-xs text-rose-600" data-field-error="%s">%s</p>`, name, templ.EscapeString(fieldError))
	}
	b.WriteString(`</div>`)
}

func writeTextarea(b *bytes.Buffer, name, label, value, fieldError string) {
	fmt.Fprintf(b, `<div><label for="%s" class="mb-1 block text-sm font-medium text-slate-700">%s</label>`,
		name, templ.EscapeString(label))
	fmt.Fprintf(b, `<textarea id="%s" name="%s" rows="3" class="w-full rounded-md border border-slate-300 px-3 py-2 text-sm">%s</textarea>`,
		name, name, templ.EscapeString(value))
	if fieldError != "" {
		fmt.Fprintf(b, `<p class="mt-1 text-xs text-rose-600" data-field-error="%s">%s</p>`, name, templ.EscapeString(fieldError))
	}
	b.WriteString(`</div>`)
}
