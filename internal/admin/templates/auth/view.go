// Package auth renders the staff login page.
package auth

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// LoginPage renders the username/password form.
func LoginPage(data LoginPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b bytes.Buffer

		b.WriteString(`<section class="mx-auto max-w-md"><h1 class="mb-4 text-xl font-semibold">Acceso de administración</h1>`)

		if data.Message != "" {
			fmt.Fprintf(&b, `<div class="mb-4 rounded-md bg-amber-50 px-4 py-3 text-sm text-amber-800" role="status">%s</div>`,
				templ.EscapeString(data.Message))
		}
		if data.Error != "" {
			fmt.Fprintf(&b, `<div class="mb-4 rounded-md bg-rose-50 px-4 py-3 text-sm text-rose-800" role="alert" data-testid="login-error">%s</div>`,
				templ.EscapeString(data.Error))
		}

		fmt.Fprintf(&b, `<form method="post" action="%s" class="space-y-4 rounded-lg border border-slate-200 bg-white p-6 shadow-sm">`,
			templ.EscapeString(data.LoginPath))
		fmt.Fprintf(&b, `<input type="hidden" name="csrf_token" value="%s"/>`, templ.EscapeString(data.CSRFToken))
		if data.Next != "" {
			fmt.Fprintf(&b, `<input type="hidden" name="next" value="%s"/>`, templ.EscapeString(data.Next))
		}

		writeField(&b, "username", "Usuario", "text", data.Username, data.FieldErrors["username"])
		writeField(&b, "password", "Contraseña", "password", "", data.FieldErrors["password"])

		b.WriteString(`<button type="submit" class="w-full rounded-md bg-emerald-700 px-4 py-2 text-sm font-medium text-white hover:bg-emerald-800">Iniciar sesión</button>`)
		b.WriteString(`</form></section>`)

		_, err := w.Write(b.Bytes())
		return err
	})
}

func writeField(b *bytes.Buffer, name, label, kind, value, fieldError string) {
	fmt.Fprintf(b, `<div><label for="%s" class="mb-1 block text-sm font-medium text-slate-700">%s</label>`,
		name, templ.EscapeString(label))
	fmt.Fprintf(b, `<input id="%s" name="%s" type="%s" value="%s" class="w-full rounded-md border border-slate-300 px-3 py-2 text-sm"/>`,
		name, name, kind, templ.EscapeString(value))
	if fieldError != "" {
		fmt.Fprintf(b, `<p class="mt-1 text-xs text-rose-600" data-field-error="%s">%s</p>`, name, templ.EscapeString(fieldError))
	}
	b.WriteString(`</div>`)
}
