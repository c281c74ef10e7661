// Package layout renders the shared HTML shell around every page.
package layout

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"farmaplus.org/admin/internal/admin/templates/helpers"
)

// NavLink is a single topbar entry.
type NavLink struct {
	Label  string
	Href   string
	Active bool
}

// Data carries the shell payload shared by every page.
type Data struct {
	Title          string
	BasePath       string
	LoginPath      string
	Path           string
	AdminName      string
	Authenticated  bool
	FavoritesCount int
	CartCount      int
	CSRFToken      string
	Flash          string
	FlashError     string
}

// AdminLinks builds the back-office navigation for authenticated staff.
func AdminLinks(basePath, currentPath string) []NavLink {
	links := []NavLink{
		{Label: "Panel", Href: helpers.JoinPath(basePath, "")},
		{Label: "Productos", Href: helpers.JoinPath(basePath, "productos")},
		{Label: "Categorías", Href: helpers.JoinPath(basePath, "categorias")},
	}
	for i := range links {
		links[i].Active = currentPath == links[i].Href
	}
	return links
}

// Shell wraps the body component in the full HTML document.
func Shell(data Data, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b bytes.Buffer

		title := data.Title
		if title == "" {
			title = "FarmaPlus"
		} else {
			title += " · FarmaPlus"
		}

		b.WriteString("<!DOCTYPE html>\n")
		b.WriteString(`<html lang="es"><head><meta charset="utf-8"/>`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
		fmt.Fprintf(&b, "<title>%s</title>", templ.EscapeString(title))
		b.WriteString(`<link rel="stylesheet" href="/static/app.css"/>`)
		b.WriteString(`</head><body class="min-h-screen bg-slate-50 text-slate-900">`)

		renderTopbar(&b, data)
		renderFlash(&b, data)

		b.WriteString(`<main class="mx-auto max-w-6xl px-4 py-6">`)
		if _, err := w.Write(b.Bytes()); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main><footer class="mx-auto max-w-6xl px-4 py-6 text-xs text-slate-400">FarmaPlus · Tu farmacia online</footer></body></html>`)
		return err
	})
}

func renderTopbar(b *bytes.Buffer, data Data) {
	b.WriteString(`<header class="border-b border-slate-200 bg-white"><div class="mx-auto flex max-w-6xl items-center justify-between px-4 py-3">`)
	b.WriteString(`<a href="/" class="text-lg font-semibold text-emerald-700">FarmaPlus</a>`)

	b.WriteString(`<nav class="flex items-center gap-2" aria-label="principal">`)
	fmt.Fprintf(b, `<a href="/favoritos" class="text-sm text-slate-600 hover:text-slate-900" data-testid="favorites-count">Favoritos: %d</a>`, data.FavoritesCount)
	fmt.Fprintf(b, `<span class="text-sm text-slate-600" data-testid="cart-count">Carrito: %d</span>`, data.CartCount)

	if data.Authenticated {
		for _, link := range AdminLinks(data.BasePath, data.Path) {
			current := ""
			if link.Active {
				current = ` aria-current="page"`
			}
			fmt.Fprintf(b, `<a href="%s" class="%s"%s>%s</a>`,
				templ.EscapeString(link.Href), helpers.NavClass(link.Active), current, templ.EscapeString(link.Label))
		}
		fmt.Fprintf(b, `<span class="text-sm text-slate-500">%s</span>`, templ.EscapeString(data.AdminName))
		fmt.Fprintf(b, `<form method="post" action="/logout">`)
		writeCSRFField(b, data.CSRFToken)
		b.WriteString(`<button type="submit" class="text-sm font-medium text-rose-600 hover:text-rose-800">Cerrar sesión</button></form>`)
	} else {
		loginPath := data.LoginPath
		if loginPath == "" {
			loginPath = "/login"
		}
		fmt.Fprintf(b, `<a href="%s" class="%s">Iniciar sesión</a>`, templ.EscapeString(loginPath), helpers.NavClass(false))
	}
	b.WriteString(`</nav></div></header>`)
}

func renderFlash(b *bytes.Buffer, data Data) {
	if data.Flash != "" {
		fmt.Fprintf(b, `<div class="mx-auto max-w-6xl px-4 pt-4"><div class="rounded-md bg-emerald-50 px-4 py-3 text-sm text-emerald-800" role="status">%s</div></div>`,
			templ.EscapeString(data.Flash))
	}
	if data.FlashError != "" {
		fmt.Fprintf(b, `<div class="mx-auto max-w-6xl px-4 pt-4"><div class="rounded-md bg-rose-50 px-4 py-3 text-sm text-rose-800" role="alert">%s</div></div>`,
			templ.EscapeString(data.FlashError))
	}
}

func writeCSRFField(b *bytes.Buffer, token string) {
	fmt.Fprintf(b, `<input type="hidden" name="csrf_token" value="%s"/>`, templ.EscapeString(token))
}

// CSRFField renders the hidden token input for standalone forms.
func CSRFField(token string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b bytes.Buffer
		writeCSRFField(&b, token)
		_, err := w.Write(b.Bytes())
		return err
	})
}
