package helpers

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/a-h/templ"
)

// Price formats a euro amount using the Spanish convention (comma decimal
// separator, trailing symbol).
func Price(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	text := fmt.Sprintf("%.2f", amount)
	text = strings.Replace(text, ".", ",", 1)
	return sign + text + " €"
}

// Date formats the timestamp in the provided layout (defaults to 02/01/2006).
func Date(ts time.Time, layout string) string {
	if layout == "" {
		layout = "02/01/2006"
	}
	return ts.In(time.Local).Format(layout)
}

// StockLabel describes a stock level for shoppers.
func StockLabel(stock int) string {
	switch {
	case stock <= 0:
		return "Sin stock"
	case stock <= 10:
		return fmt.Sprintf("Últimas %d unidades", stock)
	default:
		return "En stock"
	}
}

// StockTone maps a stock level to a badge tone.
func StockTone(stock int) string {
	switch {
	case stock <= 0:
		return "danger"
	case stock <= 10:
		return "warning"
	default:
		return "success"
	}
}

// NavClass returns topbar link classes.
func NavClass(active bool) string {
	if active {
		return "flex items-center gap-2 rounded-md bg-emerald-700 px-3 py-2 text-sm font-medium text-white shadow-sm"
	}
	return "flex items-center gap-2 rounded-md px-3 py-2 text-sm font-medium text-slate-600 hover:bg-slate-100 hover:text-slate-900"
}

// BadgeClass maps semantic tones to utility classes.
func BadgeClass(tone string) string {
	switch tone {
	case "success":
		return "inline-flex items-center rounded-full bg-emerald-100 px-2 py-1 text-xs font-medium text-emerald-700"
	case "warning":
		return "inline-flex items-center rounded-full bg-amber-100 px-2 py-1 text-xs font-medium text-amber-700"
	case "danger":
		return "inline-flex items-center rounded-full bg-rose-100 px-2 py-1 text-xs font-medium text-rose-700"
	default:
		return "inline-flex items-center rounded-full bg-slate-100 px-2 py-1 text-xs font-medium text-slate-700"
	}
}

// TextComponent returns a templ component that renders plain text.
func TextComponent(value string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(value))
		return err
	})
}

// JoinPath appends a suffix to a base path, collapsing duplicate slashes.
func JoinPath(base, suffix string) string {
	base = strings.TrimSpace(base)
	if base == "" || base == "/" {
		base = ""
	}
	if suffix == "" {
		if base == "" {
			return "/"
		}
		return base
	}
	if !strings.HasPrefix(suffix, "/") {
		suffix = "/" + suffix
	}
	path := base + suffix
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}
