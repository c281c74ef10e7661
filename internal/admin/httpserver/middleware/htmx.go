package middleware

import (
	"context"
	"net/http"
	"strings"
)

type htmxContextKey struct{}

// HTMX annotates the context with whether the request was initiated by htmx,
// so redirects can switch to the HX-Redirect header.
func HTMX() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			isHTMX := strings.EqualFold(r.Header.Get("HX-Request"), "true")
			ctx := context.WithValue(r.Context(), htmxContextKey{}, isHTMX)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IsHTMXRequest returns true when the current request was initiated by htmx.
func IsHTMXRequest(ctx context.Context) bool {
	is, ok := ctx.Value(htmxContextKey{}).(bool)
	return ok && is
}
