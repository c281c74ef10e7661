package ui

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	custommw "farmaplus.org/admin/internal/admin/httpserver/middleware"
	appsession "farmaplus.org/admin/internal/admin/session"
	authtpl "farmaplus.org/admin/internal/admin/templates/auth"
	"farmaplus.org/admin/internal/admin/validate"
)

// LoginForm renders the login page. Visitors whose stored token still
// resolves a profile are sent straight to the back-office.
func (h *Handlers) LoginForm(w http.ResponseWriter, r *http.Request) {
	gate := custommw.GateForRequest(r.Context(), h.auth)
	gate.Init(r.Context())
	if gate.Authenticated() {
		http.Redirect(w, r, h.basePath, http.StatusFound)
		return
	}

	data := authtpl.LoginPageData{
		Message:   reasonMessage(r.URL.Query().Get("reason")),
		Next:      sanitizeNext(r.URL.Query().Get("next")),
		LoginPath: h.loginPath,
		CSRFToken: custommw.CSRFTokenFromContext(r.Context()),
	}
	h.render(w, r, h.shell(r, "Iniciar sesión"), authtpl.LoginPage(data))
}

// LoginSubmit validates the credentials locally, then exchanges them for a
// token. Validation failures and rejected logins re-render the form.
func (h *Handlers) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")
	next := sanitizeNext(r.PostFormValue("next"))

	data := authtpl.LoginPageData{
		Username:  username,
		Next:      next,
		LoginPath: h.loginPath,
		CSRFToken: custommw.CSRFTokenFromContext(r.Context()),
	}

	if fieldErrors := validate.Login(validate.LoginForm{Username: username, Password: password}); fieldErrors.Any() {
		data.FieldErrors = fieldErrors
		h.render(w, r, h.shell(r, "Iniciar sesión"), authtpl.LoginPage(data))
		return
	}

	gate := custommw.GateForRequest(r.Context(), h.auth)
	if err := gate.Login(r.Context(), username, password); err != nil {
		h.logger.Info("login rejected", zap.String("username", username))
		data.Error = gate.Message()
		h.render(w, r, h.shell(r, "Iniciar sesión"), authtpl.LoginPage(data))
		return
	}

	if sess, ok := custommw.SessionFromContext(r.Context()); ok {
		admin := gate.Admin()
		sess.SetUser(&appsession.User{
			ID:       admin.ID,
			Username: admin.Username,
			Email:    admin.Email,
			Name:     admin.Name,
		})
	}

	target := next
	if target == "" {
		target = h.basePath
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// Logout discards credentials and returns to the storefront. It never fails,
// even when the visitor was not logged in.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	gate := custommw.GateForRequest(r.Context(), h.auth)
	gate.Logout()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// sanitizeNext keeps redirect targets inside this site.
func sanitizeNext(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.Contains(raw, "\\") {
		return ""
	}
	return raw
}

func reasonMessage(reason string) string {
	switch reason {
	case custommw.ReasonTokenExpired:
		return "La sesión ha expirado, inicia sesión de nuevo"
	case custommw.ReasonMissingToken:
		return "Debes iniciar sesión para continuar"
	default:
		return ""
	}
}
