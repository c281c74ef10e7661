// Package ui exposes the HTTP handlers for the storefront and the
// back-office pages.
package ui

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"go.uber.org/zap"

	"farmaplus.org/admin/internal/admin/api"
	"farmaplus.org/admin/internal/admin/auth"
	"farmaplus.org/admin/internal/admin/catalog"
	"farmaplus.org/admin/internal/admin/catalog/dataset"
	"farmaplus.org/admin/internal/admin/dashboard"
	custommw "farmaplus.org/admin/internal/admin/httpserver/middleware"
	"farmaplus.org/admin/internal/admin/templates/helpers"
	"farmaplus.org/admin/internal/admin/templates/layout"
)

// Dependencies collects external services required by the UI handlers.
type Dependencies struct {
	AuthService      auth.Service
	CatalogService   catalog.Service
	DashboardService dashboard.Service
	BasePath         string
	LoginPath        string
	Logger           *zap.Logger
}

// Handlers exposes HTTP handlers for storefront and admin pages.
type Handlers struct {
	auth      auth.Service
	catalog   catalog.Service
	dashboard dashboard.Service
	basePath  string
	loginPath string
	logger    *zap.Logger
}

// NewHandlers wires the UI handler set.
func NewHandlers(deps Dependencies) *Handlers {
	catalogSvc := deps.CatalogService
	if catalogSvc == nil {
		if data, err := dataset.Load(); err == nil {
			catalogSvc = catalog.NewStaticService(data.Products, data.Categories)
		} else {
			catalogSvc = catalog.NewStaticService(nil, nil)
		}
	}
	authSvc := deps.AuthService
	if authSvc == nil {
		authSvc = auth.NewStaticService()
	}
	dashboardSvc := deps.DashboardService
	if dashboardSvc == nil {
		dashboardSvc = dashboard.NewStaticService(catalogSvc)
	}
	basePath := deps.BasePath
	if basePath == "" {
		basePath = "/admin"
	}
	loginPath := deps.LoginPath
	if loginPath == "" {
		loginPath = "/login"
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{
		auth:      authSvc,
		catalog:   catalogSvc,
		dashboard: dashboardSvc,
		basePath:  basePath,
		loginPath: loginPath,
		logger:    logger,
	}
}

// AuthService exposes the resolved auth dependency so the router can hand the
// same instance to the auth middleware.
func (h *Handlers) AuthService() auth.Service { return h.auth }

// shell builds the layout payload shared by every page.
func (h *Handlers) shell(r *http.Request, title string) layout.Data {
	data := layout.Data{
		Title:     title,
		BasePath:  h.basePath,
		LoginPath: h.loginPath,
		Path:      r.URL.Path,
		CSRFToken: custommw.CSRFTokenFromContext(r.Context()),
	}
	if sess, ok := custommw.SessionFromContext(r.Context()); ok {
		data.FavoritesCount = len(sess.Favorites())
		data.CartCount = len(sess.Cart())
		if user := sess.User(); user != nil && sess.Token() != "" {
			data.Authenticated = true
			data.AdminName = user.Name
			if data.AdminName == "" {
				data.AdminName = user.Username
			}
		}
	}
	if admin, ok := custommw.AdminFromContext(r.Context()); ok {
		data.Authenticated = true
		data.AdminName = admin.Name
		if data.AdminName == "" {
			data.AdminName = admin.Username
		}
	}
	return data
}

func (h *Handlers) render(w http.ResponseWriter, r *http.Request, shell layout.Data, body templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := layout.Shell(shell, body).Render(r.Context(), w); err != nil {
		h.logger.Error("render failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
}

// serviceError maps a backend failure to the right response. A rejected token
// escalates to a full logout so stale credentials never linger in the cookie.
func (h *Handlers) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, api.ErrUnauthorized) {
		if sess, ok := custommw.SessionFromContext(r.Context()); ok {
			sess.ClearAuth()
		}
		custommw.RedirectToLogin(w, r, h.loginPath, custommw.ReasonTokenExpired)
		return
	}
	if errors.Is(err, catalog.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	h.logger.Error("backend request failed", zap.String("path", r.URL.Path), zap.Error(err))
	http.Error(w, api.Message(err), http.StatusBadGateway)
}

func (h *Handlers) adminPath(suffix string) string {
	return helpers.JoinPath(h.basePath, suffix)
}
