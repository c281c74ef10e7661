// Package httpserver assembles the router, middleware stack and embedded
// assets for the storefront and back-office.
package httpserver

import (
	"crypto/rand"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"farmaplus.org/admin/internal/admin/auth"
	"farmaplus.org/admin/internal/admin/catalog"
	"farmaplus.org/admin/internal/admin/dashboard"
	custommw "farmaplus.org/admin/internal/admin/httpserver/middleware"
	"farmaplus.org/admin/internal/admin/httpserver/ui"
	appsession "farmaplus.org/admin/internal/admin/session"
	"farmaplus.org/admin/public"
)

// Config holds runtime options for the HTTP server.
type Config struct {
	Address          string
	BasePath         string
	LoginPath        string
	CSRFCookieName   string
	CSRFCookieSecure bool
	Logger           *zap.Logger
	Sessions         custommw.SessionStore
	AuthService      auth.Service
	CatalogService   catalog.Service
	DashboardService dashboard.Service
}

// New constructs the HTTP server with the full middleware stack.
func New(cfg Config) *http.Server {
	return &http.Server{
		Addr:         cfg.Address,
		Handler:      Router(cfg),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// Router builds the chi router without binding it to a listener, so tests can
// mount it on httptest servers.
func Router(cfg Config) chi.Router {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	sessions := cfg.Sessions
	if sessions == nil {
		manager, err := appsession.NewManager(appsession.Config{HashKey: randomKey(32)})
		if err != nil {
			panic(err)
		}
		sessions = manager
	}

	basePath := normalizeBasePath(cfg.BasePath)
	loginPath := resolveLoginPath(cfg.LoginPath)

	handlers := ui.NewHandlers(ui.Dependencies{
		AuthService:      cfg.AuthService,
		CatalogService:   cfg.CatalogService,
		DashboardService: cfg.DashboardService,
		BasePath:         basePath,
		LoginPath:        loginPath,
		Logger:           logger,
	})

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(chimw.Recoverer)
	router.Use(chimw.Timeout(60 * time.Second))
	router.Use(custommw.RequestInfoMiddleware(basePath))
	router.Use(custommw.HTMX())
	router.Use(custommw.Session(sessions, logger))
	router.Use(custommw.CSRF(custommw.CSRFConfig{
		CookieName: cfg.CSRFCookieName,
		Secure:     cfg.CSRFCookieSecure,
	}))

	if staticContent, err := public.StaticFS(); err == nil {
		router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticContent))))
	} else {
		logger.Error("embed static assets", zap.Error(err))
	}

	router.Get("/", handlers.Home)
	router.Get("/favoritos", handlers.Favorites)
	router.Post("/favoritos/{id}", handlers.ToggleFavorite)
	router.Post("/carrito/{id}", handlers.ToggleCart)
	router.Get(loginPath, handlers.LoginForm)
	router.Post(loginPath, handlers.LoginSubmit)
	router.Post("/logout", handlers.Logout)

	router.Route(basePath, func(r chi.Router) {
		r.Use(custommw.NoStore())
		r.Use(custommw.Auth(handlerAuthService(cfg, handlers), loginPath, logger))

		r.Get("/", handlers.Dashboard)

		r.Get("/productos", handlers.ProductList)
		r.Get("/productos/nuevo", handlers.ProductNew)
		r.Post("/productos", handlers.ProductCreate)
		r.Get("/productos/{id}/editar", handlers.ProductEdit)
		r.Post("/productos/{id}", handlers.ProductUpdate)
		r.Post("/productos/{id}/eliminar", handlers.ProductDelete)

		r.Get("/categorias", handlers.CategoryList)
		r.Get("/categorias/nueva", handlers.CategoryNew)
		r.Post("/categorias", handlers.CategoryCreate)
		r.Get("/categorias/{id}/editar", handlers.CategoryEdit)
		r.Post("/categorias/{id}", handlers.CategoryUpdate)
		r.Post("/categorias/{id}/eliminar", handlers.CategoryDelete)
	})

	return router
}

func handlerAuthService(cfg Config, handlers *ui.Handlers) auth.Service {
	if cfg.AuthService != nil {
		return cfg.AuthService
	}
	return handlers.AuthService()
}

func normalizeBasePath(path string) string {
	p := strings.TrimSpace(path)
	if p == "" {
		return "/admin"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		p = strings.TrimRight(p, "/")
	}
	if p == "" || p == "/" {
		return "/admin"
	}
	return p
}

func resolveLoginPath(override string) string {
	p := strings.TrimSpace(override)
	if p == "" {
		return "/login"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

func randomKey(length int) []byte {
	key := make([]byte, length)
	if _, err := rand.Read(key); err != nil {
		panic(err)
	}
	return key
}
