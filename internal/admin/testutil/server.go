// Package testutil spins up the full HTTP stack for handler tests.
package testutil

import (
	"net/http/httptest"
	"testing"

	"farmaplus.org/admin/internal/admin/auth"
	"farmaplus.org/admin/internal/admin/catalog"
	"farmaplus.org/admin/internal/admin/catalog/dataset"
	"farmaplus.org/admin/internal/admin/dashboard"
	"farmaplus.org/admin/internal/admin/httpserver"
	appsession "farmaplus.org/admin/internal/admin/session"
)

// SessionHashKey is the fixed signing key used by test servers so cookies
// decode deterministically across requests.
var SessionHashKey = []byte("0123456789abcdef0123456789abcdef")

// ServerOption customises the HTTP server configuration for tests.
type ServerOption func(*httpserver.Config)

// WithAuthService wires a custom auth service implementation.
func WithAuthService(service auth.Service) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.AuthService = service
	}
}

// WithCatalogService wires a custom catalog service implementation.
func WithCatalogService(service catalog.Service) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.CatalogService = service
	}
}

// WithDashboardService wires a custom dashboard service implementation.
func WithDashboardService(service dashboard.Service) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.DashboardService = service
	}
}

// WithBasePath sets a custom base path for the admin routes.
func WithBasePath(path string) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.BasePath = path
	}
}

// WithSessions overrides the session manager.
func WithSessions(manager *appsession.Manager) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Sessions = manager
	}
}

// NewSessionManager builds a session manager with the fixed test key.
func NewSessionManager(t testing.TB) *appsession.Manager {
	t.Helper()

	manager, err := appsession.NewManager(appsession.Config{HashKey: SessionHashKey})
	if err != nil {
		t.Fatalf("new session manager: %v", err)
	}
	return manager
}

// NewCatalogService builds a static catalog seeded with the bundled dataset.
func NewCatalogService(t testing.TB) *catalog.StaticService {
	t.Helper()

	data, err := dataset.Load()
	if err != nil {
		t.Fatalf("load dataset: %v", err)
	}
	return catalog.NewStaticService(data.Products, data.Categories)
}

// NewServer constructs an httptest server running the full HTTP stack with
// the bundled dataset and the static auth backend.
func NewServer(t testing.TB, opts ...ServerOption) *httptest.Server {
	t.Helper()

	catalogSvc := NewCatalogService(t)
	cfg := httpserver.Config{
		Address:          ":0",
		BasePath:         "/admin",
		LoginPath:        "/login",
		Sessions:         NewSessionManager(t),
		AuthService:      auth.NewStaticService(),
		CatalogService:   catalogSvc,
		DashboardService: dashboard.NewStaticService(catalogSvc),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	ts := httptest.NewServer(httpserver.Router(cfg))
	t.Cleanup(ts.Close)
	return ts
}
