package main

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"farmaplus.org/admin/internal/admin/api"
	"farmaplus.org/admin/internal/admin/auth"
	"farmaplus.org/admin/internal/admin/catalog"
	"farmaplus.org/admin/internal/admin/catalog/dataset"
	"farmaplus.org/admin/internal/admin/config"
	"farmaplus.org/admin/internal/admin/dashboard"
	"farmaplus.org/admin/internal/admin/httpserver"
	"farmaplus.org/admin/internal/admin/observability"
	appsession "farmaplus.org/admin/internal/admin/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	sessions, err := buildSessionManager(cfg, logger)
	if err != nil {
		logger.Fatal("init sessions", zap.Error(err))
	}

	authSvc, catalogSvc, dashboardSvc, err := buildServices(cfg, logger)
	if err != nil {
		logger.Fatal("init services", zap.Error(err))
	}

	srv := httpserver.New(httpserver.Config{
		Address:          cfg.HTTPAddr,
		BasePath:         cfg.BasePath,
		LoginPath:        cfg.LoginPath,
		CSRFCookieSecure: cfg.CookieSecure,
		Logger:           logger,
		Sessions:         sessions,
		AuthService:      authSvc,
		CatalogService:   catalogSvc,
		DashboardService: dashboardSvc,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	logger.Info("server listening",
		zap.String("addr", cfg.HTTPAddr),
		zap.String("base_path", cfg.BasePath),
		zap.String("environment", cfg.Environment))

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
		os.Exit(1)
	}
}

// buildServices wires the HTTP clients when a backend API is configured, or
// the bundled dataset services for standalone operation.
func buildServices(cfg config.Config, logger *zap.Logger) (auth.Service, catalog.Service, dashboard.Service, error) {
	if cfg.APIBaseURL == "" {
		logger.Info("no backend configured, serving the bundled dataset")
		data, err := dataset.Load()
		if err != nil {
			return nil, nil, nil, err
		}
		catalogSvc := catalog.NewStaticService(data.Products, data.Categories)
		return auth.NewStaticService(), catalogSvc, dashboard.NewStaticService(catalogSvc), nil
	}

	client, err := api.NewClient(cfg.APIBaseURL, &http.Client{Timeout: 15 * time.Second})
	if err != nil {
		return nil, nil, nil, err
	}
	logger.Info("using backend API", zap.String("base_url", cfg.APIBaseURL))
	return auth.NewHTTPService(client), catalog.NewHTTPService(client), dashboard.NewHTTPService(client), nil
}

func buildSessionManager(cfg config.Config, logger *zap.Logger) (*appsession.Manager, error) {
	hashKey := decodeKey(cfg.SessionHashKey)
	if len(hashKey) == 0 {
		logger.Warn("no session hash key configured, sessions will not survive restarts")
		hashKey = randomKey(32)
	}

	var blockKey []byte
	if cfg.SessionBlockKey != "" {
		blockKey = decodeKey(cfg.SessionBlockKey)
	}

	return appsession.NewManager(appsession.Config{
		HashKey:      hashKey,
		BlockKey:     blockKey,
		CookieSecure: cfg.CookieSecure,
	})
}

// decodeKey accepts base64 keys and falls back to the raw bytes.
func decodeKey(value string) []byte {
	if value == "" {
		return nil
	}
	if decoded, err := base64.StdEncoding.DecodeString(value); err == nil && len(decoded) > 0 {
		return decoded
	}
	return []byte(value)
}

func randomKey(length int) []byte {
	key := make([]byte, length)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("generate session key: %v", err)
	}
	return key
}
