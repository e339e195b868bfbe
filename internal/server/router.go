package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/recallgate/graphmem/internal/api/handlers"
	"github.com/recallgate/graphmem/internal/api/middleware"
)

type RouterConfig struct {
	APIKey  string
	Handler *handlers.Handler
	Logger  *slog.Logger
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	const maxBodyBytes int64 = 1 * 1024 * 1024

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(middleware.RequestID)
	r.Use(middleware.SentryMiddleware)
	r.Use(middleware.AccessLog(logger))
	r.Use(middleware.MaxBodyBytes(maxBodyBytes))

	// Liveness probe stays open: orchestrators do not carry the gateway key.
	r.Get("/health", cfg.Handler.Health)

	r.Group(func(r chi.Router) {
		r.Use(middleware.APIKeyAuth(cfg.APIKey))

		r.Post("/episodes", cfg.Handler.AddEpisode)
		r.Post("/search", cfg.Handler.Search)
		r.Get("/entities/{tenant_id}", cfg.Handler.ListEntities)
		r.Get("/stats/{tenant_id}", cfg.Handler.Stats)
		r.Delete("/tenant/{tenant_id}", cfg.Handler.DeleteTenant)
	})

	return r
}
