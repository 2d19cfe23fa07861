package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heliogrid/siterank/internal/catalog"
	"github.com/heliogrid/siterank/internal/mcda"
)

func NewRouter(analyzer *mcda.Analyzer, c *catalog.Catalog, rateLimitPerMinute int, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(rateLimitPerMinute))

	h := NewAnalysisHandler(analyzer, c)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/analyses", h.Create)
		r.Get("/criteria", h.Criteria)
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
