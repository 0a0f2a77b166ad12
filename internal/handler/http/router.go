package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/webshop/catalog-search/internal/health"
	"github.com/webshop/catalog-search/internal/middleware"
	"github.com/webshop/catalog-search/internal/provider"
	"github.com/webshop/catalog-search/internal/service"
)

// NewRouter creates a chi router with all catalog search routes registered.
func NewRouter(
	p provider.ItemProvider,
	svc *service.CatalogSearchService,
	healthHandler *health.Handler,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics("catalog-search"))

	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	catalogHandler := NewCatalogHandler(p, svc, logger)

	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/search", catalogHandler.Search)

		r.Group(func(r chi.Router) {
			r.Use(contentTypeJSON)
			r.Post("/index", catalogHandler.IndexItem)
			r.Delete("/{id}", catalogHandler.RemoveItem)
			r.Post("/reindex", catalogHandler.Reindex)
		})
	})

	return r
}

// contentTypeJSON rejects write requests whose body is not declared as JSON.
func contentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch {
			ct := r.Header.Get("Content-Type")
			if ct != "" && !strings.HasPrefix(ct, "application/json") {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnsupportedMediaType)
				_, _ = w.Write([]byte(`{"error":{"code":"UNSUPPORTED_MEDIA_TYPE","message":"Content-Type must be application/json"}}`))
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
