package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/kj-nakamura/baby-wear-translator/internal/api/recovery"
	"github.com/kj-nakamura/baby-wear-translator/internal/catalog"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// NewRouter wires the gateway routes.
func NewRouter(up Upstream, c *catalog.Catalog, log zerolog.Logger) *mux.Router {
	router := mux.NewRouter()

	// Global middlewares
	router.Use(middlewares(log)...)

	proxy := NewProxyHandler(up, log)
	shops := NewShopsHandler(c)
	health := NewHealthHandler()

	router.HandleFunc("/api/milestones", proxy.GetMilestones).Methods(http.MethodGet)
	router.HandleFunc("/api/recommend", proxy.GetRecommendation).Methods(http.MethodGet)
	router.HandleFunc("/api/shops", shops.ListShops).Methods(http.MethodGet)
	router.HandleFunc("/api/health", health.CheckHealth).Methods(http.MethodGet)

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	return router
}

// middlewares is the global chain, outermost first. Recovery sits inside AccessLog so a
// panicking request is still logged with its 500.
func middlewares(log zerolog.Logger) []mux.MiddlewareFunc {
	return []mux.MiddlewareFunc{RequestID(log), AccessLog, recovery.Middleware(log)}
}
