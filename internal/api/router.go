package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"route-optimizer-service/internal/api/handlers"
	"route-optimizer-service/internal/platform/metrics"
	"route-optimizer-service/internal/ports"
)

// RouterDeps carries everything the HTTP layer needs. Cache, History, and DB
// are optional; nil disables the corresponding concern.
type RouterDeps struct {
	Finder    ports.RouteFinder
	Cache     ports.ResultCache
	History   ports.RouteLog
	DB        *sql.DB
	MaxOrders int
	CacheTTL  time.Duration
	SpeedKmph float64
	RadiusKm  float64
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(deps RouterDeps) http.Handler {
	metrics.RegisterDefault()

	mux := http.NewServeMux()

	routeHandler := &handlers.RouteHandler{
		Finder:    deps.Finder,
		Cache:     deps.Cache,
		History:   deps.History,
		MaxOrders: deps.MaxOrders,
		CacheTTL:  deps.CacheTTL,
		SpeedKmph: deps.SpeedKmph,
		RadiusKm:  deps.RadiusKm,
	}
	readyHandler := &handlers.ReadyHandler{DB: deps.DB}

	mux.HandleFunc("/find-route", routeHandler.FindRoute)
	mux.HandleFunc("/routes/recent", routeHandler.Recent)
	mux.HandleFunc("/healthz", handlers.Health)
	mux.HandleFunc("/readyz", readyHandler.Ready)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	return requestIDMiddleware(loggingMiddleware(mux))
}
