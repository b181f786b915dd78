// Package api exposes the frame codec and capture log over a REST
// interface. All /api/v1 routes require the X-API-Key header; the
// Prometheus /metrics endpoint is left open for scraping.
package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sameteraslan/minibit/pkg/capture"
)

// NewRouter builds the chi router with all routes configured
func NewRouter(server *Server, metrics *Metrics, apiKey string) chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API key authentication middleware for protected routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(metrics.InstrumentAuthMiddleware(apiKeyMiddleware(apiKey)))

		// Health check
		r.Get("/health", metrics.InstrumentHandler("GET", "/api/v1/health", server.handleHealth))

		// Codec operations
		r.Post("/encode/trade", metrics.InstrumentHandler("POST", "/api/v1/encode/trade", server.handleEncodeTrade))
		r.Post("/encode/quote", metrics.InstrumentHandler("POST", "/api/v1/encode/quote", server.handleEncodeQuote))
		r.Post("/decode", metrics.InstrumentHandler("POST", "/api/v1/decode", server.handleDecode))
		r.Post("/inspect", metrics.InstrumentHandler("POST", "/api/v1/inspect", server.handleInspect))

		// Capture log
		r.Post("/capture", metrics.InstrumentHandler("POST", "/api/v1/capture", server.handleCaptureRecord))
		r.Get("/capture/{seq}", metrics.InstrumentHandler("GET", "/api/v1/capture/{seq}", server.handleCaptureGet))
	})

	return r
}

// StartServer starts the HTTP server with all routes configured
func StartServer(session *capture.Session, config ServerConfig) error {
	// Initialize metrics
	metrics := NewMetrics()

	server := NewServer(session, config, metrics)
	r := NewRouter(server, metrics, config.APIKey)

	// Start background metrics updater
	go server.startMetricsUpdater()

	addr := fmt.Sprintf(":%d", config.Port)
	fmt.Printf("Starting MiniBit codec API server on %s\n", addr)
	fmt.Printf("Metrics available at: http://localhost:%d/metrics\n", config.Port)
	log.Fatal(http.ListenAndServe(addr, r))

	return nil
}
