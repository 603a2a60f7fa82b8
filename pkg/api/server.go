package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/swag"
)

// handleSwaggerDoc serves the swag doc registered under swag's default
// instance name, "swagger". Until a doc is generated and
// registered, this reports the lookup error rather than serving a body.
func handleSwaggerDoc(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc("swagger")
	if err != nil {
		http.Error(w, fmt.Sprintf("swagger doc not available: %v", err), http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(doc))
}

// NewRouter builds the chi router for the store's HTTP surface: tuple-keyed
// get/put/delete, prefix scan, a liveness probe, and a Prometheus endpoint.
func NewRouter(s IStore, metrics *Metrics) chi.Router {
	server := NewServer(s, metrics)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", metrics.InstrumentHandler("GET", "/healthz", server.handleHealth))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/swagger.json", handleSwaggerDoc)

	r.Route("/v1", func(r chi.Router) {
		r.Put("/keys", metrics.InstrumentHandler("PUT", "/v1/keys", server.handlePut))
		r.Get("/keys", metrics.InstrumentHandler("GET", "/v1/keys", server.handleGet))
		r.Delete("/keys", metrics.InstrumentHandler("DELETE", "/v1/keys", server.handleDelete))
		r.Get("/scan", metrics.InstrumentHandler("GET", "/v1/scan", server.handleScan))
	})

	return r
}

// StartServer starts the HTTP API, blocking until the listener fails.
func StartServer(s IStore, config ServerConfig) error {
	if config.ListenAddr == "" {
		return fmt.Errorf("api: empty listen address")
	}
	metrics := NewMetrics()
	r := NewRouter(s, metrics)

	log.Printf("centidb API listening on %s", config.ListenAddr)
	return http.ListenAndServe(config.ListenAddr, r)
}
