// Package api exposes the clients over a REST interface. Every endpoint is
// a thin, stateless wrapper: parse parameters, call a client, map the error
// kind to an HTTP status. The server holds no caches and no sessions.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/bioseek/bioseek/internal/config"
	"github.com/bioseek/bioseek/internal/ena"
	"github.com/bioseek/bioseek/internal/errors"
	"github.com/bioseek/bioseek/internal/iwc"
	"github.com/bioseek/bioseek/internal/study"
	"github.com/bioseek/bioseek/internal/taxonomy"
)

// Server is the HTTP API server.
type Server struct {
	router    *mux.Router
	server    *http.Server
	taxonomy  *taxonomy.Client
	archive   *ena.Client
	studies   *study.Client
	workflows *iwc.Client
}

// NewServer creates an API server from the given configuration.
func NewServer(cfg *config.Config) *Server {
	s := &Server{
		router:    mux.NewRouter(),
		taxonomy:  taxonomy.NewClient(cfg),
		archive:   ena.NewClient(cfg),
		studies:   study.NewClient(cfg),
		workflows: iwc.NewClient(cfg),
	}

	s.setupRoutes()

	if cfg.Server.EnableCORS {
		s.router.Use(corsMiddleware)
	}
	s.router.Use(loggingMiddleware)
	s.router.Use(jsonMiddleware)

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupRoutes configures all API routes.
func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api/v1").Subrouter()

	// Taxonomy endpoints
	api.HandleFunc("/taxonomy/suggest/{name}", s.handleTaxonomySuggest).Methods("GET")
	api.HandleFunc("/taxonomy/{taxID:[0-9]+}", s.handleTaxonomyByID).Methods("GET")

	// Archive search endpoints
	api.HandleFunc("/search", s.handleSearch).Methods("GET", "POST")
	api.HandleFunc("/fastq/{run}", s.handleFastq).Methods("GET")

	// Study metadata endpoints
	api.HandleFunc("/studies/{accession}", s.handleGetStudy).Methods("GET")
	api.HandleFunc("/studies", s.handleGetStudies).Methods("GET")

	// Workflow catalog endpoints
	api.HandleFunc("/workflows", s.handleWorkflows).Methods("GET")
	api.HandleFunc("/workflows/categories", s.handleWorkflowCategories).Methods("GET")

	// Health check
	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	// Root endpoint
	s.router.HandleFunc("/", s.handleRoot).Methods("GET")
}

// Handler returns the configured router, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	log.Printf("Starting API server on %s", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Shutting down API server...")
	return s.server.Shutdown(ctx)
}

// Middleware functions

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.RequestURI, time.Since(start))
	})
}

func jsonMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// Helper functions

func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// writeError maps a client error to an HTTP status and renders the standard
// {error, suggestion} body.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	ce := errors.AsClient(err)
	if ce == nil {
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": err.Error(),
		})
		return
	}
	s.writeJSON(w, statusForKind(ce.Kind), ce)
}

func statusForKind(kind errors.Kind) int {
	switch kind {
	case errors.KindValidation:
		return http.StatusBadRequest
	case errors.KindNotFound:
		return http.StatusNotFound
	case errors.KindNetwork, errors.KindRemote:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// handleRoot returns API information.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	info := map[string]interface{}{
		"name":        "BioSeek API",
		"version":     "1.0.0",
		"description": "Sequence archive discovery API",
		"endpoints": map[string]string{
			"taxonomy":  "/api/v1/taxonomy/suggest/{name}",
			"search":    "/api/v1/search",
			"fastq":     "/api/v1/fastq/{run}",
			"studies":   "/api/v1/studies/{accession}",
			"workflows": "/api/v1/workflows",
			"health":    "/api/v1/health",
		},
	}
	s.writeJSON(w, http.StatusOK, info)
}

// handleHealth returns health status. The server is stateless, so health is
// simply process liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
