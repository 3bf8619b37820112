// Package server provides the HTTP REST API around the keyword engine.
// The API is stateless: every request carries its own JD and résumé text,
// and nothing is persisted between requests.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/ats-scan/internal/refdata"
	"github.com/jonathan/ats-scan/internal/scoring"
)

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	ref        *refdata.Data
	weights    scoring.Weights
	validator  *validator.Validate
}

// Config holds server configuration.
type Config struct {
	Port int

	// Ref is the shared read-only reference data; nil uses the built-ins.
	Ref *refdata.Data

	// Weights overrides the score weighting; the zero value selects defaults.
	Weights scoring.Weights
}

// New creates a new server instance.
func New(cfg Config) *Server {
	ref := cfg.Ref
	if ref == nil {
		ref = refdata.New()
	}
	weights := cfg.Weights
	if weights == (scoring.Weights{}) {
		weights = scoring.DefaultWeights()
	}

	s := &Server{
		ref:       ref,
		weights:   weights,
		validator: validator.New(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("POST /extract", s.handleExtract)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.withCORS(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
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

// jsonResponse writes a JSON response with the given status.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
