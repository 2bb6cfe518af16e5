// Package server provides the HTTP REST API for the resume screener.
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

	"github.com/jonathan/resume-screener/internal/pipeline"
	"github.com/jonathan/resume-screener/internal/types"
)

// Generator produces recruiter notes and candidate roadmaps on demand.
// llm.Generator satisfies this; tests substitute a stub.
type Generator interface {
	RecruiterNote(ctx context.Context, name, domain string, skillsByCategory map[string][]string, score float64) (string, error)
	Roadmap(ctx context.Context, name, domain string, skillsByCategory map[string][]string, score float64) (*types.Roadmap, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	processor  *pipeline.Processor
	generator  Generator
	domain     string
	maxUpload  int64
}

// Config holds server configuration
type Config struct {
	Port           int
	DefaultDomain  string
	MaxUploadBytes int64
	Processor      *pipeline.Processor
	Generator      Generator
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.Processor == nil {
		return nil, fmt.Errorf("processor is required")
	}
	if cfg.Generator == nil {
		return nil, fmt.Errorf("generator is required")
	}

	s := &Server{
		processor: cfg.Processor,
		generator: cfg.Generator,
		domain:    cfg.DefaultDomain,
		maxUpload: cfg.MaxUploadBytes,
	}
	if s.domain == "" {
		s.domain = "Software Engineering"
	}
	if s.maxUpload <= 0 {
		s.maxUpload = 32 << 20 // 32 MiB cap, matching the upload limit in the UI
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("POST /api/leaderboard", s.handleLeaderboard)
	mux.HandleFunc("POST /api/recruiter-note", s.handleRecruiterNote)
	mux.HandleFunc("POST /api/candidate/analyse", s.handleAnalyse)
	mux.HandleFunc("POST /api/candidate/suggest", s.handleSuggest)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 300 * time.Second, // Note generation can take a while for large batches
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler exposes the configured handler chain for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests and blocks until shutdown
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

// withCORS adds CORS headers
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

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
