// Package api exposes the analyzer over HTTP.
package api

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/codelens-hq/codelens/internal/config"
	"github.com/codelens-hq/codelens/internal/review"
	"github.com/codelens-hq/codelens/internal/store"
)

// Server represents the API server
type Server struct {
	cfg    *config.Config
	router *chi.Mux
	scorer *review.Scorer
	store  *store.Store
}

// NewServer creates a new API server. scorer and st may be nil: without a
// scorer the analyze endpoints return index results only, without a store
// nothing is persisted and the analyses routes are not mounted.
func NewServer(cfg *config.Config, scorer *review.Scorer, st *store.Store) (*Server, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}

	s := &Server{
		cfg:    cfg,
		router: chi.NewRouter(),
		scorer: scorer,
		store:  st,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s, nil
}

// Router returns the HTTP router
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(60 * time.Second))
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", s.healthCheck)
	s.router.Get("/models", s.listModels)

	s.router.Post("/analyze", s.analyzeUpload)
	s.router.Post("/analyze/path", s.analyzePath)

	if s.store != nil {
		s.router.Route("/api/v1", func(r chi.Router) {
			r.Get("/analyses", s.listAnalyses)
			r.Get("/analyses/{analysisID}", s.getAnalysis)
		})
	}
}

func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// ModelInfo describes a scoring model offered by the API
type ModelInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Server) listModels(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string][]ModelInfo{
		"models": {
			{ID: "gpt-3.5-turbo", Name: "GPT-3.5 Turbo", Description: "Faster and more cost-effective"},
			{ID: "gpt-4", Name: "GPT-4", Description: "More accurate but slower and more expensive"},
			{ID: "claude-3-5-sonnet-20241022", Name: "Claude 3.5 Sonnet", Description: "Anthropic's balanced model"},
		},
	})
}
