package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jpittner/finqa/internal/config"
	"github.com/jpittner/finqa/internal/document"
	"github.com/jpittner/finqa/internal/pipeline"
	"github.com/jpittner/finqa/internal/session"
)

// Server is the HTTP API server for finqa.
type Server struct {
	router       chi.Router
	orchestrator *pipeline.Orchestrator
	docs         *document.Store
	sessions     session.Store
	answerStats  *pipeline.LatencyStats
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(orch *pipeline.Orchestrator, docs *document.Store, sessions session.Store, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		orchestrator: orch,
		docs:         docs,
		sessions:     sessions,
		answerStats:  pipeline.NewLatencyStats(cfg.StatsWindow),
		log:          log,
		cfg:          cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.APIKey, s.log))

		r.Post("/api/documents", s.handleUpload)
		r.Post("/api/documents/batch", s.handleBatchUpload)
		r.Get("/api/jobs/{jobID}", s.handleJobStatus)

		r.Get("/api/documents", s.handleListDocuments)
		r.Get("/api/documents/{docID}", s.handleGetDocument)
		r.Get("/api/documents/{docID}/metrics", s.handleGetMetrics)
		r.Delete("/api/documents/{docID}", s.handleDeleteDocument)
		r.Post("/api/documents/{docID}/ask", s.handleAsk)

		r.Get("/api/sessions/{sessionID}", s.handleGetSession)
		r.Delete("/api/sessions/{sessionID}", s.handleClearSession)

		r.Get("/api/stats", s.handleStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// previewBytes is how much document text the summary endpoint returns.
const previewBytes = 500
