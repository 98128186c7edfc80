// Package server provides the HTTP REST API for university matching.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/university-match/internal/catalog"
	"github.com/jonathan/university-match/internal/db"
	"github.com/jonathan/university-match/internal/ingestion"
	"github.com/jonathan/university-match/internal/logger"
	"github.com/jonathan/university-match/internal/server/ratelimit"
	"go.uber.org/zap"
)

// DefaultMaxUploadBytes bounds CV uploads when Config leaves it unset.
const DefaultMaxUploadBytes = 10 << 20

// RunStore persists match runs. It is optional; without one match results are
// returned but not stored.
type RunStore interface {
	SaveMatchRun(ctx context.Context, run *db.MatchRun) (uuid.UUID, error)
	GetMatchRun(ctx context.Context, id uuid.UUID) (*db.MatchRun, error)
}

// Config holds server configuration
type Config struct {
	Port                  int
	MaxUploadBytes        int64
	IncludeExpiredDefault bool
	RateLimit             *ratelimit.Config
}

// Deps are the collaborators the server delegates to.
type Deps struct {
	Catalog   catalog.Source
	Runs      RunStore
	Extractor *ingestion.Extractor
	Logger    *zap.Logger
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	cfg         Config
	catalog     catalog.Source
	runs        RunStore
	extractor   *ingestion.Extractor
	logger      *zap.Logger
	rateLimiter *ratelimit.Limiter
	now         func() time.Time
}

// New creates a new server instance
func New(cfg Config, deps Deps) (*Server, error) {
	if deps.Catalog == nil {
		return nil, errors.New("server: catalog source is required")
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = DefaultMaxUploadBytes
	}
	extractor := deps.Extractor
	if extractor == nil {
		extractor = ingestion.NewExtractor(ingestion.Options{})
	}

	s := &Server{
		cfg:         cfg,
		catalog:     deps.Catalog,
		runs:        deps.Runs,
		extractor:   extractor,
		logger:      logger.OrNop(deps.Logger),
		rateLimiter: ratelimit.NewLimiter(cfg.RateLimit),
		now:         time.Now,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the routed handler wrapped in middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)

	// Catalog
	mux.HandleFunc("GET /api/universities", s.handleListUniversities)
	mux.HandleFunc("GET /api/universities/{id}", s.handleGetUniversity)

	// Matching
	mux.HandleFunc("POST /api/match", s.handleMatch)
	mux.HandleFunc("GET /api/match/{id}", s.handleGetMatchRun)
	mux.HandleFunc("POST /api/parse-cv", s.handleParseCV)

	// Skills
	mux.HandleFunc("POST /api/skills/normalize", s.handleNormalizeSkills)
	mux.HandleFunc("POST /api/skills/extract", s.handleExtractSkills)
	mux.HandleFunc("GET /api/skills/synonyms", s.handleSynonyms)

	return s.withRequestID(s.withLogging(s.withRateLimit(s.withCORS(mux))))
}

// Start listens until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		s.Close()
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err := s.httpServer.Shutdown(shutdownCtx)
	s.Close()
	if err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}

// Close stops the rate limiter cleanup goroutine.
func (s *Server) Close() {
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok", "message": "API is running"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]any{"success": false, "error": message})
}

// errorFrom writes err with the status HTTPStatus assigns to it.
func (s *Server) errorFrom(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.requestLogger(r).Error("request failed", zap.Error(err))
	}
	s.errorResponse(w, status, err.Error())
}

// extractClientID extracts the client identifier from the request.
// This uses the IP address from RemoteAddr; forwarded headers are not trusted.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
