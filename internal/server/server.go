// Package server exposes the query service over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dtnitsch/fatigue-explorer/models"
	"github.com/dtnitsch/fatigue-explorer/pkg/query"
)

const (
	PathComments = "/api/comments"
	// PathNetlify keeps the route the existing frontend already calls.
	PathNetlify = "/.netlify/functions/get-comments"
	PathHealth  = "/health"

	shutdownTimeout = 10 * time.Second
)

type Server struct {
	svc    *query.Service
	logger *slog.Logger
	addr   string
}

func New(addr string, svc *query.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{svc: svc, logger: logger, addr: addr}
}

// Handler returns the routed handler wrapped in recovery, logging and CORS.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(PathComments, s.handleComments)
	mux.HandleFunc(PathNetlify, s.handleComments)
	mux.HandleFunc(PathHealth, s.handleHealth)

	var h http.Handler = mux
	h = recoveryMiddleware(s.logger)(h)
	h = corsMiddleware(h)
	h = loggingMiddleware(s.logger)(h)
	return h
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func (s *Server) handleComments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET, OPTIONS")
		writeError(w, http.StatusMethodNotAllowed, "method "+r.Method+" not allowed")
		return
	}

	q := r.URL.Query()
	resp := s.svc.Handle(models.Request{
		Category:      q.Get("category"),
		Mode:          q.Get("mode"),
		MinConfidence: q.Get("min_confidence"),
	})

	if resp.Status >= http.StatusInternalServerError {
		s.logger.Error("query failed", "status", resp.Status, "body", resp.Body)
	}

	writeJSON(w, resp.Status, resp.Body)
}

type healthResponse struct {
	Status   string `json:"status"`
	Comments int    `json:"comments"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method "+r.Method+" not allowed")
		return
	}

	if s.svc == nil || s.svc.Catalog() == nil {
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "healthy", Comments: s.svc.Catalog().Len()})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg})
}
