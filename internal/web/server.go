// Package web provides the HTTP server and handlers for the visitas API.
package web

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/visitaup/visitas-api/internal/cep"
	"github.com/visitaup/visitas-api/internal/distance"
	"github.com/visitaup/visitas-api/internal/logging"
	"github.com/visitaup/visitas-api/internal/visit"
)

// Server is the visitas API HTTP server.
type Server struct {
	visits   *visit.Repository
	cep      *cep.Client
	distance *distance.Client
	mux      *http.ServeMux
	handler  http.Handler
}

// NewServer creates an API server backed by the given database and
// upstream clients.
func NewServer(db *sql.DB, cepClient *cep.Client, distanceClient *distance.Client) *Server {
	s := &Server{
		visits:   visit.NewRepository(db),
		cep:      cepClient,
		distance: distanceClient,
		mux:      http.NewServeMux(),
	}

	s.mux.HandleFunc("POST /visits", s.handleCreateVisit)
	s.mux.HandleFunc("GET /visits", s.handleListVisits)
	s.mux.HandleFunc("GET /visits/{id}", s.handleGetVisit)
	s.mux.HandleFunc("PUT /visits/{id}", s.handleUpdateVisit)
	s.mux.HandleFunc("DELETE /visits/{id}", s.handleDeleteVisit)
	s.mux.HandleFunc("POST /visits/{id}/distance-check", s.handleDistanceCheck)
	s.mux.HandleFunc("GET /address/cep/{code}", s.handleAddressLookup)
	s.mux.HandleFunc("GET /health", s.handleHealth)

	s.handler = logging.RequestLogger(allowAllCORS(s.mux))

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server and blocks until ctx is
// cancelled, then drains in-flight requests before returning.
func (s *Server) ListenAndServe(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:        fmt.Sprintf(":%d", port),
		Handler:     s,
		ReadTimeout: 10 * time.Second,
		// Outlives the 10s budget of the upstream calls.
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}

	return nil
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok", "service": "visitas-api"}, http.StatusOK)
}
