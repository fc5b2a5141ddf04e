// Package http is the driver surface of the query service. It exposes the
// query operation plus health, readiness, and metrics endpoints; it reads the
// two date parameters, invokes the core, and writes the outcome verbatim.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/quake-query-service/internal/domain"
	"github.com/couchcryptid/quake-query-service/internal/query"
)

// QueryRunner executes one earthquake query.
type QueryRunner interface {
	Run(ctx context.Context, start, end string) (query.Result, error)
}

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Server exposes the query, health, readiness, and metrics HTTP endpoints.
type Server struct {
	httpServer *http.Server
	runner     QueryRunner
	validate   *validator.Validate
	logger     *slog.Logger
}

// quakeRequest binds the two query parameters. Format and ordering are the
// domain validator's job; this only rejects missing parameters early.
type quakeRequest struct {
	StartTime string `validate:"required"`
	EndTime   string `validate:"required"`
}

// NewServer creates an HTTP server with the earthquake query route plus
// /healthz, /readyz, and /metrics.
func NewServer(addr string, runner QueryRunner, ready ReadinessChecker, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:        addr,
			Handler:     mux,
			ReadTimeout: 10 * time.Second,
			IdleTimeout: 60 * time.Second,
		},
		runner:   runner,
		validate: validator.New(),
		logger:   logger,
	}

	mux.HandleFunc("GET /api/v1/earthquakes", s.handleQuery)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	req := quakeRequest{
		StartTime: r.URL.Query().Get("starttime"),
		EndTime:   r.URL.Query().Get("endtime"),
	}
	if err := s.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "starttime and endtime query parameters are required",
		})
		return
	}

	res, err := s.runner.Run(r.Context(), req.StartTime, req.EndTime)
	if err != nil {
		writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Query-ID", res.ID)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(res.Report))
}

// statusFor maps query errors to HTTP statuses: caller mistakes are 400,
// upstream trouble is 502.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidFormat),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrDateRange):
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort error response
}
