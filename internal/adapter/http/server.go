package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/couchcryptid/weather-report/internal/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ReportService renders a report on demand.
type ReportService interface {
	Generate(ctx context.Context, kind domain.ReportKind) (domain.Report, error)
}

// Server exposes health, readiness, metrics, and report HTTP endpoints.
type Server struct {
	httpServer *http.Server
	reports    ReportService
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics, and
// /reports/{kind} routes.
func NewServer(addr string, ready sharedobs.ReadinessChecker, reports ReportService, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		reports: reports,
		logger:  logger,
	}

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(ready))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /reports/{kind}", s.handleReport)

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

// handleReport renders the requested report as text/plain, or as the JSON
// envelope when ?format=json.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseReportKind(r.PathValue("kind"))
	if err != nil {
		sharedobs.WriteJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}

	report, err := s.reports.Generate(r.Context(), kind)
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			s.logger.Error("generate report failed", "error", err, "kind", kind)
		}
		sharedobs.WriteJSON(w, status, map[string]string{"error": err.Error()})
		return
	}

	w.Header().Set("X-Report-ID", report.ID)
	if r.URL.Query().Get("format") == "json" {
		sharedobs.WriteJSON(w, http.StatusOK, report)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(report.Body))
}

// statusFor maps input problems to 422 and everything else to 500.
func statusFor(err error) int {
	var perr *domain.ParseError
	if errors.As(err, &perr) || errors.Is(err, domain.ErrEmptyInput) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
