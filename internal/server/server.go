package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ib-77/rpipe/internal/logging"
	"github.com/ib-77/rpipe/pkg/pipe"
	"github.com/ib-77/rpipe/pkg/pipe/manifest"
	"github.com/ib-77/rpipe/pkg/pipe/metrics"
	prom "github.com/prometheus/client_golang/prometheus"
)

// Server renders the pages of a compiled manifest over HTTP.
type Server struct {
	site     *manifest.Site
	logger   *slog.Logger
	registry *prom.Registry
	recorder pipe.Recorder
	strict   bool
}

type Option func(*Server)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics records renders on reg and exposes it on /metrics.
func WithMetrics(reg *prom.Registry) Option {
	return func(s *Server) {
		s.registry = reg
		s.recorder = metrics.NewPrometheusRecorder(reg)
	}
}

// WithStrict makes a Pipe rendered outside any pipeline fail the request.
func WithStrict(strict bool) Option {
	return func(s *Server) {
		s.strict = strict
	}
}

func New(site *manifest.Site, opts ...Option) *Server {
	s := &Server{
		site:     site,
		logger:   logging.NewNop(),
		recorder: pipe.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.healthz)
	r.Get("/pages", s.listPages)
	r.Get("/pages/{name}", s.renderPage)
	if s.registry != nil {
		r.Handle("/metrics", metrics.Handler(s.registry))
	}
	return r
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, "ok"); err != nil {
		s.logger.Warn("failed to write health response", "error", err)
	}
}

func (s *Server) listPages(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string][]string{"pages": s.site.Names()}); err != nil {
		s.logger.Error("failed to encode page list", "error", err)
	}
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	logger := s.logger.With("page", name, "request_id", middleware.GetReqID(r.Context()))

	page, err := s.site.Page(name)
	if err != nil {
		http.Error(w, "page not found", http.StatusNotFound)
		return
	}

	ctx := pipe.WithLogger(r.Context(), logger)
	ctx = pipe.WithRecorder(ctx, s.recorder)
	ctx = pipe.WithStrict(ctx, s.strict)

	// Render fully before writing so a failing unit yields a clean 500.
	var buf bytes.Buffer
	if err := page.Render(ctx, &buf); err != nil {
		logger.Error("render failed", "error", err)
		status := http.StatusInternalServerError
		if errors.Is(err, pipe.ErrNoContinuation) {
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, "render failed", status)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		logger.Warn("failed to write response", "error", err)
	}
}
