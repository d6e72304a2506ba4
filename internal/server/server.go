// Package server exposes the generation pipeline over HTTP: an SSE stream,
// an NDJSON stream, a health probe, and Prometheus metrics.
package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"dashgen/internal/config"
	"dashgen/internal/pipeline"
)

// Server runs the HTTP surface around one Pipeline.
type Server struct {
	cfg  *config.Config
	pipe *pipeline.Pipeline
	log  *zap.Logger
	http *http.Server
}

func New(cfg *config.Config, pipe *pipeline.Pipeline, log *zap.Logger) *Server {
	s := &Server{cfg: cfg, pipe: pipe, log: log}
	s.http = &http.Server{
		Addr:        cfg.Server.Addr,
		Handler:     s.routes(),
		ReadTimeout: cfg.ReadTimeout(),
		// No WriteTimeout: generation streams run longer than any sane
		// fixed bound; the pipeline's stage timeouts cap the work instead.
	}
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(metricsMiddleware)
	r.Use(requestLogger(s.log))

	r.Post("/api/generate", s.handleGenerateSSE)
	r.Post("/api/generate/ndjson", s.handleGenerateNDJSON)
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully within the
// configured bound.
func (s *Server) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info("http server listening", zap.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout())
		defer cancel()
		return s.http.Shutdown(sctx)
	})

	return g.Wait()
}

func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			log.Debug("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("request_id", middleware.GetReqID(r.Context())))
		})
	}
}
