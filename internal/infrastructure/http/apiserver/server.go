// Package apiserver provides the pure JSON API HTTP server
package apiserver

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	appparse "github.com/grocerly/recipetext/internal/application/parse"
	"github.com/grocerly/recipetext/internal/infrastructure/config"
	"github.com/grocerly/recipetext/internal/infrastructure/http/handlers"
	"github.com/grocerly/recipetext/internal/infrastructure/http/middleware"
)

// Server is the JSON API server around the parse service
type Server struct {
	config *config.Config
	logger *zap.Logger
	server *http.Server
	router *chi.Mux
}

// New creates the API server. The prometheus gatherer backs /metrics and
// must be the registry the parse metrics were registered on.
func New(cfg *config.Config, log *zap.Logger, service *appparse.Service, gatherer prometheus.Gatherer) *Server {
	s := &Server{
		config: cfg,
		logger: log,
	}

	s.router = s.setupRoutes(service, gatherer)
	s.server = &http.Server{
		Addr:           cfg.Address(),
		Handler:        s.router,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	return s
}

// setupRoutes configures middleware and the JSON API routes
func (s *Server) setupRoutes(service *appparse.Service, gatherer prometheus.Gatherer) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger,
		s.config.Monitoring.HealthCheckPath,
		s.config.Monitoring.MetricsPath,
	))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	r.Use(chimiddleware.Timeout(s.config.Server.RequestTimeout))
	r.Use(chimiddleware.Compress(5))
	r.Use(middleware.RateLimit(s.config.RateLimit.RequestsPerSecond, s.config.RateLimit.BurstSize))
	r.Use(middleware.JSONOnly())
	r.Use(func(next http.Handler) http.Handler {
		return http.MaxBytesHandler(next, s.config.Server.MaxBodyBytes)
	})

	h := handlers.NewParseHandlers(service, s.config.Parser, s.logger)

	r.Get(s.config.Monitoring.HealthCheckPath, h.HealthCheck)
	if s.config.Monitoring.EnableMetrics {
		r.Method(http.MethodGet, s.config.Monitoring.MetricsPath,
			promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/parse", h.ParseRecipe)
		r.Post("/parse/ingredients", h.ParseIngredients)
		r.Post("/parse/instructions", h.ParseInstructions)
	})

	return r
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting JSON API server",
		zap.String("address", s.server.Addr),
	)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server...")
	return s.server.Shutdown(ctx)
}
