package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/umbreon222/Todo-List-Api/internal/api/graphql"
	"github.com/umbreon222/Todo-List-Api/internal/api/http/handler"
	"github.com/umbreon222/Todo-List-Api/internal/api/http/middleware"
	"github.com/umbreon222/Todo-List-Api/internal/logger"
	"github.com/umbreon222/Todo-List-Api/internal/model"
)

// Options toggles the optional parts of the middleware stack.
type Options struct {
	RateLimit     string
	EnableMetrics bool
	Development   bool
}

// Router wires the GraphQL endpoint, health check and metrics onto a chi mux.
type Router struct {
	resolver *graphql.Resolver
	db       model.Pinger
	opts     Options
	logger   *logger.Logger
}

// New creates new HTTP Router instance.
func New(
	resolver *graphql.Resolver,
	db model.Pinger,
	opts Options,
	logger *logger.Logger,
) *Router {
	return &Router{
		resolver: resolver,
		db:       db,
		opts:     opts,
		logger:   logger,
	}
}

// Register builds the schema and returns the configured handler.
func (r *Router) Register() (http.Handler, error) {
	schema, err := graphql.NewSchema(r.resolver)
	if err != nil {
		return nil, err
	}
	rateLimit, err := middleware.NewIPRateLimiter(r.opts.RateLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limiter: %w", err)
	}

	logging := middleware.NewLogging(r.logger.With("component", "http"))

	mux := chi.NewRouter()
	mux.Use(chimid.RequestID)
	mux.Use(chimid.RealIP)
	mux.Use(logging.Handle)
	mux.Use(chimid.Recoverer)
	if r.opts.EnableMetrics {
		mux.Use(middleware.Metrics)
	}
	mux.Use(middleware.NewSecure(r.opts.Development))
	mux.Use(rateLimit)

	mux.Get("/health", handler.NewHealth(r.db, r.logger).ServeHTTP)
	if r.opts.EnableMetrics {
		mux.Handle("/metrics", promhttp.Handler())
	}

	mux.Group(func(g chi.Router) {
		g.Use(chimid.AllowContentType("application/json"))
		g.Post("/graphql", handler.NewGraphQL(schema, r.logger).ServeHTTP)
	})

	return mux, nil
}
