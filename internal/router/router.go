// Package router assembles the HTTP routes
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/KirkDiggler/rpg-sheet-api/internal/errors"
	"github.com/KirkDiggler/rpg-sheet-api/internal/handlers/health"
	"github.com/KirkDiggler/rpg-sheet-api/internal/logger"
)

// Config holds the configuration for creating a router.
type Config struct {
	GraphQL        http.Handler
	Health         *health.Handler
	AuthMiddleware func(http.Handler) http.Handler
	AllowedOrigins []string
	Logger         *logger.Logger
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GraphQL == nil {
		vb.RequiredField("GraphQL")
	}
	if c.Health == nil {
		vb.RequiredField("Health")
	}
	if c.AuthMiddleware == nil {
		vb.RequiredField("AuthMiddleware")
	}

	return vb.Build()
}

// New creates and configures the HTTP router.
func New(cfg *Config) (*chi.Mux, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid router config")
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/healthz", cfg.Health.Healthz)
	r.Get("/readyz", cfg.Health.Readyz)

	r.Group(func(r chi.Router) {
		r.Use(cfg.AuthMiddleware)
		r.Method(http.MethodPost, "/graphql", cfg.GraphQL)
	})

	return r, nil
}
