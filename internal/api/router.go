package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/evgeniy-krivenko/notes-backend/internal/api/httpx"
	"github.com/evgeniy-krivenko/notes-backend/pkg/logger/slogx"
	"github.com/evgeniy-krivenko/notes-backend/pkg/metrics"
)

const healthTimeout = 2 * time.Second

type Service interface {
	RegisterRoutes(chi.Router)
}

type pinger interface {
	Ping(context.Context) error
}

//go:generate options-gen -out-filename=router_options.gen.go -from-struct=Options -all-variadic true
type Options struct {
	allowedOrigins []string         `option:"mandatory" validate:"required,min=1"`
	metrics        *metrics.Metrics `option:"mandatory" validate:"required"`

	services []Service `validate:"required,min=1"`
	db       pinger
}

func NewRouter(opts Options) (http.Handler, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate router options: %v", err)
	}

	r := chi.NewRouter()

	r.Use(opts.metrics.Middleware)
	r.Use(slogx.LoggingMiddleware)
	r.Use(httpx.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusNotFound, httpx.ErrorResponse{Detail: "Not Found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusMethodNotAllowed, httpx.ErrorResponse{Detail: "Method Not Allowed"})
	})

	r.Get("/health", health(opts.db))
	r.Method(http.MethodGet, "/metrics", opts.metrics.Handler())

	for _, svc := range opts.services {
		svc.RegisterRoutes(r)
	}

	return r, nil
}

// RequestMiddlewares run outside the router, ahead of routing.
func RequestMiddlewares() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.RealIP,
	}
}

func health(db pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
			defer cancel()

			if err := db.Ping(ctx); err != nil {
				slogx.Warn(ctx, "health check failed", slogx.Err(err))
				httpx.JSON(w, http.StatusServiceUnavailable, httpx.ErrorResponse{Detail: "database unavailable"})
				return
			}
		}

		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
