package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/accountd-dev/accountd/internal/config"
	"github.com/accountd-dev/accountd/internal/middleware"
	"github.com/accountd-dev/accountd/internal/middleware/metrics"
	"github.com/accountd-dev/accountd/internal/setup"
)

// New creates and configures the chi router with all the routes.
func New(deps *setup.Dependencies, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestId)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Public.CORSHosts,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	h := deps.Handler

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/auth/login", h.Login)

		r.Post("/accounts", h.CreateAccount)
		r.Get("/accounts", h.GetAccount)
		r.Delete("/accounts/{email}", h.DeleteAccount)
		// Updates target the account the bearer token resolves to.
		r.Put("/accounts", h.UpdateAccount)

		r.Post("/addresses", h.RegisterAddress)
		r.Put("/addresses/{id}", h.UpdateAddress)

		r.Post("/phones", h.RegisterPhone)
		r.Put("/phones/{id}", h.UpdatePhone)
	})

	return r
}
