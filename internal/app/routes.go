package app

import (
	"net/http"

	"github.com/a11ykit/achecker-client/internal/observability"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(s.requestID)

	observability.InitMetrics()

	r.Get("/health", s.health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		if s.cfg.JWTSecret != "" {
			r.Use(s.requireToken)
		}
		r.Get("/reports", s.handleReport)
	})

	return r
}
