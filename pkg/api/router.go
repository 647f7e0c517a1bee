// Package api exposes the plan engine over HTTP.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fitglue/planner/pkg/bootstrap"
)

// Server binds the initialized service to its HTTP handlers.
type Server struct {
	svc    *bootstrap.Service
	logger *slog.Logger
}

func NewServer(svc *bootstrap.Service, logger *slog.Logger) *Server {
	return &Server{svc: svc, logger: logger}
}

// Router builds the route table with the standard middleware chain.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger(s.logger))
	r.Use(Recover(s.logger))

	r.Get("/health", s.handleHealth)
	r.Post("/parse", s.handleParse)
	r.Post("/plan", s.handlePlan)
	r.Post("/plan/fit", s.handlePlanFIT)

	return r
}
