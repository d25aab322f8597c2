// Package api exposes the preview HTTP surface: rendered charts served
// straight from the configured source.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/planviz/planviz/internal/api/handler"
	"github.com/planviz/planviz/internal/api/middleware"
	"github.com/planviz/planviz/internal/chart"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(svc *chart.Service, src chart.Source, version string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(chimiddleware.RealIP)

	systemHandler := handler.NewSystemHandler(version)
	chartHandler := handler.NewChartHandler(svc, src)

	r.Get("/v1/health", systemHandler.Health)

	r.Route("/v1/charts", func(r chi.Router) {
		r.Get("/gantt", chartHandler.Gantt)
		r.Get("/milestones", chartHandler.Milestones)
		r.Get("/wbs", chartHandler.WBS)
	})

	return r
}
