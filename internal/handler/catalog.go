package handler

import (
	"context"

	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/handler/gen"
)

// ListStages handles GET /stages.
// Stages are returned in column order; the last one is flagged terminal.
func (s *Server) ListStages(_ context.Context, _ gen.ListStagesRequestObject) (gen.ListStagesResponseObject, error) {
	stages := s.catalog.Stages()
	terminal := stages.Terminal()
	out := make(gen.ListStages200JSONResponse, len(stages))
	for i, cfg := range stages {
		out[i] = gen.Stage{Id: string(cfg.ID), Color: cfg.Color, Terminal: cfg.ID == terminal}
	}
	return out, nil
}

// ListCities handles GET /cities.
func (s *Server) ListCities(_ context.Context, _ gen.ListCitiesRequestObject) (gen.ListCitiesResponseObject, error) {
	cities := s.catalog.Cities()
	out := make(gen.ListCities200JSONResponse, len(cities))
	for i, c := range cities {
		out[i] = string(c)
	}
	return out, nil
}
