package handler

import (
	"context"

	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/handler/gen"
)

// GetHealth handles GET /healthz. The server is "degraded" while the last
// snapshot write has failed; it still answers 200 because the in-memory
// board keeps working.
func (s *Server) GetHealth(_ context.Context, _ gen.GetHealthRequestObject) (gen.GetHealthResponseObject, error) {
	if s.insights == nil {
		return gen.GetHealth200JSONResponse{Status: "ok"}, nil
	}
	if st := s.insights.SaveStatus(); st.LastError != "" {
		return gen.GetHealth200JSONResponse{Status: "degraded", LastError: &st.LastError}, nil
	}
	return gen.GetHealth200JSONResponse{Status: "ok"}, nil
}
