package handler

import (
	"context"

	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/handler/gen"
)

// GetAnalytics handles GET /analytics.
func (s *Server) GetAnalytics(ctx context.Context, _ gen.GetAnalyticsRequestObject) (gen.GetAnalyticsResponseObject, error) {
	r, err := s.insights.Analytics(ctx)
	if err != nil {
		return nil, err
	}

	resp := gen.GetAnalytics200JSONResponse{
		Total:           r.Total,
		LiveCount:       r.LiveCount,
		Unassigned:      r.Unassigned,
		PipelineHealth:  r.PipelineHealth,
		Bottleneck:      string(r.Bottleneck),
		BottleneckClear: r.BottleneckClear,
		Stages:          make([]gen.StageCount, len(r.Stages)),
		Cities:          make([]gen.CityCount, len(r.Cities)),
	}
	for i, sc := range r.Stages {
		resp.Stages[i] = gen.StageCount{Stage: string(sc.Stage), Count: sc.Count}
	}
	for i, cc := range r.Cities {
		resp.Cities[i] = gen.CityCount{City: string(cc.City), Count: cc.Count}
	}
	return resp, nil
}

// GetStatus handles GET /status.
// lastSavedAt is omitted until the first successful write.
func (s *Server) GetStatus(_ context.Context, _ gen.GetStatusRequestObject) (gen.GetStatusResponseObject, error) {
	st := s.insights.SaveStatus()
	resp := gen.GetStatus200JSONResponse{
		Saving:   st.Saving,
		Revision: int64(st.Revision),
	}
	if !st.LastSavedAt.IsZero() {
		t := st.LastSavedAt.UTC()
		resp.LastSavedAt = &t
	}
	if st.LastError != "" {
		resp.LastError = &st.LastError
	}
	return resp, nil
}
