package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/analytics"
	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/domain"
	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/handler"
	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/handler/gen"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ---- mocks -----------------------------------------------------------------

type mockInsightsServicer struct {
	analytics func(ctx context.Context) (analytics.Report, error)
	status    domain.SaveStatus
}

func (m *mockInsightsServicer) Analytics(ctx context.Context) (analytics.Report, error) {
	return m.analytics(ctx)
}

func (m *mockInsightsServicer) SaveStatus() domain.SaveStatus { return m.status }

var _ handler.InsightsServicer = (*mockInsightsServicer)(nil)

type staticCatalog struct{}

func (staticCatalog) Stages() domain.StageCatalog { return domain.Stages }
func (staticCatalog) Cities() domain.CityCatalog  { return domain.Cities }

var _ handler.CatalogServicer = staticCatalog{}

func newInsightsHTTPHandler(svc handler.InsightsServicer) http.Handler {
	srv := handler.NewServer(nil, staticCatalog{}, svc, nil)
	return gen.Handler(gen.NewStrictHandler(srv, nil))
}

// ---- GET /stages, /cities --------------------------------------------------

func TestListStages_ColumnOrderWithTerminalFlag(t *testing.T) {
	rec := serve(newInsightsHTTPHandler(nil), http.MethodGet, "/stages", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var stages []gen.Stage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&stages))
	require.Len(t, stages, len(domain.Stages))
	assert.Equal(t, string(domain.StageOnboardingRequest), stages[0].Id)
	assert.Equal(t, "blue", stages[0].Color)
	assert.False(t, stages[0].Terminal)
	last := stages[len(stages)-1]
	assert.Equal(t, string(domain.StageOutletLive), last.Id)
	assert.True(t, last.Terminal)
}

func TestListCities_CatalogOrder(t *testing.T) {
	rec := serve(newInsightsHTTPHandler(nil), http.MethodGet, "/cities", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var cities []string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&cities))
	require.Len(t, cities, len(domain.Cities))
	assert.Equal(t, string(domain.Cities.First()), cities[0])
}

// ---- GET /analytics --------------------------------------------------------

func TestGetAnalytics_MapsReport(t *testing.T) {
	report := analytics.Report{
		Total:          2,
		LiveCount:      1,
		PipelineHealth: 51,
		Bottleneck:     domain.StageChefApproval,
		Stages:         []analytics.StageCount{{Stage: domain.StageChefApproval, Count: 1}},
		Cities:         []analytics.CityCount{{City: "Delhi", Count: 2}},
	}
	svc := &mockInsightsServicer{
		analytics: func(_ context.Context) (analytics.Report, error) { return report, nil },
	}

	rec := serve(newInsightsHTTPHandler(svc), http.MethodGet, "/analytics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got gen.Analytics
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, 2, got.Total)
	assert.Equal(t, 1, got.LiveCount)
	assert.Equal(t, 51, got.PipelineHealth)
	assert.Equal(t, "CHEF APPROVAL", got.Bottleneck)
	assert.False(t, got.BottleneckClear)
	assert.Equal(t, []gen.StageCount{{Stage: "CHEF APPROVAL", Count: 1}}, got.Stages)
	assert.Equal(t, []gen.CityCount{{City: "Delhi", Count: 2}}, got.Cities)
}

func TestGetAnalytics_ClearBottleneck(t *testing.T) {
	svc := &mockInsightsServicer{
		analytics: func(_ context.Context) (analytics.Report, error) {
			return analytics.Report{Bottleneck: analytics.Clear, BottleneckClear: true}, nil
		},
	}

	rec := serve(newInsightsHTTPHandler(svc), http.MethodGet, "/analytics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got gen.Analytics
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "CLEAR", got.Bottleneck)
	assert.True(t, got.BottleneckClear)
}

// ---- GET /status -----------------------------------------------------------

func TestGetStatus_IdleBeforeFirstWrite(t *testing.T) {
	rec := serve(newInsightsHTTPHandler(&mockInsightsServicer{}), http.MethodGet, "/status", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"saving":false,"revision":0}`, rec.Body.String())
}

func TestGetStatus_SavingWithTimestamp(t *testing.T) {
	saved := time.Date(2025, 4, 2, 9, 30, 0, 0, time.UTC)
	svc := &mockInsightsServicer{status: domain.SaveStatus{Saving: true, LastSavedAt: saved, Revision: 7}}

	rec := serve(newInsightsHTTPHandler(svc), http.MethodGet, "/status", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got gen.SaveStatus
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.True(t, got.Saving)
	assert.Equal(t, int64(7), got.Revision)
	require.NotNil(t, got.LastSavedAt)
	assert.True(t, saved.Equal(*got.LastSavedAt))
	assert.Nil(t, got.LastError)
}

func TestGetStatus_ReportsLastError(t *testing.T) {
	svc := &mockInsightsServicer{status: domain.SaveStatus{LastError: "quota exceeded"}}

	rec := serve(newInsightsHTTPHandler(svc), http.MethodGet, "/status", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got gen.SaveStatus
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.NotNil(t, got.LastError)
	assert.Equal(t, "quota exceeded", *got.LastError)
}
