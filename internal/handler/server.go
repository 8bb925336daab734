// Package handler implements the HTTP handlers for the outlet onboarding API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into domain-specific files (health.go, outlet.go, etc.) but
// all share the same Server struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/analytics"
	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/domain"
)

// OutletServicer defines the board operations the outlet handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without a store or repo behind it.
type OutletServicer interface {
	Create(ctx context.Context) (domain.Outlet, error)
	Get(ctx context.Context, id string) (domain.Outlet, error)
	List(ctx context.Context, f domain.ListFilter) ([]domain.Outlet, error)
	Move(ctx context.Context, id string, stage domain.Stage) (domain.Outlet, error)
	Update(ctx context.Context, id string, patch domain.OutletPatch) (domain.Outlet, error)
	Delete(ctx context.Context, id string, confirmed bool) error
}

// CatalogServicer exposes the stage and city catalogs.
type CatalogServicer interface {
	Stages() domain.StageCatalog
	Cities() domain.CityCatalog
}

// InsightsServicer exposes derived, read-only views of the board.
type InsightsServicer interface {
	Analytics(ctx context.Context) (analytics.Report, error)
	SaveStatus() domain.SaveStatus
}

// ExportServicer produces the flat export table and its download name.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
	ExportFilename() string
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it in main.go via gen.NewStrictHandlerWithOptions(server, nil, StrictOptions(log)).
type Server struct {
	outlets  OutletServicer
	catalog  CatalogServicer
	insights InsightsServicer
	export   ExportServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(outlets OutletServicer, catalog CatalogServicer, insights InsightsServicer, export ExportServicer) *Server {
	return &Server{outlets: outlets, catalog: catalog, insights: insights, export: export}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil)
}
