package handler

import (
	"context"
	"errors"

	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/domain"
	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/handler/gen"
)

// CreateOutlet handles POST /outlets.
// The outlet is created with default values at the front of the first column.
func (s *Server) CreateOutlet(ctx context.Context, _ gen.CreateOutletRequestObject) (gen.CreateOutletResponseObject, error) {
	created, err := s.outlets.Create(ctx)
	if err != nil {
		return nil, err
	}
	return gen.CreateOutlet201JSONResponse(outletToResponse(created)), nil
}

// ListOutlets handles GET /outlets.
// Supports ?stage=, ?city= and ?q= filters; all are optional.
func (s *Server) ListOutlets(ctx context.Context, req gen.ListOutletsRequestObject) (gen.ListOutletsResponseObject, error) {
	var f domain.ListFilter
	if req.Params.Stage != nil {
		f.Stage = domain.Stage(*req.Params.Stage)
	}
	if req.Params.City != nil {
		f.City = domain.City(*req.Params.City)
	}
	if req.Params.Q != nil {
		f.Query = *req.Params.Q
	}

	outlets, err := s.outlets.List(ctx, f)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.ListOutlets422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	out := make(gen.ListOutlets200JSONResponse, len(outlets))
	for i, o := range outlets {
		out[i] = outletToResponse(o)
	}
	return out, nil
}

// GetOutlet handles GET /outlets/{id}.
func (s *Server) GetOutlet(ctx context.Context, req gen.GetOutletRequestObject) (gen.GetOutletResponseObject, error) {
	o, err := s.outlets.Get(ctx, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetOutlet404JSONResponse(notFoundBody("outlet not found")), nil
		}
		return nil, err
	}
	return gen.GetOutlet200JSONResponse(outletToResponse(o)), nil
}

// UpdateOutlet handles PATCH /outlets/{id}.
// Only the fields present in the body are changed.
func (s *Server) UpdateOutlet(ctx context.Context, req gen.UpdateOutletRequestObject) (gen.UpdateOutletResponseObject, error) {
	if req.Body == nil {
		return gen.UpdateOutlet422JSONResponse(requestBody("request body is required")), nil
	}

	updated, err := s.outlets.Update(ctx, req.Id, requestToPatch(req.Body))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.UpdateOutlet404JSONResponse(notFoundBody("outlet not found")), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.UpdateOutlet422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}
	return gen.UpdateOutlet200JSONResponse(outletToResponse(updated)), nil
}

// DeleteOutlet handles DELETE /outlets/{id}.
// The request must carry ?confirm=true; otherwise nothing is deleted and 428 is returned.
func (s *Server) DeleteOutlet(ctx context.Context, req gen.DeleteOutletRequestObject) (gen.DeleteOutletResponseObject, error) {
	confirmed := req.Params.Confirm != nil && *req.Params.Confirm

	err := s.outlets.Delete(ctx, req.Id, confirmed)
	if err != nil {
		if errors.Is(err, domain.ErrConfirmationRequired) {
			return gen.DeleteOutlet428JSONResponse(confirmationBody()), nil
		}
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteOutlet404JSONResponse(notFoundBody("outlet not found")), nil
		}
		return nil, err
	}
	return gen.DeleteOutlet204Response{}, nil
}

// DropOutlet handles POST /drops.
// The body carries the drag payload (outletId) and the target column's stage.
func (s *Server) DropOutlet(ctx context.Context, req gen.DropOutletRequestObject) (gen.DropOutletResponseObject, error) {
	if req.Body == nil || req.Body.OutletId == "" {
		return gen.DropOutlet422JSONResponse(requestBody("outletId is required")), nil
	}

	moved, err := s.outlets.Move(ctx, req.Body.OutletId, domain.Stage(req.Body.Stage))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DropOutlet404JSONResponse(notFoundBody("outlet not found")), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.DropOutlet422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}
	return gen.DropOutlet200JSONResponse(outletToResponse(moved)), nil
}

// --- mapping helpers --------------------------------------------------------

// requestToPatch converts an OutletPatch body into a domain.OutletPatch.
func requestToPatch(body *gen.OutletPatch) domain.OutletPatch {
	p := domain.OutletPatch{
		Name:        body.Name,
		Description: body.Description,
		Brand:       body.Brand,
		RequestedBy: body.RequestedBy,
		Timestamp:   body.Timestamp,
	}
	if body.City != nil {
		c := domain.City(*body.City)
		p.City = &c
	}
	if body.Priority != nil {
		pr := domain.Priority(*body.Priority)
		p.Priority = &pr
	}
	return p
}

// outletToResponse converts a domain.Outlet into the generated gen.Outlet type.
// Empty optional fields are omitted.
func outletToResponse(o domain.Outlet) gen.Outlet {
	resp := gen.Outlet{
		Id:          o.ID,
		Name:        o.Name,
		Description: o.Description,
		Stage:       string(o.Stage),
		Timestamp:   o.Timestamp,
	}
	if o.Brand != "" {
		resp.Brand = &o.Brand
	}
	if o.RequestedBy != "" {
		resp.RequestedBy = &o.RequestedBy
	}
	if o.City != "" {
		city := string(o.City)
		resp.City = &city
	}
	if o.Priority != "" {
		pr := gen.OutletPriority(o.Priority)
		resp.Priority = &pr
	}
	return resp
}
