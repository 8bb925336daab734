package gen

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	strictnethttp "github.com/oapi-codegen/runtime/strictmiddleware/nethttp"
)

type GetAnalyticsRequestObject struct {
}

type GetAnalyticsResponseObject interface {
	VisitGetAnalyticsResponse(w http.ResponseWriter) error
}

type GetAnalytics200JSONResponse Analytics

func (response GetAnalytics200JSONResponse) VisitGetAnalyticsResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type ListCitiesRequestObject struct {
}

type ListCitiesResponseObject interface {
	VisitListCitiesResponse(w http.ResponseWriter) error
}

type ListCities200JSONResponse []string

func (response ListCities200JSONResponse) VisitListCitiesResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type DropOutletRequestObject struct {
	Body *DropOutletJSONRequestBody
}

type DropOutletResponseObject interface {
	VisitDropOutletResponse(w http.ResponseWriter) error
}

type DropOutlet200JSONResponse Outlet

func (response DropOutlet200JSONResponse) VisitDropOutletResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type DropOutlet404JSONResponse ErrorResponse

func (response DropOutlet404JSONResponse) VisitDropOutletResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(404)

	return json.NewEncoder(w).Encode(response)
}

type DropOutlet422JSONResponse ErrorResponse

func (response DropOutlet422JSONResponse) VisitDropOutletResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(422)

	return json.NewEncoder(w).Encode(response)
}

type GetExportRequestObject struct {
	Params GetExportParams
}

type GetExportResponseObject interface {
	VisitGetExportResponse(w http.ResponseWriter) error
}

type GetExport200ResponseHeaders struct {
	ContentDisposition string
}

type GetExport200JSONResponse struct {
	Body    []ExportRow
	Headers GetExport200ResponseHeaders
}

func (response GetExport200JSONResponse) VisitGetExportResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprint(response.Headers.ContentDisposition))
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response.Body)
}

type GetExport200TextcsvResponse struct {
	Body          io.Reader
	Headers       GetExport200ResponseHeaders
	ContentLength int64
}

func (response GetExport200TextcsvResponse) VisitGetExportResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "text/csv")
	if response.ContentLength != 0 {
		w.Header().Set("Content-Length", fmt.Sprint(response.ContentLength))
	}
	w.Header().Set("Content-Disposition", fmt.Sprint(response.Headers.ContentDisposition))
	w.WriteHeader(200)

	if closer, ok := response.Body.(io.ReadCloser); ok {
		defer closer.Close()
	}
	_, err := io.Copy(w, response.Body)
	return err
}

type GetHealthRequestObject struct {
}

type GetHealthResponseObject interface {
	VisitGetHealthResponse(w http.ResponseWriter) error
}

type GetHealth200JSONResponse HealthResponse

func (response GetHealth200JSONResponse) VisitGetHealthResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type ListOutletsRequestObject struct {
	Params ListOutletsParams
}

type ListOutletsResponseObject interface {
	VisitListOutletsResponse(w http.ResponseWriter) error
}

type ListOutlets200JSONResponse []Outlet

func (response ListOutlets200JSONResponse) VisitListOutletsResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type ListOutlets422JSONResponse ErrorResponse

func (response ListOutlets422JSONResponse) VisitListOutletsResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(422)

	return json.NewEncoder(w).Encode(response)
}

type CreateOutletRequestObject struct {
}

type CreateOutletResponseObject interface {
	VisitCreateOutletResponse(w http.ResponseWriter) error
}

type CreateOutlet201JSONResponse Outlet

func (response CreateOutlet201JSONResponse) VisitCreateOutletResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(201)

	return json.NewEncoder(w).Encode(response)
}

type DeleteOutletRequestObject struct {
	Id     string `json:"id"`
	Params DeleteOutletParams
}

type DeleteOutletResponseObject interface {
	VisitDeleteOutletResponse(w http.ResponseWriter) error
}

type DeleteOutlet204Response struct {
}

func (response DeleteOutlet204Response) VisitDeleteOutletResponse(w http.ResponseWriter) error {
	w.WriteHeader(204)
	return nil
}

type DeleteOutlet404JSONResponse ErrorResponse

func (response DeleteOutlet404JSONResponse) VisitDeleteOutletResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(404)

	return json.NewEncoder(w).Encode(response)
}

type DeleteOutlet428JSONResponse ErrorResponse

func (response DeleteOutlet428JSONResponse) VisitDeleteOutletResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(428)

	return json.NewEncoder(w).Encode(response)
}

type GetOutletRequestObject struct {
	Id string `json:"id"`
}

type GetOutletResponseObject interface {
	VisitGetOutletResponse(w http.ResponseWriter) error
}

type GetOutlet200JSONResponse Outlet

func (response GetOutlet200JSONResponse) VisitGetOutletResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type GetOutlet404JSONResponse ErrorResponse

func (response GetOutlet404JSONResponse) VisitGetOutletResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(404)

	return json.NewEncoder(w).Encode(response)
}

type UpdateOutletRequestObject struct {
	Id   string `json:"id"`
	Body *UpdateOutletJSONRequestBody
}

type UpdateOutletResponseObject interface {
	VisitUpdateOutletResponse(w http.ResponseWriter) error
}

type UpdateOutlet200JSONResponse Outlet

func (response UpdateOutlet200JSONResponse) VisitUpdateOutletResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type UpdateOutlet404JSONResponse ErrorResponse

func (response UpdateOutlet404JSONResponse) VisitUpdateOutletResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(404)

	return json.NewEncoder(w).Encode(response)
}

type UpdateOutlet422JSONResponse ErrorResponse

func (response UpdateOutlet422JSONResponse) VisitUpdateOutletResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(422)

	return json.NewEncoder(w).Encode(response)
}

type ListStagesRequestObject struct {
}

type ListStagesResponseObject interface {
	VisitListStagesResponse(w http.ResponseWriter) error
}

type ListStages200JSONResponse []Stage

func (response ListStages200JSONResponse) VisitListStagesResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type GetStatusRequestObject struct {
}

type GetStatusResponseObject interface {
	VisitGetStatusResponse(w http.ResponseWriter) error
}

type GetStatus200JSONResponse SaveStatus

func (response GetStatus200JSONResponse) VisitGetStatusResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

// StrictServerInterface represents all server handlers.
type StrictServerInterface interface {

	// (GET /analytics)
	GetAnalytics(ctx context.Context, request GetAnalyticsRequestObject) (GetAnalyticsResponseObject, error)
	// City catalog
	// (GET /cities)
	ListCities(ctx context.Context, request ListCitiesRequestObject) (ListCitiesResponseObject, error)
	// Drop a dragged outlet onto a stage column
	// (POST /drops)
	DropOutlet(ctx context.Context, request DropOutletRequestObject) (DropOutletResponseObject, error)

	// (GET /export)
	GetExport(ctx context.Context, request GetExportRequestObject) (GetExportResponseObject, error)
	// Liveness check
	// (GET /healthz)
	GetHealth(ctx context.Context, request GetHealthRequestObject) (GetHealthResponseObject, error)
	// List outlets in board order
	// (GET /outlets)
	ListOutlets(ctx context.Context, request ListOutletsRequestObject) (ListOutletsResponseObject, error)
	// Create an outlet with default values in the first stage
	// (POST /outlets)
	CreateOutlet(ctx context.Context, request CreateOutletRequestObject) (CreateOutletResponseObject, error)
	// Delete an outlet (irreversible)
	// (DELETE /outlets/{id})
	DeleteOutlet(ctx context.Context, request DeleteOutletRequestObject) (DeleteOutletResponseObject, error)

	// (GET /outlets/{id})
	GetOutlet(ctx context.Context, request GetOutletRequestObject) (GetOutletResponseObject, error)
	// Partially update an outlet
	// (PATCH /outlets/{id})
	UpdateOutlet(ctx context.Context, request UpdateOutletRequestObject) (UpdateOutletResponseObject, error)
	// Stage catalog in column order
	// (GET /stages)
	ListStages(ctx context.Context, request ListStagesRequestObject) (ListStagesResponseObject, error)
	// Saving indicator
	// (GET /status)
	GetStatus(ctx context.Context, request GetStatusRequestObject) (GetStatusResponseObject, error)
}

type StrictHandlerFunc = strictnethttp.StrictHTTPHandlerFunc
type StrictMiddlewareFunc = strictnethttp.StrictHTTPMiddlewareFunc

type StrictHTTPServerOptions struct {
	RequestErrorHandlerFunc  func(w http.ResponseWriter, r *http.Request, err error)
	ResponseErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

func NewStrictHandler(ssi StrictServerInterface, middlewares []StrictMiddlewareFunc) ServerInterface {
	return &strictHandler{ssi: ssi, middlewares: middlewares, options: StrictHTTPServerOptions{
		RequestErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		},
		ResponseErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		},
	}}
}

func NewStrictHandlerWithOptions(ssi StrictServerInterface, middlewares []StrictMiddlewareFunc, options StrictHTTPServerOptions) ServerInterface {
	return &strictHandler{ssi: ssi, middlewares: middlewares, options: options}
}

type strictHandler struct {
	ssi         StrictServerInterface
	middlewares []StrictMiddlewareFunc
	options     StrictHTTPServerOptions
}

// run passes request through the strict middlewares to handler and writes
// the response with visit. ok reports whether response had the expected type.
func (sh *strictHandler) run(w http.ResponseWriter, r *http.Request, operationID string, request interface{},
	handler StrictHandlerFunc, visit func(response interface{}) (ok bool, err error)) {
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, operationID)
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
		return
	}
	if response == nil {
		return
	}
	ok, err := visit(response)
	if !ok {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	} else if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	}
}

// decodeJSON decodes the request body into dst, reporting failures through
// the request error handler.
func (sh *strictHandler) decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		sh.options.RequestErrorHandlerFunc(w, r, fmt.Errorf("can't decode JSON body: %w", err))
		return false
	}
	return true
}

// GetAnalytics operation middleware
func (sh *strictHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	var request GetAnalyticsRequestObject

	sh.run(w, r, "GetAnalytics", request,
		func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
			return sh.ssi.GetAnalytics(ctx, request.(GetAnalyticsRequestObject))
		},
		func(response interface{}) (bool, error) {
			v, ok := response.(GetAnalyticsResponseObject)
			if !ok {
				return false, nil
			}
			return true, v.VisitGetAnalyticsResponse(w)
		})
}

// ListCities operation middleware
func (sh *strictHandler) ListCities(w http.ResponseWriter, r *http.Request) {
	var request ListCitiesRequestObject

	sh.run(w, r, "ListCities", request,
		func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
			return sh.ssi.ListCities(ctx, request.(ListCitiesRequestObject))
		},
		func(response interface{}) (bool, error) {
			v, ok := response.(ListCitiesResponseObject)
			if !ok {
				return false, nil
			}
			return true, v.VisitListCitiesResponse(w)
		})
}

// DropOutlet operation middleware
func (sh *strictHandler) DropOutlet(w http.ResponseWriter, r *http.Request) {
	var request DropOutletRequestObject

	var body DropOutletJSONRequestBody
	if !sh.decodeJSON(w, r, &body) {
		return
	}
	request.Body = &body

	sh.run(w, r, "DropOutlet", request,
		func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
			return sh.ssi.DropOutlet(ctx, request.(DropOutletRequestObject))
		},
		func(response interface{}) (bool, error) {
			v, ok := response.(DropOutletResponseObject)
			if !ok {
				return false, nil
			}
			return true, v.VisitDropOutletResponse(w)
		})
}

// GetExport operation middleware
func (sh *strictHandler) GetExport(w http.ResponseWriter, r *http.Request, params GetExportParams) {
	var request GetExportRequestObject

	request.Params = params

	sh.run(w, r, "GetExport", request,
		func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
			return sh.ssi.GetExport(ctx, request.(GetExportRequestObject))
		},
		func(response interface{}) (bool, error) {
			v, ok := response.(GetExportResponseObject)
			if !ok {
				return false, nil
			}
			return true, v.VisitGetExportResponse(w)
		})
}

// GetHealth operation middleware
func (sh *strictHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	var request GetHealthRequestObject

	sh.run(w, r, "GetHealth", request,
		func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
			return sh.ssi.GetHealth(ctx, request.(GetHealthRequestObject))
		},
		func(response interface{}) (bool, error) {
			v, ok := response.(GetHealthResponseObject)
			if !ok {
				return false, nil
			}
			return true, v.VisitGetHealthResponse(w)
		})
}

// ListOutlets operation middleware
func (sh *strictHandler) ListOutlets(w http.ResponseWriter, r *http.Request, params ListOutletsParams) {
	var request ListOutletsRequestObject

	request.Params = params

	sh.run(w, r, "ListOutlets", request,
		func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
			return sh.ssi.ListOutlets(ctx, request.(ListOutletsRequestObject))
		},
		func(response interface{}) (bool, error) {
			v, ok := response.(ListOutletsResponseObject)
			if !ok {
				return false, nil
			}
			return true, v.VisitListOutletsResponse(w)
		})
}

// CreateOutlet operation middleware
func (sh *strictHandler) CreateOutlet(w http.ResponseWriter, r *http.Request) {
	var request CreateOutletRequestObject

	sh.run(w, r, "CreateOutlet", request,
		func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
			return sh.ssi.CreateOutlet(ctx, request.(CreateOutletRequestObject))
		},
		func(response interface{}) (bool, error) {
			v, ok := response.(CreateOutletResponseObject)
			if !ok {
				return false, nil
			}
			return true, v.VisitCreateOutletResponse(w)
		})
}

// DeleteOutlet operation middleware
func (sh *strictHandler) DeleteOutlet(w http.ResponseWriter, r *http.Request, id string, params DeleteOutletParams) {
	var request DeleteOutletRequestObject

	request.Id = id
	request.Params = params

	sh.run(w, r, "DeleteOutlet", request,
		func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
			return sh.ssi.DeleteOutlet(ctx, request.(DeleteOutletRequestObject))
		},
		func(response interface{}) (bool, error) {
			v, ok := response.(DeleteOutletResponseObject)
			if !ok {
				return false, nil
			}
			return true, v.VisitDeleteOutletResponse(w)
		})
}

// GetOutlet operation middleware
func (sh *strictHandler) GetOutlet(w http.ResponseWriter, r *http.Request, id string) {
	var request GetOutletRequestObject

	request.Id = id

	sh.run(w, r, "GetOutlet", request,
		func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
			return sh.ssi.GetOutlet(ctx, request.(GetOutletRequestObject))
		},
		func(response interface{}) (bool, error) {
			v, ok := response.(GetOutletResponseObject)
			if !ok {
				return false, nil
			}
			return true, v.VisitGetOutletResponse(w)
		})
}

// UpdateOutlet operation middleware
func (sh *strictHandler) UpdateOutlet(w http.ResponseWriter, r *http.Request, id string) {
	var request UpdateOutletRequestObject

	request.Id = id

	var body UpdateOutletJSONRequestBody
	if !sh.decodeJSON(w, r, &body) {
		return
	}
	request.Body = &body

	sh.run(w, r, "UpdateOutlet", request,
		func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
			return sh.ssi.UpdateOutlet(ctx, request.(UpdateOutletRequestObject))
		},
		func(response interface{}) (bool, error) {
			v, ok := response.(UpdateOutletResponseObject)
			if !ok {
				return false, nil
			}
			return true, v.VisitUpdateOutletResponse(w)
		})
}

// ListStages operation middleware
func (sh *strictHandler) ListStages(w http.ResponseWriter, r *http.Request) {
	var request ListStagesRequestObject

	sh.run(w, r, "ListStages", request,
		func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
			return sh.ssi.ListStages(ctx, request.(ListStagesRequestObject))
		},
		func(response interface{}) (bool, error) {
			v, ok := response.(ListStagesResponseObject)
			if !ok {
				return false, nil
			}
			return true, v.VisitListStagesResponse(w)
		})
}

// GetStatus operation middleware
func (sh *strictHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	var request GetStatusRequestObject

	sh.run(w, r, "GetStatus", request,
		func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
			return sh.ssi.GetStatus(ctx, request.(GetStatusRequestObject))
		},
		func(response interface{}) (bool, error) {
			v, ok := response.(GetStatusResponseObject)
			if !ok {
				return false, nil
			}
			return true, v.VisitGetStatusResponse(w)
		})
}
