package gen

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {

	// (GET /analytics)
	GetAnalytics(w http.ResponseWriter, r *http.Request)
	// City catalog
	// (GET /cities)
	ListCities(w http.ResponseWriter, r *http.Request)
	// Drop a dragged outlet onto a stage column
	// (POST /drops)
	DropOutlet(w http.ResponseWriter, r *http.Request)

	// (GET /export)
	GetExport(w http.ResponseWriter, r *http.Request, params GetExportParams)
	// Liveness check
	// (GET /healthz)
	GetHealth(w http.ResponseWriter, r *http.Request)
	// List outlets in board order
	// (GET /outlets)
	ListOutlets(w http.ResponseWriter, r *http.Request, params ListOutletsParams)
	// Create an outlet with default values in the first stage
	// (POST /outlets)
	CreateOutlet(w http.ResponseWriter, r *http.Request)
	// Delete an outlet (irreversible)
	// (DELETE /outlets/{id})
	DeleteOutlet(w http.ResponseWriter, r *http.Request, id string, params DeleteOutletParams)

	// (GET /outlets/{id})
	GetOutlet(w http.ResponseWriter, r *http.Request, id string)
	// Partially update an outlet
	// (PATCH /outlets/{id})
	UpdateOutlet(w http.ResponseWriter, r *http.Request, id string)
	// Stage catalog in column order
	// (GET /stages)
	ListStages(w http.ResponseWriter, r *http.Request)
	// Saving indicator
	// (GET /status)
	GetStatus(w http.ResponseWriter, r *http.Request)
}

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandlerFunc   func(w http.ResponseWriter, r *http.Request, err error)
}

type MiddlewareFunc func(http.Handler) http.Handler

func (siw *ServerInterfaceWrapper) serve(w http.ResponseWriter, r *http.Request, h http.HandlerFunc) {
	handler := http.Handler(h)
	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}
	handler.ServeHTTP(w, r)
}

// GetAnalytics operation middleware
func (siw *ServerInterfaceWrapper) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetAnalytics(w, r)
	})
}

// ListCities operation middleware
func (siw *ServerInterfaceWrapper) ListCities(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListCities(w, r)
	})
}

// DropOutlet operation middleware
func (siw *ServerInterfaceWrapper) DropOutlet(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.DropOutlet(w, r)
	})
}

// GetExport operation middleware
func (siw *ServerInterfaceWrapper) GetExport(w http.ResponseWriter, r *http.Request) {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params GetExportParams

	// ------------- Optional query parameter "format" -------------

	err = runtime.BindQueryParameter("form", true, false, "format", r.URL.Query(), &params.Format)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "format", Err: err})
		return
	}
	if params.Format != nil && *params.Format != Csv && *params.Format != Json {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "format", Err: fmt.Errorf("unsupported value %q", *params.Format)})
		return
	}

	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetExport(w, r, params)
	})
}

// GetHealth operation middleware
func (siw *ServerInterfaceWrapper) GetHealth(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetHealth(w, r)
	})
}

// ListOutlets operation middleware
func (siw *ServerInterfaceWrapper) ListOutlets(w http.ResponseWriter, r *http.Request) {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params ListOutletsParams

	// ------------- Optional query parameter "stage" -------------

	err = runtime.BindQueryParameter("form", true, false, "stage", r.URL.Query(), &params.Stage)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "stage", Err: err})
		return
	}

	// ------------- Optional query parameter "city" -------------

	err = runtime.BindQueryParameter("form", true, false, "city", r.URL.Query(), &params.City)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "city", Err: err})
		return
	}

	// ------------- Optional query parameter "q" -------------

	err = runtime.BindQueryParameter("form", true, false, "q", r.URL.Query(), &params.Q)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "q", Err: err})
		return
	}

	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListOutlets(w, r, params)
	})
}

// CreateOutlet operation middleware
func (siw *ServerInterfaceWrapper) CreateOutlet(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.CreateOutlet(w, r)
	})
}

// bindID binds the "id" path parameter.
func (siw *ServerInterfaceWrapper) bindID(w http.ResponseWriter, r *http.Request) (string, bool) {
	var id string
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return "", false
	}
	return id, true
}

// DeleteOutlet operation middleware
func (siw *ServerInterfaceWrapper) DeleteOutlet(w http.ResponseWriter, r *http.Request) {
	id, ok := siw.bindID(w, r)
	if !ok {
		return
	}

	// Parameter object where we will unmarshal all parameters from the context
	var params DeleteOutletParams

	// ------------- Optional query parameter "confirm" -------------

	err := runtime.BindQueryParameter("form", true, false, "confirm", r.URL.Query(), &params.Confirm)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "confirm", Err: err})
		return
	}

	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.DeleteOutlet(w, r, id, params)
	})
}

// GetOutlet operation middleware
func (siw *ServerInterfaceWrapper) GetOutlet(w http.ResponseWriter, r *http.Request) {
	id, ok := siw.bindID(w, r)
	if !ok {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetOutlet(w, r, id)
	})
}

// UpdateOutlet operation middleware
func (siw *ServerInterfaceWrapper) UpdateOutlet(w http.ResponseWriter, r *http.Request) {
	id, ok := siw.bindID(w, r)
	if !ok {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.UpdateOutlet(w, r, id)
	})
}

// ListStages operation middleware
func (siw *ServerInterfaceWrapper) ListStages(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListStages(w, r)
	})
}

// GetStatus operation middleware
func (siw *ServerInterfaceWrapper) GetStatus(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetStatus(w, r)
	})
}

type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error {
	return e.Err
}

// Handler creates http.Handler with routing matching OpenAPI spec.
func Handler(si ServerInterface) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{})
}

type ChiServerOptions struct {
	BaseURL          string
	BaseRouter       chi.Router
	Middlewares      []MiddlewareFunc
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// HandlerFromMux creates http.Handler with routing matching OpenAPI spec based on the provided mux.
func HandlerFromMux(si ServerInterface, r chi.Router) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{
		BaseRouter: r,
	})
}

// HandlerWithOptions creates http.Handler with additional options
func HandlerWithOptions(si ServerInterface, options ChiServerOptions) http.Handler {
	r := options.BaseRouter

	if r == nil {
		r = chi.NewRouter()
	}
	if options.ErrorHandlerFunc == nil {
		options.ErrorHandlerFunc = func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
	}
	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandlerFunc:   options.ErrorHandlerFunc,
	}

	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/analytics", wrapper.GetAnalytics)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/cities", wrapper.ListCities)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/drops", wrapper.DropOutlet)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/export", wrapper.GetExport)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/healthz", wrapper.GetHealth)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/outlets", wrapper.ListOutlets)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/outlets", wrapper.CreateOutlet)
	})
	r.Group(func(r chi.Router) {
		r.Delete(options.BaseURL+"/outlets/{id}", wrapper.DeleteOutlet)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/outlets/{id}", wrapper.GetOutlet)
	})
	r.Group(func(r chi.Router) {
		r.Patch(options.BaseURL+"/outlets/{id}", wrapper.UpdateOutlet)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/stages", wrapper.ListStages)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/status", wrapper.GetStatus)
	})

	return r
}
