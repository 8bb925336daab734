// Package gen holds the HTTP transport layer for spec/openapi.yaml: request
// and response models, the chi router wiring and the strict server adapter.
// It follows the layout of oapi-codegen's chi strict-server output, so
// handlers implement StrictServerInterface and never touch http.Request.
package gen

import (
	"time"
)

// Defines values for GetExportParamsFormat.
const (
	Csv  GetExportParamsFormat = "csv"
	Json GetExportParamsFormat = "json"
)

// Defines values for OutletPriority.
const (
	OutletPriorityHigh   OutletPriority = "high"
	OutletPriorityLow    OutletPriority = "low"
	OutletPriorityMedium OutletPriority = "medium"
)

// Defines values for OutletPatchPriority.
const (
	OutletPatchPriorityHigh   OutletPatchPriority = "high"
	OutletPatchPriorityLow    OutletPatchPriority = "low"
	OutletPatchPriorityMedium OutletPatchPriority = "medium"
)

// Analytics defines model for Analytics.
type Analytics struct {
	// Bottleneck Busiest non-terminal stage, or CLEAR.
	Bottleneck      string       `json:"bottleneck"`
	BottleneckClear bool         `json:"bottleneckClear"`
	Cities          []CityCount  `json:"cities"`
	LiveCount       int          `json:"liveCount"`
	PipelineHealth  int          `json:"pipelineHealth"`
	Stages          []StageCount `json:"stages"`
	Total           int          `json:"total"`
	Unassigned      int          `json:"unassigned"`
}

// CityCount defines model for CityCount.
type CityCount struct {
	City  string `json:"city"`
	Count int    `json:"count"`
}

// Drop defines model for Drop.
type Drop struct {
	OutletId string `json:"outletId"`
	Stage    string `json:"stage"`
}

// ErrorDetail defines model for ErrorDetail.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse defines model for ErrorResponse.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ExportRow defines model for ExportRow.
type ExportRow struct {
	City             string `json:"city"`
	Description      string `json:"description"`
	Name             string `json:"name"`
	RegistrationDate string `json:"registrationDate"`
	Stage            string `json:"stage"`
}

// HealthResponse defines model for HealthResponse.
type HealthResponse struct {
	LastError *string `json:"lastError,omitempty"`
	Status    string  `json:"status"`
}

// Outlet defines model for Outlet.
type Outlet struct {
	Brand       *string         `json:"brand,omitempty"`
	City        *string         `json:"city,omitempty"`
	Description string          `json:"description"`
	Id          string          `json:"id"`
	Name        string          `json:"name"`
	Priority    *OutletPriority `json:"priority,omitempty"`
	RequestedBy *string         `json:"requestedBy,omitempty"`
	Stage       string          `json:"stage"`

	// Timestamp Assigned date, epoch milliseconds.
	Timestamp int64 `json:"timestamp"`
}

// OutletPriority defines model for Outlet.Priority.
type OutletPriority string

// OutletPatch defines model for OutletPatch.
type OutletPatch struct {
	Brand *string `json:"brand,omitempty"`

	// City Empty string unassigns the city.
	City        *string              `json:"city,omitempty"`
	Description *string              `json:"description,omitempty"`
	Name        *string              `json:"name,omitempty"`
	Priority    *OutletPatchPriority `json:"priority,omitempty"`
	RequestedBy *string              `json:"requestedBy,omitempty"`
	Timestamp   *int64               `json:"timestamp,omitempty"`
}

// OutletPatchPriority defines model for OutletPatch.Priority.
type OutletPatchPriority string

// SaveStatus defines model for SaveStatus.
type SaveStatus struct {
	LastError   *string    `json:"lastError,omitempty"`
	LastSavedAt *time.Time `json:"lastSavedAt,omitempty"`
	Revision    int64      `json:"revision"`
	Saving      bool       `json:"saving"`
}

// Stage defines model for Stage.
type Stage struct {
	Color    string `json:"color"`
	Id       string `json:"id"`
	Terminal bool   `json:"terminal"`
}

// StageCount defines model for StageCount.
type StageCount struct {
	Count int    `json:"count"`
	Stage string `json:"stage"`
}

// NotFound defines model for NotFound.
type NotFound = ErrorResponse

// ValidationError defines model for ValidationError.
type ValidationError = ErrorResponse

// ListOutletsParams defines parameters for ListOutlets.
type ListOutletsParams struct {
	Stage *string `form:"stage,omitempty" json:"stage,omitempty"`
	City  *string `form:"city,omitempty" json:"city,omitempty"`

	// Q Case-insensitive name search; tolerates small typos.
	Q *string `form:"q,omitempty" json:"q,omitempty"`
}

// DeleteOutletParams defines parameters for DeleteOutlet.
type DeleteOutletParams struct {
	// Confirm Must be true; deletion is refused otherwise.
	Confirm *bool `form:"confirm,omitempty" json:"confirm,omitempty"`
}

// GetExportParams defines parameters for GetExport.
type GetExportParams struct {
	Format *GetExportParamsFormat `form:"format,omitempty" json:"format,omitempty"`
}

// GetExportParamsFormat defines parameters for GetExport.
type GetExportParamsFormat string

// DropOutletJSONRequestBody defines body for DropOutlet for application/json ContentType.
type DropOutletJSONRequestBody = Drop

// UpdateOutletJSONRequestBody defines body for UpdateOutlet for application/json ContentType.
type UpdateOutletJSONRequestBody = OutletPatch
