package handler_test

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/domain"
	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/handler"
	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/handler/gen"
)

// ---- mock ExportServicer ---------------------------------------------------

type mockExportServicer struct {
	export   func(ctx context.Context) ([]domain.ExportRow, error)
	filename string
}

func (m *mockExportServicer) Export(ctx context.Context) ([]domain.ExportRow, error) {
	return m.export(ctx)
}

func (m *mockExportServicer) ExportFilename() string {
	if m.filename == "" {
		return "outlet-onboarding-2025-04-02.csv"
	}
	return m.filename
}

// compile-time check: mockExportServicer must satisfy handler.ExportServicer.
var _ handler.ExportServicer = (*mockExportServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// newExportHTTPHandler wires a Server with only the export service mock.
func newExportHTTPHandler(exportSvc handler.ExportServicer) http.Handler {
	srv := handler.NewServer(nil, nil, nil, exportSvc)
	return gen.Handler(gen.NewStrictHandler(srv, nil))
}

func exportRowFixture() domain.ExportRow {
	return domain.ExportRow{
		Name:             "Burger King - Downtown",
		City:             "Bengaluru",
		Stage:            "ONBOARDING REQUEST",
		Description:      `Needs a "fast" review`,
		RegistrationDate: "2025-04-01",
	}
}

func rowsService(rows ...domain.ExportRow) *mockExportServicer {
	return &mockExportServicer{
		export: func(_ context.Context) ([]domain.ExportRow, error) {
			return rows, nil
		},
	}
}

// ---- GET /export (JSON) -----------------------------------------------------

func TestGetExport_DefaultJSON_EmptyResult(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/export", nil)
	rec := httptest.NewRecorder()
	newExportHTTPHandler(rowsService()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var rows []gen.ExportRow
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&rows))
	assert.Empty(t, rows)
}

func TestGetExport_FormatJSON_ExplicitParam(t *testing.T) {
	row := exportRowFixture()

	req := httptest.NewRequest(http.MethodGet, "/export?format=json", nil)
	rec := httptest.NewRecorder()
	newExportHTTPHandler(rowsService(row)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var rows []gen.ExportRow
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&rows))
	require.Len(t, rows, 1)
	assert.Equal(t, row.Name, rows[0].Name)
	assert.Equal(t, row.City, rows[0].City)
	assert.Equal(t, row.Stage, rows[0].Stage)
	assert.Equal(t, row.Description, rows[0].Description)
	assert.Equal(t, row.RegistrationDate, rows[0].RegistrationDate)
}

func TestGetExport_JSON_AttachmentUsesJSONExtension(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/export", nil)
	rec := httptest.NewRecorder()
	newExportHTTPHandler(rowsService()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "attachment; filename=outlet-onboarding-2025-04-02.json", rec.Header().Get("Content-Disposition"))
}

// ---- GET /export (CSV) ------------------------------------------------------

func TestGetExport_CSV_ContentTypeAndFilename(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/export?format=csv", nil)
	rec := httptest.NewRecorder()
	newExportHTTPHandler(rowsService()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Equal(t, "attachment; filename=outlet-onboarding-2025-04-02.csv", rec.Header().Get("Content-Disposition"))
}

func TestGetExport_CSV_EmptyResult_HasHeaderRowOnly(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/export?format=csv", nil)
	rec := httptest.NewRecorder()
	newExportHTTPHandler(rowsService()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `"Name","City","Stage","Description","Registration Date"`+"\n", rec.Body.String())
}

func TestGetExport_CSV_OneRow_QuotedAndParsable(t *testing.T) {
	row := exportRowFixture()

	req := httptest.NewRequest(http.MethodGet, "/export?format=csv", nil)
	rec := httptest.NewRecorder()
	newExportHTTPHandler(rowsService(row)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Needs a ""fast"" review"`)

	records, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{row.Name, row.City, row.Stage, row.Description, row.RegistrationDate}, records[1])
}

// ---- error handling --------------------------------------------------------

func TestGetExport_UnknownFormat_Returns400(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/export?format=xml", nil)
	rec := httptest.NewRecorder()
	newExportHTTPHandler(rowsService()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetExport_ServiceError_Returns500(t *testing.T) {
	svc := &mockExportServicer{
		export: func(_ context.Context) ([]domain.ExportRow, error) {
			return nil, fmt.Errorf("snapshot unavailable")
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/export", nil)
	rec := httptest.NewRecorder()
	newExportHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
