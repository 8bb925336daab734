package handler

import (
	"bytes"
	"context"
	"mime"
	"strings"

	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/domain"
	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/export"
	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/handler/gen"
)

// GetExport handles GET /export.
// Returns one row per outlet in board order as a downloadable attachment.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetExport(ctx context.Context, req gen.GetExportRequestObject) (gen.GetExportResponseObject, error) {
	rows, err := s.export.Export(ctx)
	if err != nil {
		return nil, err
	}
	filename := s.export.ExportFilename()

	wantCSV := req.Params.Format != nil && *req.Params.Format == gen.Csv
	if wantCSV {
		return buildCSVResponse(rows, filename)
	}
	return buildJSONResponse(rows, strings.TrimSuffix(filename, ".csv")+".json"), nil
}

// attachment builds a Content-Disposition value for filename.
func attachment(filename string) string {
	return mime.FormatMediaType("attachment", map[string]string{"filename": filename})
}

// buildJSONResponse converts domain rows to the typed JSON response.
func buildJSONResponse(rows []domain.ExportRow, filename string) gen.GetExport200JSONResponse {
	out := make([]gen.ExportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, gen.ExportRow{
			Name:             r.Name,
			City:             r.City,
			Stage:            r.Stage,
			Description:      r.Description,
			RegistrationDate: r.RegistrationDate,
		})
	}
	return gen.GetExport200JSONResponse{
		Body:    out,
		Headers: gen.GetExport200ResponseHeaders{ContentDisposition: attachment(filename)},
	}
}

// buildCSVResponse encodes domain rows as CSV and wraps them in the streaming response type.
func buildCSVResponse(rows []domain.ExportRow, filename string) (gen.GetExport200TextcsvResponse, error) {
	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, rows); err != nil {
		return gen.GetExport200TextcsvResponse{}, err
	}
	return gen.GetExport200TextcsvResponse{
		Body:          &buf,
		Headers:       gen.GetExport200ResponseHeaders{ContentDisposition: attachment(filename)},
		ContentLength: int64(buf.Len()),
	}, nil
}
