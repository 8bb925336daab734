// Package export encodes the board as a downloadable CSV table.
package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/domain"
)

// DateLayout is the format of the Registration Date column and the filename date.
const DateLayout = "2006-01-02"

// Header is the first row of every CSV export.
var Header = []string{"Name", "City", "Stage", "Description", "Registration Date"}

// Row converts an outlet into its export row.
func Row(o domain.Outlet) domain.ExportRow {
	return domain.ExportRow{
		Name:             o.Name,
		City:             string(o.City),
		Stage:            string(o.Stage),
		Description:      o.Description,
		RegistrationDate: o.AssignedAt().Format(DateLayout),
	}
}

// Rows converts outlets into export rows, preserving order.
func Rows(outlets []domain.Outlet) []domain.ExportRow {
	rows := make([]domain.ExportRow, len(outlets))
	for i, o := range outlets {
		rows[i] = Row(o)
	}
	return rows
}

// Filename returns the download name for an export taken at now.
func Filename(now time.Time) string {
	return "outlet-onboarding-" + now.UTC().Format(DateLayout) + ".csv"
}

// WriteCSV writes the header followed by one line per row. Every field is
// wrapped in double quotes and embedded quotes are doubled. Lines end in "\n".
func WriteCSV(w io.Writer, rows []domain.ExportRow) error {
	bw := bufio.NewWriter(w)
	writeRecord(bw, Header)
	for _, r := range rows {
		writeRecord(bw, []string{r.Name, r.City, r.Stage, r.Description, r.RegistrationDate})
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export.WriteCSV: %w", err)
	}
	return nil
}

// writeRecord ignores write errors; bufio.Writer keeps the first one and
// returns it from Flush.
func writeRecord(w *bufio.Writer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			_ = w.WriteByte(',')
		}
		_ = w.WriteByte('"')
		_, _ = w.WriteString(strings.ReplaceAll(f, `"`, `""`))
		_ = w.WriteByte('"')
	}
	_ = w.WriteByte('\n')
}
