package export_test

import (
	"bytes"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/domain"
	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/export"
)

func TestWriteCSV_DoublesEmbeddedQuotes(t *testing.T) {
	outlets := []domain.Outlet{
		{
			Name:        `Joe's "Best" Pizza`,
			City:        "Pune",
			Stage:       domain.StageMOUSign,
			Description: "corner, near station",
			Timestamp:   time.Date(2025, 2, 3, 23, 59, 0, 0, time.UTC).UnixMilli(),
		},
		{
			Name:      "Plain",
			Stage:     domain.StageOutletLive,
			Timestamp: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC).UnixMilli(),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, export.Rows(outlets)))

	want := `"Name","City","Stage","Description","Registration Date"` + "\n" +
		`"Joe's ""Best"" Pizza","Pune","MOU SIGN","corner, near station","2025-02-03"` + "\n" +
		`"Plain","","OUTLET LIVE","","2024-12-31"` + "\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSV_ParsesBackWithStandardReader(t *testing.T) {
	rows := []domain.ExportRow{
		{Name: "multi\nline", City: "Delhi", Stage: "ID CREATION", Description: `a "quoted", value`, RegistrationDate: "2025-01-01"},
	}

	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, export.Header, records[0])
	assert.Equal(t, []string{"multi\nline", "Delhi", "ID CREATION", `a "quoted", value`, "2025-01-01"}, records[1])
}

func TestWriteCSV_EmptyBoardWritesHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, nil))
	assert.Equal(t, `"Name","City","Stage","Description","Registration Date"`+"\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteCSV_ReturnsWriteError(t *testing.T) {
	err := export.WriteCSV(failingWriter{}, []domain.ExportRow{{Name: "x"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestFilename(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2025, 7, 1, 2, 0, 0, 0, ist) // 2025-06-30 20:30 UTC
	assert.Equal(t, "outlet-onboarding-2025-06-30.csv", export.Filename(now))
}

func TestRow_UsesUTCDate(t *testing.T) {
	o := domain.Outlet{Name: "n", City: "Mumbai", Stage: domain.StageFassiApply,
		Timestamp: time.Date(2025, 5, 5, 0, 30, 0, 0, time.UTC).UnixMilli()}
	assert.Equal(t, domain.ExportRow{
		Name: "n", City: "Mumbai", Stage: "FASSI APPLY", RegistrationDate: "2025-05-05",
	}, export.Row(o))
}
