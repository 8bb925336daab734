package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/domain"
)

// run executes outletctl with args against a file board in dir.
func run(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	c := NewCLI(&out, &errOut)
	c.root.SetArgs(append([]string{"--driver", "file", "--path", dir}, args...))
	err := c.Execute()
	return out.String(), errOut.String(), err
}

func TestList_ShowsSeedBoard(t *testing.T) {
	out, _, err := run(t, t.TempDir(), "list")
	require.NoError(t, err)

	for _, name := range []string{"Burger King - Downtown", "Taco Bell - North", "KFC - Airport"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "OUTLET LIVE")
}

func TestList_Filters(t *testing.T) {
	dir := t.TempDir()

	out, _, err := run(t, dir, "list", "--city", "Mumbai")
	require.NoError(t, err)
	assert.Contains(t, out, "Taco Bell - North")
	assert.NotContains(t, out, "Burger King")

	out, _, err = run(t, dir, "list", "--q", "subwya")
	require.NoError(t, err)
	assert.Contains(t, out, "Subway - Station")
	assert.NotContains(t, out, "KFC")

	out, _, err = run(t, dir, "list", "--stage", "MOU SIGN")
	require.NoError(t, err)
	assert.Equal(t, "No outlets found.\n", out)
}

func TestList_UnknownStage(t *testing.T) {
	_, _, err := run(t, t.TempDir(), "list", "--stage", "NOPE")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestStats(t *testing.T) {
	out, _, err := run(t, t.TempDir(), "stats")
	require.NoError(t, err)

	assert.Contains(t, out, "Total outlets:   5\n")
	assert.Contains(t, out, "Live:            1\n")
	assert.Contains(t, out, "Pipeline health: 20%\n")
	// Every non-terminal seed stage holds one outlet; the first one wins the tie.
	assert.Contains(t, out, "Bottleneck:      ONBOARDING REQUEST\n")
	assert.Contains(t, out, "Unassigned:      0\n")
	assert.Contains(t, out, "Bengaluru")
}

func TestExport_CSVToStdout(t *testing.T) {
	out, _, err := run(t, t.TempDir(), "export", "--out", "-")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 6)
	assert.Equal(t, []string{"Name", "City", "Stage", "Description", "Registration Date"}, records[0])
	assert.Equal(t, "Burger King - Downtown", records[1][0])
	assert.Equal(t, "Bengaluru", records[1][1])
	assert.Equal(t, "ONBOARDING REQUEST", records[1][2])
}

func TestExport_JSONFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "board.json")

	_, errOut, err := run(t, dir, "export", "--format", "json", "--out", target)
	require.NoError(t, err)
	assert.Equal(t, "Exported 5 outlets to "+target+"\n", errOut)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	var rows []map[string]string
	require.NoError(t, json.Unmarshal(data, &rows))
	require.Len(t, rows, 5)
	assert.Equal(t, "KFC - Airport", rows[4]["name"])
	assert.Equal(t, "OUTLET LIVE", rows[4]["stage"])
	assert.Contains(t, rows[4], "registrationDate")
}

func TestExport_UnsupportedFormat(t *testing.T) {
	_, _, err := run(t, t.TempDir(), "export", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported format "xml"`)
}

func TestReset_RequiresYes(t *testing.T) {
	_, _, err := run(t, t.TempDir(), "reset")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")
}

func TestReset_RestoresSeed(t *testing.T) {
	dir := t.TempDir()
	key := filepath.Join(dir, "cloudchef_flow_data_v4.json")

	// Open once so the seed is written, then empty the saved board.
	_, _, err := run(t, dir, "list")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(key, []byte("[]"), 0o644))

	out, _, err := run(t, dir, "list")
	require.NoError(t, err)
	assert.Equal(t, "No outlets found.\n", out)

	out, _, err = run(t, dir, "reset", "--yes")
	require.NoError(t, err)
	assert.Equal(t, "Board reset to 5 seed outlets.\n", out)

	out, _, err = run(t, dir, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Burger King - Downtown")
}

func TestSeedFileFlag(t *testing.T) {
	dir := t.TempDir()
	seed := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(seed, []byte(`outlets:
  - id: "A1"
    name: Wok Express
    description: Test outlet.
    city: Pune
    stage: MOU SIGN
    ageMs: 0
`), 0o644))

	out, _, err := run(t, dir, "--seed-file", seed, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Wok Express")
	assert.NotContains(t, out, "Burger King")
}

func TestEnvironmentSelectsDriver(t *testing.T) {
	t.Setenv("OUTLETCTL_DRIVER", "bogus")

	var out, errOut bytes.Buffer
	c := NewCLI(&out, &errOut)
	c.root.SetArgs([]string{"list"})
	err := c.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), `unknown store driver "bogus"`)
}

func TestFlagOverridesEnvironment(t *testing.T) {
	t.Setenv("OUTLETCTL_DRIVER", "bogus")

	out, _, err := run(t, t.TempDir(), "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Total outlets:   5")
}
