package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// TestLoadReadsJSONOutput verifies a saved report loads back unchanged.
func TestLoadReadsJSONOutput(t *testing.T) {
	original := sampleReport()
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, original, Options{Revision: "abc123"}))
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	saved, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "abc123", saved.Revision)
	if diff := cmp.Diff(original, saved.Report); diff != "" {
		t.Fatalf("report mismatch (-want +got):\n%s", diff)
	}
}

// TestLoadRejectsForeignJSON verifies files without a run id are refused.
func TestLoadRejectsForeignJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "other.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"x"}`), 0o644))

	_, err := Load(path)
	require.ErrorContains(t, err, "missing run_id")

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorContains(t, err, "read report")
}
