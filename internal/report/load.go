package report

import (
	"encoding/json"
	"fmt"
	"os"

	"localelint/internal/verify"
)

// Saved is a report read back from JSON output.
type Saved struct {
	Report   verify.Report
	Revision string
}

// Load reads a report written by the json format.
func Load(path string) (Saved, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Saved{}, fmt.Errorf("read report: %w", err)
	}
	var decoded jsonReport
	if err := json.Unmarshal(data, &decoded); err != nil {
		return Saved{}, fmt.Errorf("parse report %s: %w", path, err)
	}
	if decoded.RunID == "" {
		return Saved{}, fmt.Errorf("parse report %s: missing run_id", path)
	}
	return Saved{Report: decoded.Report, Revision: decoded.Revision}, nil
}
