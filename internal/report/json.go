package report

import (
	"encoding/json"
	"io"

	"localelint/internal/verify"
)

// jsonReport is the machine-readable report layout.
type jsonReport struct {
	verify.Report
	Revision string `json:"revision,omitempty"`
	Success  bool   `json:"success"`
	Summary  string `json:"summary"`
}

// JSON writes the report as indented JSON.
func JSON(w io.Writer, report verify.Report, opts Options) error {
	if report.Documents == nil {
		report.Documents = []verify.DocumentResult{}
	}
	if report.Errors == nil {
		report.Errors = []verify.Finding{}
	}
	if report.Warnings == nil {
		report.Warnings = []verify.Finding{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(jsonReport{
		Report:   report,
		Revision: opts.Revision,
		Success:  report.Success(),
		Summary:  Summary(report),
	})
}
