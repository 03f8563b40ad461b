package report

import (
	"context"
	"io"

	"localelint/internal/verify"
)

//go:generate templ generate -f report.templ

func outcomeClass(report verify.Report) string {
	if report.Success() {
		return "passed"
	}
	return "failed"
}

// HTML writes the report page.
func HTML(w io.Writer, report verify.Report, opts Options) error {
	return ReportPage(report, opts).Render(context.Background(), w)
}
