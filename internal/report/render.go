// Package report writes verification reports as text, JSON, or HTML.
package report

import (
	"fmt"
	"io"

	"localelint/internal/verify"
)

// Formats lists the supported report formats.
var Formats = []string{"text", "json", "html"}

// Options tunes rendering.
type Options struct {
	// Color enables ANSI styling of the text report.
	Color bool
	// Files lists the discovered document paths shown in the text header.
	Files []string
	// Revision identifies the checked-out source tree, when known.
	Revision string
}

// Write renders report in the named format.
func Write(w io.Writer, format string, report verify.Report, opts Options) error {
	switch format {
	case "", "text":
		return Text(w, report, opts)
	case "json":
		return JSON(w, report, opts)
	case "html":
		return HTML(w, report, opts)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
