package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"localelint/internal/verify"
)

const (
	colorHeader  = lipgloss.Color("33")
	colorPass    = lipgloss.Color("42")
	colorFail    = lipgloss.Color("196")
	colorWarning = lipgloss.Color("220")
	colorMuted   = lipgloss.Color("244")
)

// Text writes the human-readable report.
func Text(w io.Writer, report verify.Report, opts Options) error {
	p := newPalette(w, opts.Color)
	var b strings.Builder

	b.WriteString(p.stylize("=== Locale Key Verification ===", colorHeader) + "\n")
	if report.KeyPath != "" {
		b.WriteString(p.stylize("Key path: "+report.KeyPath, colorMuted) + "\n")
	}
	if opts.Revision != "" {
		b.WriteString(p.stylize("Revision: "+opts.Revision, colorMuted) + "\n")
	}
	b.WriteString("\n")

	if len(opts.Files) > 0 {
		fmt.Fprintf(&b, "Found %d locale files:\n", len(opts.Files))
		for _, file := range opts.Files {
			b.WriteString("  - " + filepath.Base(file) + "\n")
		}
		b.WriteString("\n")
	}

	for _, doc := range report.Documents {
		b.WriteString(p.documentLine(doc) + "\n")
	}
	if len(report.Documents) > 0 {
		b.WriteString("\n")
	}

	if len(report.Errors) > 0 {
		b.WriteString(p.stylize("Errors:", colorFail) + "\n")
		for _, finding := range report.Errors {
			b.WriteString("  - " + finding.String() + "\n")
		}
	}
	if len(report.Warnings) > 0 {
		b.WriteString(p.stylize("Warnings:", colorWarning) + "\n")
		for _, finding := range report.Warnings {
			b.WriteString("  - " + finding.String() + "\n")
		}
	}
	if len(report.Errors) > 0 || len(report.Warnings) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(p.summary(report) + "\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// Summary returns the one-line run summary without styling.
func Summary(report verify.Report) string {
	outcome := "PASSED"
	if !report.Success() {
		outcome = "FAILED"
	}
	return fmt.Sprintf("%d documents, %d errors, %d warnings: %s",
		len(report.Documents), len(report.Errors), len(report.Warnings), outcome)
}

// palette styles text for one output writer.
type palette struct {
	renderer *lipgloss.Renderer
	color    bool
}

func newPalette(w io.Writer, color bool) palette {
	renderer := lipgloss.NewRenderer(w)
	if color {
		renderer.SetColorProfile(termenv.ANSI256)
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}
	return palette{renderer: renderer, color: color}
}

// stylize applies optional color styling.
func (p palette) stylize(text string, color lipgloss.Color) string {
	if !p.color {
		return text
	}
	return p.renderer.NewStyle().Foreground(color).Render(text)
}

func (p palette) documentLine(doc verify.DocumentResult) string {
	switch doc.State {
	case verify.StatePassed:
		line := p.stylize("PASS", colorPass) + " " + doc.ID
		if doc.Value != "" {
			line += p.stylize(fmt.Sprintf(" (%q)", doc.Value), colorMuted)
		}
		return line
	case verify.StateParseFailed:
		return p.stylize("FAIL", colorFail) + " " + doc.ID + p.stylize(" (parse failed)", colorMuted)
	default:
		return p.stylize("FAIL", colorFail) + " " + doc.ID
	}
}

func (p palette) summary(report verify.Report) string {
	color := colorPass
	if !report.Success() {
		color = colorFail
	}
	return p.stylize(Summary(report), color)
}
