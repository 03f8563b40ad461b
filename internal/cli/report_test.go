package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestReportCommandRendersSavedJSON verifies a saved JSON report can be
// re-rendered as HTML with the original exit status.
func TestReportCommandRendersSavedJSON(t *testing.T) {
	profile := writeRepo(t, map[string]string{
		"en.yml": localeDoc("en", "Insert Timeline"),
		"de.yml": "de:\n  js: {}\n",
	})

	var saved, err bytes.Buffer
	if code := Run([]string{"check", "--config", profile, "--format", "json"}, &saved, &err); code != ExitError {
		t.Fatalf("expected failing check, got %d", code)
	}
	path := filepath.Join(t.TempDir(), "report.json")
	if writeErr := os.WriteFile(path, saved.Bytes(), 0o644); writeErr != nil {
		t.Fatalf("write report: %v", writeErr)
	}

	var out bytes.Buffer
	err.Reset()
	code := Run([]string{"report", path, "--format", "html"}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.HasPrefix(out.String(), "<!doctype html>") {
		t.Fatalf("expected html output, got %q", out.String())
	}
	assertContains(t, out.String(), "2 documents, 1 errors")
	if err.Len() != 0 {
		t.Fatalf("expected no stderr output, got %q", err.String())
	}
}

// TestReportCommandRequiresFile verifies the file argument.
func TestReportCommandRequiresFile(t *testing.T) {
	var out, err bytes.Buffer
	if code := Run([]string{"report"}, &out, &err); code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}

	err.Reset()
	if code := Run([]string{"report", filepath.Join(t.TempDir(), "missing.json")}, &out, &err); code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	assertContains(t, err.String(), "read report")
}
