package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const timelineProfile = `version: 1
locales_dir: locales
key_path: [js, timelines, composer_toolbar, insert_button]
legacy_root: timelines
current_root: js
expectations:
  en: Insert Timeline
  de: Zeitstrahl einfügen
`

// localeDoc returns a locale document defining the insert button.
func localeDoc(id, value string) string {
	return id + ":\n  js:\n    timelines:\n      composer_toolbar:\n        insert_button: " + value + "\n"
}

// writeRepo creates a repo with a profile and the given locale documents
// and returns the profile path.
func writeRepo(t *testing.T, docs map[string]string) string {
	t.Helper()
	root := t.TempDir()
	profilePath := filepath.Join(root, ".localelint", "config.yml")
	writeTestFile(t, profilePath, timelineProfile)
	for name, body := range docs {
		writeTestFile(t, filepath.Join(root, "locales", name), body)
	}
	return profilePath
}

func writeTestFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func assertContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("expected output to contain %q, got:\n%s", want, output)
	}
}
