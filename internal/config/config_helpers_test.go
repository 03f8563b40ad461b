package config

import (
	"os"
	"path/filepath"
	"testing"

	"localelint/internal/spec"
)

// validConfig returns a minimal profile used by validation tests.
func validConfig() spec.Config {
	return spec.Config{
		Version:    1,
		LocalesDir: "locales",
		KeyPath:    []string{"js", "timelines", "composer_toolbar", "insert_button"},
		Expectations: map[string]string{
			"en": "Insert Timeline",
		},
	}
}

// writeProfile writes body as the profile of a fresh repo and returns its path.
func writeProfile(t *testing.T, root, body string) string {
	t.Helper()
	path := ConfigPath(root)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
