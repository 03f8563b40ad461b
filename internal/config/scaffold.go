package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Scaffold writes the default profile to specPath, pointing at localesDir.
// It refuses to overwrite an existing file unless force is set.
func Scaffold(specPath, localesDir string, force bool) error {
	if specPath == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(specPath); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", specPath)
		}
		if !force {
			return fmt.Errorf("config file already exists at %q", specPath)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	if localesDir == "" {
		localesDir = DefaultLocalesDir
	}
	body, err := renderScaffoldConfig(DefaultConfig(), localesDir)
	if err != nil {
		return fmt.Errorf("render config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(specPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(specPath, []byte(body), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
