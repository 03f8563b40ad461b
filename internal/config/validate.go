package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"localelint/internal/spec"
)

// Validate checks a profile for correctness and referenced files.
func Validate(cfg *spec.Config, baseDir string) error {
	collector := &issueCollector{}

	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if baseDir == "" {
		baseDir = "."
	}

	validateKeyPath(cfg, collector.add)
	validateRoots(cfg, collector.add)
	validateExpectations(cfg, baseDir, collector.add)
	if cfg.Pattern != "" {
		if _, err := filepath.Match(cfg.Pattern, ""); err != nil {
			collector.add("pattern", fmt.Sprintf("invalid glob %q", cfg.Pattern))
		}
	}

	return collector.result()
}

func validateKeyPath(cfg *spec.Config, add issueAdder) {
	if len(cfg.KeyPath) == 0 {
		add("key_path", "must include at least one key")
		return
	}
	for i, key := range cfg.KeyPath {
		field := fmt.Sprintf("key_path[%d]", i)
		switch {
		case key == "":
			add(field, "is required")
		case strings.Contains(key, "."):
			add(field, fmt.Sprintf("key %q must not contain '.'; list each segment separately", key))
		}
	}
}

func validateRoots(cfg *spec.Config, add issueAdder) {
	if cfg.LegacyRoot == "" {
		return
	}
	if cfg.LegacyRoot == cfg.CurrentRoot {
		add("legacy_root", fmt.Sprintf("must differ from current_root %q", cfg.CurrentRoot))
	}
}

func validateExpectations(cfg *spec.Config, baseDir string, add issueAdder) {
	for id := range cfg.Expectations {
		if strings.TrimSpace(id) == "" {
			add("expectations", "locale id must not be empty")
		}
	}
	if cfg.ExpectationsFile == "" {
		return
	}
	path := resolvePath(baseDir, cfg.ExpectationsFile)
	info, err := os.Stat(path)
	if err != nil {
		add("expectations_file", fmt.Sprintf("file not found at %q", cfg.ExpectationsFile))
		return
	}
	if info.IsDir() {
		add("expectations_file", fmt.Sprintf("path %q is a directory", cfg.ExpectationsFile))
		return
	}
	table, err := spec.LoadExpectations(path)
	if err != nil {
		add("expectations_file", err.Error())
		return
	}
	for id := range table {
		if _, exists := cfg.Expectations[id]; exists {
			add("expectations_file", fmt.Sprintf("duplicate expectation for %q (also set inline)", id))
		}
	}
}

// resolvePath joins a profile-relative path onto baseDir.
func resolvePath(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
