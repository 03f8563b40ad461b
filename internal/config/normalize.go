package config

import (
	"strings"

	"localelint/internal/spec"
)

// Normalize trims fields and fills defaults for omitted settings.
func Normalize(cfg *spec.Config) {
	cfg.LocalesDir = strings.TrimSpace(cfg.LocalesDir)
	if cfg.LocalesDir == "" {
		cfg.LocalesDir = DefaultLocalesDir
	}
	cfg.Pattern = strings.TrimSpace(cfg.Pattern)
	cfg.ExpectationsFile = strings.TrimSpace(cfg.ExpectationsFile)
	for i := range cfg.KeyPath {
		cfg.KeyPath[i] = strings.TrimSpace(cfg.KeyPath[i])
	}
	cfg.LegacyRoot = strings.TrimSpace(cfg.LegacyRoot)
	cfg.CurrentRoot = strings.TrimSpace(cfg.CurrentRoot)
	// The default key path brings its own migration hint.
	if len(cfg.KeyPath) == 0 {
		cfg.KeyPath = append([]string(nil), DefaultKeyPath...)
		if cfg.LegacyRoot == "" && cfg.CurrentRoot == "" {
			cfg.LegacyRoot = DefaultLegacyRoot
			cfg.CurrentRoot = DefaultCurrentRoot
		}
	}
	if cfg.CurrentRoot == "" && cfg.LegacyRoot != "" {
		cfg.CurrentRoot = cfg.KeyPath[0]
	}
	if cfg.Expectations == nil {
		cfg.Expectations = map[string]string{}
	}
}
