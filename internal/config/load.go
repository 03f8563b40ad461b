package config

import (
	"errors"
	"fmt"
	"os"

	"localelint/internal/spec"
)

// Profile is a loaded, validated profile together with the directory that
// relative paths in it are resolved against.
type Profile struct {
	spec.Config
	Path    string
	BaseDir string
}

// LocalesDir returns the locales directory resolved against the profile.
func (p Profile) LocalesDir() string {
	return resolvePath(p.BaseDir, p.Config.LocalesDir)
}

// Load reads, parses, schema-checks, normalizes, and validates a profile.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := spec.ParseConfig(data)
	if err != nil {
		return Profile{}, err
	}

	violations, err := spec.ValidateSchema(data)
	if err != nil {
		return Profile{}, err
	}
	if len(violations) > 0 {
		collector := &issueCollector{}
		collector.addSchemaViolations(violations)
		return Profile{}, withPath(collector.result(), path)
	}

	baseDir := RepoRootFromConfigPath(path)
	Normalize(&cfg)
	if err := Validate(&cfg, baseDir); err != nil {
		return Profile{}, withPath(err, path)
	}
	if err := mergeExpectationsFile(&cfg, baseDir); err != nil {
		return Profile{}, err
	}
	return Profile{Config: cfg, Path: path, BaseDir: baseDir}, nil
}

// LoadOrDefault loads the profile at path, or, when path is empty, the first
// profile found upward from the working directory. With no profile anywhere
// it returns the built-in default rooted at the working directory.
func LoadOrDefault(path string) (Profile, error) {
	if path != "" {
		return Load(path)
	}
	found, err := FindConfigPath("")
	if err == nil {
		return Load(found)
	}
	if !errors.Is(err, ErrConfigNotFound) {
		return Profile{}, err
	}
	wd, err := os.Getwd()
	if err != nil {
		return Profile{}, fmt.Errorf("get working directory: %w", err)
	}
	cfg := DefaultConfig()
	Normalize(&cfg)
	return Profile{Config: cfg, BaseDir: wd}, nil
}

func mergeExpectationsFile(cfg *spec.Config, baseDir string) error {
	if cfg.ExpectationsFile == "" {
		return nil
	}
	table, err := spec.LoadExpectations(resolvePath(baseDir, cfg.ExpectationsFile))
	if err != nil {
		return err
	}
	for id, value := range table {
		cfg.Expectations[id] = value
	}
	return nil
}

func withPath(err error, path string) error {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		validationErr.Path = path
	}
	return err
}
