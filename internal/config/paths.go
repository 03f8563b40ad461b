package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	ConfigDirName     = ".localelint"
	ConfigFileName    = "config.yml"
	DefaultLocalesDir = "config/locales"
)

// profileFileNames are tried in order inside ConfigDirName.
var profileFileNames = []string{ConfigFileName, "config.yaml"}

// ErrConfigNotFound is returned by FindConfigPath when no profile exists
// between the start directory and the repository or filesystem root.
var ErrConfigNotFound = errors.New("config not found")

// ConfigDir is where profiles live inside a repository.
func ConfigDir(root string) string {
	return filepath.Join(root, ConfigDirName)
}

// ConfigPath is the profile written by init.
func ConfigPath(root string) string {
	return filepath.Join(ConfigDir(root), ConfigFileName)
}

// RepoRootFromConfigPath is the directory profile-relative paths resolve
// against: the parent of .localelint, or the profile's own directory.
func RepoRootFromConfigPath(configPath string) string {
	dir := filepath.Dir(configPath)
	if filepath.Base(dir) == ConfigDirName {
		return filepath.Dir(dir)
	}
	return dir
}

// FindConfigPath walks up from startDir (the working directory when empty)
// looking for .localelint/config.yml or config.yaml. The walk stops after
// the first directory containing .git.
func FindConfigPath(startDir string) (string, error) {
	start := strings.TrimSpace(startDir)
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		start = wd
	}
	start, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}

	for dir := start; ; {
		path, found, err := profileIn(dir)
		if err != nil || found {
			return path, err
		}
		parent := filepath.Dir(dir)
		if parent == dir || isRepoRoot(dir) {
			return "", fmt.Errorf("%w: no %s/%s above %s", ErrConfigNotFound, ConfigDirName, ConfigFileName, start)
		}
		dir = parent
	}
}

// profileIn looks for a profile in dir/.localelint. A .localelint directory
// without a profile is an error rather than a reason to keep walking.
func profileIn(dir string) (string, bool, error) {
	configDir := ConfigDir(dir)
	info, err := os.Stat(configDir)
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("stat %q: %w", configDir, err)
	}
	if !info.IsDir() {
		return "", false, nil
	}
	for _, name := range profileFileNames {
		path := filepath.Join(configDir, name)
		info, err := os.Stat(path)
		switch {
		case err == nil && info.IsDir():
			return "", false, fmt.Errorf("config path %q is a directory", path)
		case err == nil:
			return path, true, nil
		case !os.IsNotExist(err):
			return "", false, fmt.Errorf("stat config path %q: %w", path, err)
		}
	}
	return "", false, fmt.Errorf("found %q but %s is missing", configDir, strings.Join(profileFileNames, " or "))
}

func isRepoRoot(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}
