package cli

import (
	"fmt"
	"path/filepath"
	"strings"
)

// resolveConfigPath makes an explicit profile path absolute. An empty path
// stays empty so callers can fall back to discovery.
func resolveConfigPath(configPath string) (string, error) {
	if strings.TrimSpace(configPath) == "" {
		return "", nil
	}
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return abs, nil
}
