package document

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Source names one document on disk.
type Source struct {
	ID   string
	Path string
}

// Discover lists the documents in dir. An empty pattern matches *.yml and
// *.yaml. The identifier is the base name without extension and without
// idPrefix (so client.en.yml with prefix "client." becomes "en").
func Discover(dir, pattern, idPrefix string) ([]Source, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, fmt.Errorf("locales directory is required")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("read locales dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("locales path %q is not a directory", dir)
	}

	patterns := []string{"*.yml", "*.yaml"}
	if strings.TrimSpace(pattern) != "" {
		patterns = []string{pattern}
	}

	seen := map[string]string{}
	sources := make([]Source, 0)
	for _, p := range patterns {
		matches, err := filepath.Glob(filepath.Join(dir, p))
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", p, err)
		}
		for _, match := range matches {
			if info, err := os.Stat(match); err != nil || info.IsDir() {
				continue
			}
			id := Identifier(match, idPrefix)
			if id == "" {
				continue
			}
			if previous, exists := seen[id]; exists {
				return nil, fmt.Errorf("locale %q defined twice: %s and %s", id, filepath.Base(previous), filepath.Base(match))
			}
			seen[id] = match
			sources = append(sources, Source{ID: id, Path: match})
		}
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no locale documents found in %s", dir)
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i].ID < sources[j].ID })
	return sources, nil
}

// Identifier derives a document identifier from a file path.
func Identifier(path, idPrefix string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.TrimPrefix(base, idPrefix)
}

// IsDocumentPath reports whether a path looks like a YAML document.
func IsDocumentPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return true
	default:
		return false
	}
}
