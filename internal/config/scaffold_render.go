package config

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"localelint/internal/spec"
)

// ScaffoldConfig renders a commented profile YAML for cfg.
func ScaffoldConfig(cfg spec.Config, localesDir string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("# localelint profile\n")
		fmt.Fprintf(&b, "version: %d\n\n", cfg.Version)
		b.WriteString("# Directory holding one YAML document per locale, relative to the repo root.\n")
		fmt.Fprintf(&b, "locales_dir: %s\n", strconv.Quote(localesDir))
		b.WriteString("# Walk key_path under a top-level key named after the locale (en: {...}).\n")
		fmt.Fprintf(&b, "unwrap_locale_root: %t\n\n", cfg.UnwrapsLocaleRoot())
		b.WriteString("key_path:\n")
		for _, key := range cfg.KeyPath {
			fmt.Fprintf(&b, "  - %s\n", key)
		}
		b.WriteString("\n# Warn when a document still uses the legacy root instead of the current one.\n")
		fmt.Fprintf(&b, "legacy_root: %s\n", cfg.LegacyRoot)
		fmt.Fprintf(&b, "current_root: %s\n\n", cfg.CurrentRoot)
		b.WriteString("# Expected values; differences are reported as warnings.\n")
		b.WriteString("expectations:\n")
		ids := make([]string, 0, len(cfg.Expectations))
		for id := range cfg.Expectations {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			fmt.Fprintf(&b, "  %s: %s\n", id, strconv.Quote(cfg.Expectations[id]))
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// renderScaffoldConfig builds the scaffold YAML via the component.
func renderScaffoldConfig(cfg spec.Config, localesDir string) (string, error) {
	var builder strings.Builder
	if err := ScaffoldConfig(cfg, localesDir).Render(context.Background(), &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}
