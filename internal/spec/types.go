package spec

// Config is a verification profile: where the locale documents live, which
// key path each must contain, and what values are expected.
type Config struct {
	Version          int               `yaml:"version"`
	LocalesDir       string            `yaml:"locales_dir"`
	Pattern          string            `yaml:"pattern"`
	IDPrefix         string            `yaml:"id_prefix"`
	UnwrapLocaleRoot *bool             `yaml:"unwrap_locale_root"`
	KeyPath          []string          `yaml:"key_path"`
	LegacyRoot       string            `yaml:"legacy_root"`
	CurrentRoot      string            `yaml:"current_root"`
	Expectations     map[string]string `yaml:"expectations"`
	ExpectationsFile string            `yaml:"expectations_file"`
}

// UnwrapsLocaleRoot reports whether key paths are walked under a top-level
// key named after the document identifier.
func (c Config) UnwrapsLocaleRoot() bool {
	return c.UnwrapLocaleRoot == nil || *c.UnwrapLocaleRoot
}
