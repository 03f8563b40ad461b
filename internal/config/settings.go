package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides (LOCALELINT_LOG_LEVEL, ...).
const EnvPrefix = "LOCALELINT"

// Settings are runtime options that do not belong in a profile.
type Settings struct {
	Log    LogSettings    `mapstructure:"log"`
	Output OutputSettings `mapstructure:"output"`
	Jobs   int            `mapstructure:"jobs"`
	Watch  WatchSettings  `mapstructure:"watch"`
}

// LogSettings controls the diagnostic logger.
type LogSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console or json
}

// OutputSettings controls report rendering.
type OutputSettings struct {
	Format string `mapstructure:"format"` // text, json or html
	Color  string `mapstructure:"color"`  // auto, always or never
}

// WatchSettings controls the watch command.
type WatchSettings struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// flagKeys maps command-line flags onto settings keys.
var flagKeys = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
	"format":     "output.format",
	"color":      "output.color",
	"jobs":       "jobs",
	"debounce":   "watch.debounce",
}

// LoadSettings resolves settings from defaults, LOCALELINT_* environment
// variables and, with the highest priority, flags that were set explicitly.
func LoadSettings(flags *pflag.FlagSet) (Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return Settings{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return Settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// Validate checks enumerated settings.
func (s *Settings) Validate() error {
	collector := &issueCollector{}
	s.Log.Level = strings.ToLower(strings.TrimSpace(s.Log.Level))
	s.Log.Format = strings.ToLower(strings.TrimSpace(s.Log.Format))
	s.Output.Format = strings.ToLower(strings.TrimSpace(s.Output.Format))
	s.Output.Color = strings.ToLower(strings.TrimSpace(s.Output.Color))

	switch s.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		collector.add("log.level", fmt.Sprintf("invalid level %q (expected debug|info|warn|error)", s.Log.Level))
	}
	switch s.Log.Format {
	case "console", "json":
	default:
		collector.add("log.format", fmt.Sprintf("invalid format %q (expected console|json)", s.Log.Format))
	}
	switch s.Output.Format {
	case "text", "json", "html":
	default:
		collector.add("output.format", fmt.Sprintf("invalid format %q (expected text|json|html)", s.Output.Format))
	}
	switch s.Output.Color {
	case "auto", "always", "never":
	default:
		collector.add("output.color", fmt.Sprintf("invalid color mode %q (expected auto|always|never)", s.Output.Color))
	}
	if s.Jobs < 1 {
		collector.add("jobs", "must be >= 1")
	}
	if s.Watch.Debounce < 0 {
		collector.add("watch.debounce", "must be >= 0")
	}
	return collector.result()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
	v.SetDefault("output.format", "text")
	v.SetDefault("output.color", "auto")
	v.SetDefault("jobs", 1)
	v.SetDefault("watch.debounce", "300ms")
}
