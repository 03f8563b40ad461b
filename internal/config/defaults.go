package config

import "localelint/internal/spec"

// DefaultKeyPath is the translation key every locale document must define.
var DefaultKeyPath = []string{"js", "timelines", "composer_toolbar", "insert_button"}

// DefaultLegacyRoot and DefaultCurrentRoot locate the pre-migration layout
// that DefaultKeyPath replaced.
const (
	DefaultLegacyRoot  = "timelines"
	DefaultCurrentRoot = "js"
)

// DefaultExpectations holds the reference translations of the insert button.
var DefaultExpectations = map[string]string{
	"en":    "Insert Timeline",
	"zh_CN": "插入时间轴",
	"zh_TW": "插入時間軌",
	"ja":    "タイムラインを挿入",
	"es":    "Insertar línea de tiempo",
	"de":    "Zeitstrahl einfügen",
	"fr":    "Insérer une chronologie",
	"ru":    "Вставить временную шкалу",
	"ko":    "타임라인 삽입",
}

// DefaultConfig returns the built-in profile used when no config file exists.
func DefaultConfig() spec.Config {
	expectations := make(map[string]string, len(DefaultExpectations))
	for id, value := range DefaultExpectations {
		expectations[id] = value
	}
	unwrap := true
	return spec.Config{
		Version:          1,
		LocalesDir:       DefaultLocalesDir,
		UnwrapLocaleRoot: &unwrap,
		KeyPath:          append([]string(nil), DefaultKeyPath...),
		LegacyRoot:       DefaultLegacyRoot,
		CurrentRoot:      DefaultCurrentRoot,
		Expectations:     expectations,
	}
}
