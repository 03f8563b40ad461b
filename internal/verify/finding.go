package verify

import (
	"fmt"
	"strings"
)

// Kind identifies the condition a Finding reports.
type Kind string

const (
	KindParseError      Kind = "parse_error"
	KindEncodingError   Kind = "encoding_error"
	KindMissingKey      Kind = "missing_key"
	KindTypeMismatch    Kind = "type_mismatch"
	KindValueMismatch   Kind = "value_mismatch"
	KindLegacyStructure Kind = "legacy_structure"
	KindMissingLocale   Kind = "missing_locale"
)

// Severity partitions findings into errors and warnings.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Severity returns the fixed severity of a finding kind. Only structural
// problems are errors; content drift and migration hints are warnings.
func (k Kind) Severity() Severity {
	switch k {
	case KindParseError, KindEncodingError, KindMissingKey, KindTypeMismatch:
		return SeverityError
	default:
		return SeverityWarning
	}
}

// Finding is one detected condition tied to a document.
type Finding struct {
	Document string `json:"document"`
	Kind     Kind   `json:"kind"`
	Key      string `json:"key,omitempty"`
	Message  string `json:"message"`
}

// Severity returns the severity of the finding's kind.
func (f Finding) Severity() Severity {
	return f.Kind.Severity()
}

// IsError reports whether the finding fails the run.
func (f Finding) IsError() bool {
	return f.Severity() == SeverityError
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s", f.Document, f.Message)
}

// KeyPath is an ordered list of mapping keys locating a leaf.
type KeyPath []string

// ParseKeyPath splits a dotted path such as "js.timelines.insert_button".
func ParseKeyPath(value string) KeyPath {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return KeyPath(strings.Split(value, "."))
}

func (p KeyPath) String() string {
	return strings.Join(p, ".")
}
