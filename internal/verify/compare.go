package verify

import (
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// Expectations maps a document identifier to the expected leaf value.
type Expectations map[string]string

// Lookup returns the expected value for id, if one is registered.
func (e Expectations) Lookup(id string) (string, bool) {
	if e == nil {
		return "", false
	}
	value, ok := e[id]
	return value, ok
}

// IDs returns the identifiers with a registered expectation.
func (e Expectations) IDs() []string {
	ids := make([]string, 0, len(e))
	for id := range e {
		ids = append(ids, id)
	}
	return ids
}

// Compare reports a ValueMismatch warning when actual differs from the
// expectation registered for id. Equality is byte exact.
func Compare(id, actual string, expectations Expectations) *Finding {
	expected, ok := expectations.Lookup(id)
	if !ok || actual == expected {
		return nil
	}
	message := fmt.Sprintf("translation %q differs from expected %q", actual, expected)
	if norm.NFC.String(actual) == norm.NFC.String(expected) {
		message += " (Unicode normalization differs only)"
	}
	return &Finding{
		Document: id,
		Kind:     KindValueMismatch,
		Message:  message,
	}
}
