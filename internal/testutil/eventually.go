package testutil

import (
	"testing"
	"time"
)

// PollInterval is how often Eventually re-checks its condition.
const PollInterval = 20 * time.Millisecond

// Eventually polls fn until it returns true, failing the test with the
// formatted message once DefaultTimeout elapses.
func Eventually(t testing.TB, fn func() bool, format string, args ...any) {
	t.Helper()
	deadline := time.After(budget(t, DefaultTimeout))
	ticker := time.NewTicker(PollInterval)
	defer ticker.Stop()
	for {
		if fn() {
			return
		}
		select {
		case <-deadline:
			t.Fatalf(format, args...)
		case <-ticker.C:
		}
	}
}
