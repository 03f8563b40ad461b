// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds waits in unit tests.
const DefaultTimeout = 5 * time.Second

// Context returns a context cancelled after timeout (DefaultTimeout when
// zero) or shortly before the test deadline, whichever comes first.
func Context(t testing.TB, timeout time.Duration) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), budget(t, timeout))
	t.Cleanup(cancel)
	return ctx
}

func budget(t testing.TB, timeout time.Duration) time.Duration {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	type deadliner interface {
		Deadline() (time.Time, bool)
	}
	if d, ok := t.(deadliner); ok {
		if deadline, ok := d.Deadline(); ok {
			if remaining := time.Until(deadline) - time.Second; remaining > 0 && remaining < timeout {
				return remaining
			}
		}
	}
	return timeout
}
