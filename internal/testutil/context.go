package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds tests that drive a runner loop.
const DefaultTimeout = 5 * time.Second

// Context returns a context for a runner under test. It is cancelled after
// timeout (DefaultTimeout when zero), one second before the test binary's
// own deadline, or at cleanup.
func Context(t *testing.T, timeout time.Duration) context.Context {
	t.Helper()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	deadline := time.Now().Add(timeout)
	if testDeadline, ok := t.Deadline(); ok {
		if margin := testDeadline.Add(-time.Second); margin.After(time.Now()) && margin.Before(deadline) {
			deadline = margin
		}
	}
	ctx, cancel := context.WithDeadline(context.Background(), deadline)
	t.Cleanup(cancel)
	return ctx
}
