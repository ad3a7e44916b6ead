// Package testutil provides helpers shared by tests.
package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/m-mizutani/reposcore/pkg/utils/logging"
)

// GetEnvOrSkip returns the value of the environment variable. If not set, skip the test.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s is not set, skipping test that requires it", key)
	}
	return value
}

// Context returns a context whose clock is fixed at now, so that repository scores are
// deterministic.
func Context(now time.Time) context.Context {
	return logging.CtxWithTime(context.Background(), func() time.Time { return now })
}
