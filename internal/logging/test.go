package logging

import (
	"testing"

	"github.com/rs/zerolog"
)

// NewTestLogger routes log output through the test harness.
func NewTestLogger(t testing.TB, level string) Logger {
	t.Helper()

	l, err := NewLogger(zerolog.NewTestWriter(t), level, false)
	if err != nil {
		t.Fatal(err)
	}
	return l
}
