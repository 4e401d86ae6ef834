package testutil

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/specialistvlad/paramgrid/internal/ctxlog"
)

// NewTestContext returns a context carrying a debug logger. Output is
// discarded unless PARAMGRID_TEST_LOGS=true, in which case it is written to
// the test log when the test ends.
func NewTestContext(t *testing.T) context.Context {
	t.Helper()
	ctx, buf := NewCapturingContext(t)
	t.Cleanup(func() {
		if os.Getenv("PARAMGRID_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), buf.String())
		}
	})
	return ctx
}

// NewCapturingContext returns a context whose logger writes text records to
// the returned buffer.
func NewCapturingContext(t *testing.T) (context.Context, *SafeBuffer) {
	t.Helper()
	buf := &SafeBuffer{}
	return ctxlog.WithLogger(context.Background(), NewLogger(buf)), buf
}

// NewLogger builds a debug-level text logger writing to w.
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
