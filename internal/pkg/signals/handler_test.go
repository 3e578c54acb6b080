package signals

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupHandlerCancelsContextOnSignal(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cleanup := SetupHandler(ctx, cancel)
	defer cleanup()

	proc, err := os.FindProcess(os.Getpid())
	require.NoError(t, err)

	err = proc.Signal(syscall.SIGTERM)
	require.NoError(t, err)

	select {
	case <-ctx.Done():
	case <-time.After(1 * time.Second):
		t.Fatal("context was not cancelled after signal")
	}
}

func TestSetupHandlerCleanupAfterContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	cleanup := SetupHandler(ctx, cancel)

	cancel()
	time.Sleep(100 * time.Millisecond)

	// Cleanup must be safe once the watcher goroutine has exited.
	cleanup()
	assert.Error(t, ctx.Err())
}
