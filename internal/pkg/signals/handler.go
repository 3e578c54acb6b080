// Package signals cancels a context when the process is asked to stop, so
// long-running commands like a --wait poll exit cleanly on Ctrl-C.
package signals

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/logger"
)

// SetupHandler cancels the given context on SIGINT, SIGTERM, or SIGHUP.
// The returned cleanup function detaches the handler; call it once the
// command no longer needs signal-driven cancellation.
func SetupHandler(ctx context.Context, cancel context.CancelFunc) (cleanup func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		select {
		case sig := <-sigCh:
			logger.Debug("Received signal, cancelling", "signal", sig.String())
			cancel()
		case <-ctx.Done():
			// Context already cancelled, nothing to do
		}
	}()

	return func() {
		signal.Stop(sigCh)
		close(sigCh)
	}
}
