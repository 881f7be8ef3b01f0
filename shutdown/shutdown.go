// Package shutdown turns SIGINT and SIGTERM into context cancellation, running
// registered hooks first.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/amp-labs/amp-containers/logger"
)

// Handler cancels its context on the first signal it receives, after
// running the hooks registered with BeforeShutdown.
type Handler struct {
	mut     sync.Mutex
	hooks   []func()
	signals chan os.Signal
	done    bool
}

// SetupHandler starts listening for SIGINT and SIGTERM. The returned context
// is cancelled when a signal arrives or when Shutdown is called. Call Stop to
// release the signal subscription.
func SetupHandler(parent context.Context) (context.Context, *Handler) {
	h := &Handler{signals: make(chan os.Signal, 1)}
	signal.Notify(h.signals, syscall.SIGINT, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(parent)

	go func() {
		defer cancel()

		select {
		case sig, ok := <-h.signals:
			if ok {
				logger.Get(ctx).Warn("Received " + sig.String() + ", shutting down...")
				h.cleanup()
			}
		case <-ctx.Done():
		}
	}()

	return ctx, h
}

// BeforeShutdown registers a hook. Hooks run in registration order while the
// context is still alive.
func (h *Handler) BeforeShutdown(hook func()) {
	h.mut.Lock()
	defer h.mut.Unlock()

	h.hooks = append(h.hooks, hook)
}

// Shutdown starts the shutdown as if a signal had been received.
func (h *Handler) Shutdown() {
	select {
	case h.signals <- os.Interrupt:
	default:
	}
}

// Stop unsubscribes from signals. Hooks are not run.
func (h *Handler) Stop() {
	signal.Stop(h.signals)
}

func (h *Handler) cleanup() {
	h.mut.Lock()
	defer h.mut.Unlock()

	if h.done {
		return
	}

	h.done = true

	for _, hook := range h.hooks {
		hook()
	}

	h.hooks = nil
}
