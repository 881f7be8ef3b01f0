package shutdown

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/amp-labs/amp-containers/logger"
	"github.com/stretchr/testify/assert"
)

func TestShutdownRunsHooksThenCancels(t *testing.T) {
	t.Parallel()

	ctx, h := SetupHandler(logger.WithMuted(t.Context(), true))
	defer h.Stop()

	var order []int

	var calls atomic.Int32

	h.BeforeShutdown(func() {
		assert.NoError(t, ctx.Err(), "context is alive while hooks run")
		order = append(order, 1)
		calls.Add(1)
	})
	h.BeforeShutdown(func() {
		order = append(order, 2)
		calls.Add(1)
	})

	select {
	case <-ctx.Done():
		t.Fatal("context should not be canceled initially")
	default:
	}

	h.Shutdown()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context was not canceled after shutdown")
	}

	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, []int{1, 2}, order)
}

func TestParentCancellation(t *testing.T) {
	t.Parallel()

	parent, cancel := context.WithCancel(t.Context())

	ctx, h := SetupHandler(parent)
	defer h.Stop()

	var called atomic.Bool

	h.BeforeShutdown(func() { called.Store(true) })

	cancel()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context was not canceled with its parent")
	}

	assert.False(t, called.Load(), "hooks only run on a signal")
}
