package xcmd

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignalContext(t *testing.T) {
	t.Run("canceled by signal", func(t *testing.T) {
		ctx, cancel := SignalContext(context.Background(), syscall.SIGUSR1)
		defer cancel()

		proc, err := os.FindProcess(os.Getpid())
		require.NoError(t, err)
		require.NoError(t, proc.Signal(syscall.SIGUSR1))

		select {
		case <-ctx.Done():
			assert.Contains(t, context.Cause(ctx).Error(), "user defined signal 1")
		case <-time.After(time.Second):
			t.Fatal("timeout waiting for signal")
		}
	})

	t.Run("cancel func", func(t *testing.T) {
		ctx, cancel := SignalContext(context.Background())
		cancel()

		<-ctx.Done()
		assert.ErrorIs(t, context.Cause(ctx), context.Canceled)
	})

	t.Run("parent cancellation", func(t *testing.T) {
		parent, parentCancel := context.WithCancel(context.Background())
		ctx, cancel := SignalContext(parent, syscall.SIGUSR2)
		defer cancel()

		parentCancel()

		select {
		case <-ctx.Done():
			assert.ErrorIs(t, ctx.Err(), context.Canceled)
		case <-time.After(time.Second):
			t.Fatal("context not canceled")
		}
	})
}
