package emitter_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedisam/pandocwatch/internal/emitter"
	"github.com/hedisam/pandocwatch/internal/ops"
)

func TestEmitter(t *testing.T) {
	t.Run("emit and receive", func(t *testing.T) {
		e := emitter.New(1)
		op := &ops.FileOp{Path: "notes.md", Op: ops.OpModified, Timestamp: time.Now()}
		err := e.Emit(context.Background(), op)
		require.NoError(t, err)
		assert.Equal(t, 1, e.Pending())

		select {
		case got := <-e.Chan():
			assert.Equal(t, op, got)
		case <-time.After(100 * time.Millisecond):
			t.Fatal("timed out waiting for notification on channel")
		}
	})

	t.Run("notifications keep their order", func(t *testing.T) {
		e := emitter.New(3)
		for _, path := range []string{"a.md", "b.md", "c.md"} {
			require.NoError(t, e.Emit(context.Background(), &ops.FileOp{Path: path}))
		}
		for _, path := range []string{"a.md", "b.md", "c.md"} {
			got := <-e.Chan()
			assert.Equal(t, path, got.Path)
		}
	})

	t.Run("emit after close", func(t *testing.T) {
		e := emitter.New(1)
		e.Close()
		err := e.Emit(context.Background(), &ops.FileOp{})
		require.ErrorIs(t, err, emitter.ErrClosed)
	})

	t.Run("emit context canceled", func(t *testing.T) {
		e := emitter.New(1)
		ctx, cancel := context.WithCancel(context.Background())
		// fill up the buffer so the next emit blocks
		err := e.Emit(ctx, &ops.FileOp{})
		require.NoError(t, err)
		cancel()
		err = e.Emit(ctx, &ops.FileOp{})
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("close unblocks pending emit", func(t *testing.T) {
		e := emitter.New(1)
		require.NoError(t, e.Emit(context.Background(), &ops.FileOp{}))

		errCh := make(chan error, 1)
		go func() {
			errCh <- e.Emit(context.Background(), &ops.FileOp{})
		}()

		time.Sleep(20 * time.Millisecond)
		e.Close()

		select {
		case err := <-errCh:
			require.ErrorIs(t, err, emitter.ErrClosed)
		case <-time.After(time.Second):
			t.Fatal("emit was not released by close")
		}
	})

	t.Run("close closes channel", func(t *testing.T) {
		e := emitter.New(1)
		e.Close()
		_, ok := <-e.Chan()
		assert.False(t, ok)
	})

	t.Run("queued notifications survive close", func(t *testing.T) {
		e := emitter.New(2)
		require.NoError(t, e.Emit(context.Background(), &ops.FileOp{Path: "a.md"}))
		require.NoError(t, e.Emit(context.Background(), &ops.FileOp{Path: "b.md"}))
		e.Close()

		var paths []string
		for op := range e.Chan() {
			paths = append(paths, op.Path)
		}
		assert.Equal(t, []string{"a.md", "b.md"}, paths)
	})

	t.Run("concurrent emit and close", func(t *testing.T) {
		e := emitter.New(1)
		errCh := make(chan error, 50)
		var wg sync.WaitGroup
		for range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errCh <- e.Emit(context.Background(), &ops.FileOp{Path: "a.md"})
			}()
		}

		e.Close()
		wg.Wait()
		close(errCh)

		for err := range errCh {
			if err != nil {
				assert.ErrorIs(t, err, emitter.ErrClosed)
			}
		}
		// at most one emit made it into the buffer and the channel is closed after it
		assert.LessOrEqual(t, e.Pending(), 1)
		for range e.Chan() {
		}
	})

	t.Run("close idempotent", func(t *testing.T) {
		e := emitter.New(1)
		e.Close()
		// second close should do nothing (no panic, channel remains closed)
		e.Close()
	})
}
