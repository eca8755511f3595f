package emitter

import (
	"context"
	"errors"
	"sync"

	"github.com/hedisam/pandocwatch/internal/ops"
)

var (
	ErrClosed = errors.New("emitter closed")
)

// Emitter is the bounded queue of filesystem notifications between the watcher loop and the dispatch pipeline.
// Notifications that arrive while a recompilation runs wait here until the dispatcher is free again.
type Emitter struct {
	ch chan *ops.FileOp

	// mu is held for reading by every Emit; Close takes it for writing before closing ch.
	mu     sync.RWMutex
	closed bool
	done   chan struct{}
	once   sync.Once
}

func New(size int) *Emitter {
	return &Emitter{
		ch:   make(chan *ops.FileOp, max(size, 1)),
		done: make(chan struct{}),
	}
}

// Emit blocks until the notification is queued, the context is canceled or the emitter is closed.
func (e *Emitter) Emit(ctx context.Context, op *ops.FileOp) error {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.closed {
		return ErrClosed
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-e.done:
		return ErrClosed
	case e.ch <- op:
		return nil
	}
}

func (e *Emitter) Chan() <-chan *ops.FileOp {
	return e.ch
}

// Pending returns the number of queued notifications.
func (e *Emitter) Pending() int {
	return len(e.ch)
}

// Close releases blocked Emit calls and closes the channel. Notifications already queued can still be received.
func (e *Emitter) Close() {
	e.once.Do(func() {
		close(e.done)

		e.mu.Lock()
		defer e.mu.Unlock()
		e.closed = true
		close(e.ch)
	})
}
