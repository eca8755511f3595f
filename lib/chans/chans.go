package chans

import (
	"context"
)

// ReceiveOrDone attempts to receive a message of type T from the given channel.
// It blocks until one of the following occurs:
// 1. A message is received from the channel (returns the message and true)
// 2. The channel is closed (returns the zero value of T and false)
// 3. The provided context is canceled (returns the zero value of T and false)
// A canceled context wins over messages that are still buffered in the channel.
func ReceiveOrDone[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var zero T
	if ctx.Err() != nil {
		return zero, false
	}

	select {
	case <-ctx.Done():
		return zero, false
	case data, ok := <-ch:
		return data, ok
	}
}
