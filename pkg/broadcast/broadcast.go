package broadcast

import (
	"context"
	"sync"
)

// Message wraps a broadcast payload.
type Message[T any] struct {
	Data T
}

// Subscriber receives messages from a Broadcaster.
type Subscriber[T any] interface {
	// Receive returns the delivery channel. It is closed once the
	// subscription ends.
	Receive() <-chan Message[T]

	// Close ends the subscription. Safe to call more than once.
	Close() error
}

// Broadcaster fans messages out to every active subscriber.
type Broadcaster[T any] interface {
	// Subscribe registers a subscriber for the lifetime of ctx.
	Subscribe(ctx context.Context) Subscriber[T]

	// Broadcast delivers msg to all subscribers without blocking.
	Broadcast(ctx context.Context, msg Message[T]) error

	// Close ends every subscription and rejects new ones.
	Close() error
}

type subscriber[T any] struct {
	mu     sync.RWMutex
	ch     chan Message[T]
	closed bool
}

func newSubscriber[T any](buffer int) *subscriber[T] {
	return &subscriber[T]{ch: make(chan Message[T], buffer)}
}

func (s *subscriber[T]) Receive() <-chan Message[T] {
	return s.ch
}

func (s *subscriber[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.closed = true
		close(s.ch)
	}
	return nil
}

// offer tries a non-blocking send and reports whether it was delivered.
func (s *subscriber[T]) offer(msg Message[T]) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false
	}
	select {
	case s.ch <- msg:
		return true
	default:
		return false
	}
}
