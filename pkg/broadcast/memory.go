package broadcast

import (
	"context"
	"sync"
)

// MemoryBroadcaster is an in-process Broadcaster. Subscribers whose buffer
// is full are dropped instead of slowing down the sender.
type MemoryBroadcaster[T any] struct {
	mu          sync.RWMutex
	subscribers map[*subscriber[T]]struct{}
	buffer      int
	closed      bool
}

// NewMemoryBroadcaster creates a broadcaster giving each subscriber a
// channel buffer of the given size (at least 1).
func NewMemoryBroadcaster[T any](buffer int) *MemoryBroadcaster[T] {
	return &MemoryBroadcaster[T]{
		subscribers: make(map[*subscriber[T]]struct{}),
		buffer:      max(buffer, 1),
	}
}

// Subscribe registers a subscriber that is removed when ctx is done.
// After Close it returns an already-closed subscriber.
func (b *MemoryBroadcaster[T]) Subscribe(ctx context.Context) Subscriber[T] {
	sub := newSubscriber[T](b.buffer)

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		_ = sub.Close()
		return sub
	}
	b.subscribers[sub] = struct{}{}

	if done := ctx.Done(); done != nil {
		go func() {
			<-done
			b.remove(sub)
		}()
	}
	return sub
}

// Broadcast delivers msg to every subscriber. Subscribers that cannot take
// the message are removed.
func (b *MemoryBroadcaster[T]) Broadcast(_ context.Context, msg Message[T]) error {
	b.mu.RLock()
	var dropped []*subscriber[T]
	if !b.closed {
		for sub := range b.subscribers {
			if !sub.offer(msg) {
				dropped = append(dropped, sub)
			}
		}
	}
	b.mu.RUnlock()

	for _, sub := range dropped {
		b.remove(sub)
	}
	return nil
}

// Len returns the number of active subscribers.
func (b *MemoryBroadcaster[T]) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Close closes all subscribers. Safe to call more than once.
func (b *MemoryBroadcaster[T]) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	for sub := range b.subscribers {
		_ = sub.Close()
	}
	clear(b.subscribers)
	b.mu.Unlock()
	return nil
}

func (b *MemoryBroadcaster[T]) remove(sub *subscriber[T]) {
	b.mu.Lock()
	delete(b.subscribers, sub)
	b.mu.Unlock()
	_ = sub.Close()
}
