package notifications

import (
	"context"
	"maps"
	"sync"
	"sync/atomic"
)

// MemoryStore is an in-process Store. Every write publishes a fresh copy of
// the map, so readers never see a partially applied update and never lock.
type MemoryStore struct {
	mu      sync.Mutex
	tickets atomic.Pointer[map[string]Options]
}

func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{}
	empty := make(map[string]Options)
	s.tickets.Store(&empty)
	return s
}

func (s *MemoryStore) snapshot() map[string]Options {
	return *s.tickets.Load()
}

func (s *MemoryStore) Save(_ context.Context, id string, opts Options) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.snapshot()
	if _, ok := current[id]; ok {
		return ErrTicketExists
	}
	next := maps.Clone(current)
	next[id] = opts
	s.tickets.Store(&next)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (Options, error) {
	opts, ok := s.snapshot()[id]
	if !ok {
		return Options{}, ErrTicketNotFound
	}
	return opts, nil
}

func (s *MemoryStore) Take(_ context.Context, id string) (Options, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.snapshot()
	opts, ok := current[id]
	if !ok {
		return Options{}, ErrTicketNotFound
	}
	s.publishWithout(current, id)
	return opts, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.snapshot()
	if _, ok := current[id]; ok {
		s.publishWithout(current, id)
	}
	return nil
}

// Len returns the number of registered tickets.
func (s *MemoryStore) Len() int {
	return len(s.snapshot())
}

// publishWithout must be called with mu held.
func (s *MemoryStore) publishWithout(current map[string]Options, id string) {
	next := maps.Clone(current)
	delete(next, id)
	s.tickets.Store(&next)
}
