package notifications_test

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/wintryx/progressmaker/pkg/notifications"
)

// MockPresenter for testing Service
type MockPresenter struct {
	mock.Mock
}

func (m *MockPresenter) Present(ctx context.Context, opts notifications.Options) error {
	args := m.Called(ctx, opts)
	return args.Error(0)
}

// MockStore for testing Service against failing stores
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Save(ctx context.Context, id string, opts notifications.Options) error {
	args := m.Called(ctx, id, opts)
	return args.Error(0)
}

func (m *MockStore) Get(ctx context.Context, id string) (notifications.Options, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(notifications.Options), args.Error(1)
}

func (m *MockStore) Take(ctx context.Context, id string) (notifications.Options, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(notifications.Options), args.Error(1)
}

func (m *MockStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// recorder collects presented notifications and is safe for concurrent use.
type recorder struct {
	mu    sync.Mutex
	shown []notifications.Options
}

func (r *recorder) Present(_ context.Context, opts notifications.Options) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shown = append(r.shown, opts)
	return nil
}

func (r *recorder) all() []notifications.Options {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notifications.Options(nil), r.shown...)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.shown)
}
