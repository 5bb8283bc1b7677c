package notifications_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wintryx/progressmaker/pkg/notifications"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := notifications.NewMemoryStore()
	opts := notifications.NewOptions("Saved!", notifications.TypeSuccess)

	require.NoError(t, store.Save(ctx, "t1", opts))
	assert.ErrorIs(t, store.Save(ctx, "t1", opts), notifications.ErrTicketExists)
	assert.Equal(t, 1, store.Len())

	got, err := store.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, opts, got)

	got, err = store.Take(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, opts, got)

	_, err = store.Take(ctx, "t1")
	assert.ErrorIs(t, err, notifications.ErrTicketNotFound)
	_, err = store.Get(ctx, "t1")
	assert.ErrorIs(t, err, notifications.ErrTicketNotFound)

	require.NoError(t, store.Save(ctx, "t2", opts))
	require.NoError(t, store.Delete(ctx, "t2"))
	require.NoError(t, store.Delete(ctx, "t2"))
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStore_ConcurrentTakeConsumesOnce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := notifications.NewMemoryStore()
	require.NoError(t, store.Save(ctx, "shared", notifications.NewOptions("once", notifications.TypeSuccess)))

	var (
		wg   sync.WaitGroup
		wins atomic.Int32
	)
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.Take(ctx, "shared"); err == nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}

func TestMemoryStore_ConcurrentWriters(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := notifications.NewMemoryStore()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("t-%d", n)
			_ = store.Save(ctx, id, notifications.NewOptions(id, notifications.TypeInfo))
			_, _ = store.Get(ctx, id)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, store.Len())
}
