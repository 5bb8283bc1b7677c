package dashboard_test

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wintryx/progressmaker/pkg/apiclient"
	"github.com/wintryx/progressmaker/pkg/apierror"
	"github.com/wintryx/progressmaker/pkg/dashboard"
	"github.com/wintryx/progressmaker/pkg/logger"
	"github.com/wintryx/progressmaker/pkg/mockapi"
	"github.com/wintryx/progressmaker/pkg/notifications"
)

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

type fixture struct {
	client *dashboard.Client
	svc    *notifications.Service
	rec    *recorder
	hits   *atomic.Int32
}

// setup wires a dashboard client to the mock backend. wrap, when set,
// decorates the backend handler.
func setup(t *testing.T, wrap func(http.Handler) http.Handler) fixture {
	t.Helper()

	api, err := mockapi.New(mockapi.WithLatency(0), mockapi.WithLogger(logger.Discard()))
	require.NoError(t, err)

	hits := &atomic.Int32{}
	var h http.Handler = api.Handler()
	if wrap != nil {
		h = wrap(h)
	}
	counted := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/dashboard/items" {
			hits.Add(1)
		}
		h.ServeHTTP(w, r)
	})

	rec := &recorder{}
	svc := notifications.NewService(rec, notifications.WithLogger(logger.Discard()))
	httpClient := svc.Client(notifications.WithBase(mockapi.Transport(counted)))
	client := dashboard.New(apiclient.New("http://mock.local/api", httpClient), svc,
		dashboard.WithLogger(logger.Discard()),
	)
	return fixture{client: client, svc: svc, rec: rec, hits: hits}
}

func TestLoad_WithTicket(t *testing.T) {
	t.Parallel()

	f := setup(t, nil)
	ctx := context.Background()

	id, err := f.svc.RegisterTicket(ctx, notifications.NewOptions("Items ready", notifications.TypeInfo))
	require.NoError(t, err)

	items, err := f.client.Load(ctx, id)
	require.NoError(t, err)
	assert.Len(t, items, 20)

	state := f.client.State()
	assert.True(t, state.Loaded)
	assert.False(t, state.Loading)
	assert.Empty(t, state.Error)
	assert.Len(t, state.Items, 20)

	shown := f.rec.all()
	require.Len(t, shown, 1)
	assert.Equal(t, "Items ready", shown[0].Message)
	assert.Equal(t, notifications.TypeInfo, shown[0].Type)
}

func TestLoad_WithoutTicketIsSilent(t *testing.T) {
	t.Parallel()

	f := setup(t, nil)

	_, err := f.client.Load(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, f.rec.all())
}

func TestRefresh(t *testing.T) {
	t.Parallel()

	f := setup(t, nil)

	_, err := f.client.Refresh(context.Background())
	require.NoError(t, err)

	shown := f.rec.all()
	require.Len(t, shown, 1)
	assert.Equal(t, dashboard.RefreshedMessage, shown[0].Message)
	assert.Equal(t, notifications.TypeSuccess, shown[0].Type)
	assert.True(t, shown[0].ClearExisting)
}

func TestLoadUnauthorized(t *testing.T) {
	t.Parallel()

	f := setup(t, nil)

	_, err := f.client.LoadUnauthorized(context.Background())
	require.ErrorIs(t, err, dashboard.ErrLoadItems)

	n := apierror.Normalize(err, "")
	assert.True(t, n.Unauthorized())
	assert.Equal(t, apierror.CodeDashboardUnauthorized, n.Code)

	assert.Equal(t, mockapi.SessionExpiredMessage, f.client.State().Error)

	shown := f.rec.all()
	require.Len(t, shown, 1)
	assert.Equal(t, notifications.TypeError, shown[0].Type)
	assert.Equal(t, mockapi.SessionExpiredMessage, shown[0].Message)
}

func TestTriggerError(t *testing.T) {
	t.Parallel()

	f := setup(t, nil)

	err := f.client.TriggerError(context.Background())
	require.Error(t, err)

	shown := f.rec.all()
	require.Len(t, shown, 1)
	assert.Equal(t, notifications.TypeError, shown[0].Type)
	assert.Equal(t, mockapi.SimulatedErrorMessage, shown[0].Message)
	assert.Equal(t, notifications.DefaultActionLabel, shown[0].ActionLabel)
}

func TestItem(t *testing.T) {
	t.Parallel()

	f := setup(t, nil)

	item, err := f.client.Item(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "3", item.ID)
	assert.Equal(t, dashboard.StatusDone, item.Status)
	assert.True(t, item.Done())

	_, err = f.client.Item(context.Background(), "999")
	assert.ErrorIs(t, err, dashboard.ErrLoadItem)
}

func TestEnsureLoaded_FetchesOnce(t *testing.T) {
	t.Parallel()

	f := setup(t, nil)
	ctx := context.Background()

	first, err := f.client.EnsureLoaded(ctx)
	require.NoError(t, err)
	second, err := f.client.EnsureLoaded(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), f.hits.Load())
}

func TestLoad_ConcurrentCallersShareRequest(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	f := setup(t, func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
			next.ServeHTTP(w, r)
		})
	})
	ctx := context.Background()

	first, err := f.svc.RegisterTicket(ctx, notifications.NewOptions("first", notifications.TypeSuccess))
	require.NoError(t, err)
	second, err := f.svc.RegisterTicket(ctx, notifications.NewOptions("second", notifications.TypeSuccess))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for _, id := range []string{first, second} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.client.Load(ctx, id)
			assert.NoError(t, err)
		}()
	}

	require.Eventually(t, func() bool { return f.hits.Load() == 1 }, time.Second, time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), f.hits.Load())

	messages := make([]string, 0, 2)
	for _, o := range f.rec.all() {
		messages = append(messages, o.Message)
	}
	assert.ElementsMatch(t, []string{"first", "second"}, messages)
}

func TestLoad_CancelledLeaderDoesNotStrandFollower(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	f := setup(t, func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
			next.ServeHTTP(w, r)
		})
	})
	ctx := context.Background()

	leaderTicket, err := f.svc.RegisterTicket(ctx, notifications.NewOptions("leader", notifications.TypeSuccess))
	require.NoError(t, err)
	followerTicket, err := f.svc.RegisterTicket(ctx, notifications.NewOptions("follower", notifications.TypeSuccess))
	require.NoError(t, err)

	leaderCtx, cancel := context.WithCancel(ctx)
	leaderDone := make(chan error, 1)
	go func() {
		_, err := f.client.Load(leaderCtx, leaderTicket)
		leaderDone <- err
	}()
	require.Eventually(t, func() bool { return f.hits.Load() == 1 }, time.Second, time.Millisecond)

	followerDone := make(chan error, 1)
	go func() {
		_, err := f.client.Load(ctx, followerTicket)
		followerDone <- err
	}()
	time.Sleep(50 * time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-leaderDone, context.Canceled)

	close(release)
	require.NoError(t, <-followerDone)
	assert.Equal(t, int32(1), f.hits.Load())

	shown := f.rec.all()
	require.Len(t, shown, 1)
	assert.Equal(t, "follower", shown[0].Message)

	_, ok := f.svc.Lookup(ctx, leaderTicket)
	assert.True(t, ok, "a cancelled caller keeps its ticket")
	assert.True(t, f.client.State().Loaded)
}
