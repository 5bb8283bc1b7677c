package notifications_test

import (
	"context"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wintryx/progressmaker/pkg/config"
	"github.com/wintryx/progressmaker/pkg/notifications"
)

func TestNotificationsConfig_Defaults(t *testing.T) {
	var cfg notifications.Config
	require.NoError(t, config.Parse(&cfg))

	assert.False(t, cfg.AlwaysAnnounceSuccess)
	assert.Equal(t, notifications.StoreMemory, cfg.Store)
	assert.Equal(t, notifications.DefaultRedisPrefix, cfg.RedisPrefix)
	assert.Equal(t, 16, cfg.StreamBuffer)
}

func TestNotificationsConfig_FromEnv(t *testing.T) {
	t.Setenv("NOTIFY_ALWAYS_ANNOUNCE_SUCCESS", "true")
	t.Setenv("NOTIFY_STORE", "redis")

	var cfg notifications.Config
	require.NoError(t, config.Parse(&cfg))
	assert.True(t, cfg.AlwaysAnnounceSuccess)
	assert.Equal(t, notifications.StoreRedis, cfg.Store)
}

func TestNewStore(t *testing.T) {
	t.Parallel()

	store, err := notifications.NewStore(notifications.Config{}, nil)
	require.NoError(t, err)
	assert.IsType(t, &notifications.MemoryStore{}, store)

	_, err = notifications.NewStore(notifications.Config{Store: notifications.StoreRedis}, nil)
	assert.ErrorIs(t, err, notifications.ErrStoreUnavailable)

	client := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:1"})
	defer client.Close()
	store, err = notifications.NewStore(notifications.Config{Store: notifications.StoreRedis}, client)
	require.NoError(t, err)
	assert.IsType(t, &notifications.RedisStore{}, store)

	_, err = notifications.NewStore(notifications.Config{Store: "etcd"}, nil)
	assert.ErrorIs(t, err, notifications.ErrUnknownStore)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	p := &MockPresenter{}
	p.On("Present", mock.Anything, notifications.DefaultSuccessNotification()).Return(nil).Once()

	svc := notifications.NewFromConfig(notifications.Config{AlwaysAnnounceSuccess: true}, p, notifications.WithLogger(nil))
	svc.NotifySuccess(context.Background(), "", "", 0)

	p.AssertExpectations(t)
}
