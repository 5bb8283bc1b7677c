package notifications

import (
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config is the environment-driven configuration of the notification service.
type Config struct {
	AlwaysAnnounceSuccess bool          `env:"NOTIFY_ALWAYS_ANNOUNCE_SUCCESS" envDefault:"false"`
	Store                 string        `env:"NOTIFY_STORE" envDefault:"memory"`
	RedisPrefix           string        `env:"NOTIFY_REDIS_PREFIX" envDefault:"notify:ticket:"`
	RedisTTL              time.Duration `env:"NOTIFY_REDIS_TTL" envDefault:"0s"`
	StreamBuffer          int           `env:"NOTIFY_STREAM_BUFFER" envDefault:"16"`
}

// NewStore builds the store selected by cfg.Store. The Redis client is only
// required for the redis store.
func NewStore(cfg Config, client redis.UniversalClient) (Store, error) {
	switch cfg.Store {
	case "", StoreMemory:
		return NewMemoryStore(), nil
	case StoreRedis:
		if client == nil {
			return nil, errors.Join(ErrStoreUnavailable, errors.New("redis store selected without a client"))
		}
		return NewRedisStore(client, WithRedisPrefix(cfg.RedisPrefix), WithRedisTTL(cfg.RedisTTL)), nil
	default:
		return nil, errors.Join(ErrUnknownStore, fmt.Errorf("store %q", cfg.Store))
	}
}

// NewFromConfig creates a Service honoring cfg. Options passed explicitly
// are applied after the configured ones.
func NewFromConfig(cfg Config, presenter Presenter, opts ...ServiceOption) *Service {
	all := append([]ServiceOption{WithAlwaysAnnounceSuccess(cfg.AlwaysAnnounceSuccess)}, opts...)
	return NewService(presenter, all...)
}
