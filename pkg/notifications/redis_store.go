package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const DefaultRedisPrefix = "notify:ticket:"

// RedisStore keeps tickets in Redis so several processes can resolve
// tickets registered by each other. Take relies on GETDEL for atomicity.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

type RedisStoreOption func(*RedisStore)

func WithRedisPrefix(prefix string) RedisStoreOption {
	return func(s *RedisStore) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// WithRedisTTL expires unresolved tickets after ttl. Zero keeps them until
// they are consumed or cleared.
func WithRedisTTL(ttl time.Duration) RedisStoreOption {
	return func(s *RedisStore) {
		s.ttl = max(ttl, 0)
	}
}

func NewRedisStore(client redis.UniversalClient, opts ...RedisStoreOption) *RedisStore {
	s := &RedisStore{client: client, prefix: DefaultRedisPrefix}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) key(id string) string {
	return s.prefix + id
}

func (s *RedisStore) Save(ctx context.Context, id string, opts Options) error {
	data, err := json.Marshal(opts)
	if err != nil {
		return errors.Join(ErrInvalidTicket, err)
	}
	ok, err := s.client.SetNX(ctx, s.key(id), data, s.ttl).Result()
	if err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	if !ok {
		return ErrTicketExists
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (Options, error) {
	return s.decode(s.client.Get(ctx, s.key(id)).Bytes())
}

func (s *RedisStore) Take(ctx context.Context, id string) (Options, error) {
	return s.decode(s.client.GetDel(ctx, s.key(id)).Bytes())
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

func (s *RedisStore) decode(data []byte, err error) (Options, error) {
	if errors.Is(err, redis.Nil) {
		return Options{}, ErrTicketNotFound
	}
	if err != nil {
		return Options{}, errors.Join(ErrStoreUnavailable, err)
	}
	var opts Options
	if err := json.Unmarshal(data, &opts); err != nil {
		return Options{}, errors.Join(ErrInvalidTicket, err)
	}
	return opts, nil
}
