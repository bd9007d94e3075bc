package credentials

import (
	"context"

	"github.com/redis/go-redis/v9"

	"stocklink-lite/internal/domain"
)

const redisPrefix = "credentials:"

// RedisStore keeps the token pair in Redis for headless deployments.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore connects to Redis at url (redis://...).
func NewRedisStore(url string) (*RedisStore, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, &StorageError{Op: "open", Err: err}
	}
	return &RedisStore{rdb: redis.NewClient(opt)}, nil
}

// NewRedisStoreWithClient wraps an existing client. Tests pass a miniredis
// client here.
func NewRedisStoreWithClient(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Get(ctx context.Context) (domain.Session, error) {
	vals, err := s.rdb.MGet(ctx, redisPrefix+keyAccessToken, redisPrefix+keyRefreshToken).Result()
	if err != nil {
		return domain.Session{}, &StorageError{Op: "get", Err: err}
	}
	var out domain.Session
	if v, ok := vals[0].(string); ok {
		out.AccessToken = v
	}
	if v, ok := vals[1].(string); ok {
		out.RefreshToken = v
	}
	return out, nil
}

// Set writes both keys inside one MULTI/EXEC so the pair is never half-set.
func (s *RedisStore) Set(ctx context.Context, sess domain.Session) error {
	_, err := s.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, redisPrefix+keyAccessToken, sess.AccessToken, 0)
		p.Set(ctx, redisPrefix+keyRefreshToken, sess.RefreshToken, 0)
		return nil
	})
	if err != nil {
		return &StorageError{Op: "set", Err: err}
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.rdb.Del(ctx, redisPrefix+keyAccessToken, redisPrefix+keyRefreshToken).Err(); err != nil {
		return &StorageError{Op: "clear", Err: err}
	}
	return nil
}
