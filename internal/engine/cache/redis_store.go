package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	customerrors "github.com/matthew11k/outreach/internal/domain/errors"
)

// RedisStore is a TTL key-value store namespaced by bot identity.
type RedisStore struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

func NewRedisStore(ctx context.Context, redisURL, password string, db int, prefix string, logger *slog.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("ошибка при подключении к Redis: %w", err)
	}

	logger.Info("Соединение с Redis успешно установлено")

	return &RedisStore{
		client: client,
		prefix: prefix,
		logger: logger,
	}, nil
}

// Scoped returns a store whose keys live under <prefix>:<ownerID>.
func (s *RedisStore) Scoped(ownerID int64) *RedisStore {
	return &RedisStore{
		client: s.client,
		prefix: s.prefix + ":" + strconv.FormatInt(ownerID, 10),
		logger: s.logger,
	}
}

func (s *RedisStore) key(name string) string {
	return s.prefix + ":" + name
}

// Get returns the raw value and false when the key does not exist.
func (s *RedisStore) Get(ctx context.Context, name string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, s.key(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}

		return nil, false, &customerrors.ErrCache{Operation: "get", Key: name, Cause: err}
	}

	return data, true, nil
}

// Set stores the value; ttl 0 means no expiry.
func (s *RedisStore) Set(ctx context.Context, name string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(name), value, ttl).Err(); err != nil {
		return &customerrors.ErrCache{Operation: "set", Key: name, Cause: err}
	}

	return nil
}

func (s *RedisStore) Del(ctx context.Context, names ...string) error {
	keys := make([]string, 0, len(names))
	for _, name := range names {
		keys = append(keys, s.key(name))
	}

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return &customerrors.ErrCache{Operation: "del", Key: fmt.Sprint(names), Cause: err}
	}

	return nil
}

func (s *RedisStore) Incr(ctx context.Context, name string) (int64, error) {
	v, err := s.client.Incr(ctx, s.key(name)).Result()
	if err != nil {
		return 0, &customerrors.ErrCache{Operation: "incr", Key: name, Cause: err}
	}

	return v, nil
}

func (s *RedisStore) Decr(ctx context.Context, name string) (int64, error) {
	v, err := s.client.Decr(ctx, s.key(name)).Result()
	if err != nil {
		return 0, &customerrors.ErrCache{Operation: "decr", Key: name, Cause: err}
	}

	return v, nil
}

func (s *RedisStore) Expire(ctx context.Context, name string, ttl time.Duration) error {
	if err := s.client.Expire(ctx, s.key(name), ttl).Err(); err != nil {
		return &customerrors.ErrCache{Operation: "expire", Key: name, Cause: err}
	}

	return nil
}

// TTL returns -1s for a key without expiry and -2s for a missing key.
func (s *RedisStore) TTL(ctx context.Context, name string) (time.Duration, error) {
	ttl, err := s.client.TTL(ctx, s.key(name)).Result()
	if err != nil {
		return 0, &customerrors.ErrCache{Operation: "ttl", Key: name, Cause: err}
	}

	return normalizeTTL(ttl), nil
}

// IntWithTTL reads an integer value and its TTL in one round trip.
// A missing value reads as zero.
func (s *RedisStore) IntWithTTL(ctx context.Context, name string) (int64, time.Duration, error) {
	key := s.key(name)

	pipe := s.client.Pipeline()
	getCmd := pipe.Get(ctx, key)
	ttlCmd := pipe.TTL(ctx, key)

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return 0, 0, &customerrors.ErrCache{Operation: "pipeline", Key: name, Cause: err}
	}

	var value int64

	if raw, err := getCmd.Result(); err == nil {
		value, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			s.logger.Warn("Некорректное значение счетчика в Redis",
				"key", name,
				"value", raw,
			)

			value = 0
		}
	}

	return value, normalizeTTL(ttlCmd.Val()), nil
}

// go-redis reports the -1 and -2 TTL markers as raw nanoseconds.
func normalizeTTL(ttl time.Duration) time.Duration {
	if ttl == -1 || ttl == -2 {
		return ttl * time.Second
	}

	return ttl
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
