package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Store is the subset of RedisStore the typed caches rely on.
type Store interface {
	Get(ctx context.Context, name string) ([]byte, bool, error)
	Set(ctx context.Context, name string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, names ...string) error
	Incr(ctx context.Context, name string) (int64, error)
	Decr(ctx context.Context, name string) (int64, error)
	Expire(ctx context.Context, name string, ttl time.Duration) error
	TTL(ctx context.Context, name string) (time.Duration, error)
	IntWithTTL(ctx context.Context, name string) (int64, time.Duration, error)
}

// GetOrLoad returns the cached JSON value of key or stores what load returns for ttl.
func GetOrLoad[T any](ctx context.Context, store Store, key string, ttl time.Duration, load func(ctx context.Context) (T, error)) (T, error) {
	var value T

	data, ok, err := store.Get(ctx, key)
	if err == nil && ok {
		if err := json.Unmarshal(data, &value); err == nil {
			return value, nil
		}
	}

	value, err = load(ctx)
	if err != nil {
		return value, err
	}

	data, err = json.Marshal(value)
	if err != nil {
		return value, fmt.Errorf("ошибка при сериализации данных для Redis: %w", err)
	}

	// Значение уже загружено, ошибка записи в кэш не должна мешать тику.
	_ = store.Set(ctx, key, data, ttl)

	return value, nil
}
