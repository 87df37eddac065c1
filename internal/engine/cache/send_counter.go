package cache

import (
	"context"
	"time"
)

const SendWindow = 60 * time.Second

// SendCounter is the rolling per-minute send budget of an owner.
type SendCounter struct {
	store Store
}

func NewSendCounter(store Store) *SendCounter {
	return &SendCounter{store: store}
}

// Snapshot returns the current count and the remaining window.
// A counter without TTL reports the full window.
func (c *SendCounter) Snapshot(ctx context.Context) (int64, time.Duration, error) {
	count, ttl, err := c.store.IntWithTTL(ctx, KeySendCounter)
	if err != nil {
		return 0, 0, err
	}

	if ttl <= 0 {
		ttl = SendWindow
	}

	return count, ttl, nil
}

// Acquire reserves one send slot. It increments first and gives the slot back
// when the increment overshoots limit.
func (c *SendCounter) Acquire(ctx context.Context, limit int) (bool, error) {
	count, err := c.store.Incr(ctx, KeySendCounter)
	if err != nil {
		return false, err
	}

	if count == 1 {
		if err := c.store.Expire(ctx, KeySendCounter, SendWindow); err != nil {
			return false, err
		}
	} else {
		ttl, err := c.store.TTL(ctx, KeySendCounter)
		if err != nil {
			return false, err
		}

		if ttl < 0 {
			if err := c.store.Expire(ctx, KeySendCounter, SendWindow); err != nil {
				return false, err
			}
		}
	}

	if count > int64(limit) {
		if _, err := c.store.Decr(ctx, KeySendCounter); err != nil {
			return false, err
		}

		return false, nil
	}

	return true, nil
}

// Release gives back a slot reserved for a send that did not happen.
func (c *SendCounter) Release(ctx context.Context) error {
	count, _, err := c.store.IntWithTTL(ctx, KeySendCounter)
	if err != nil {
		return err
	}

	if count <= 0 {
		return nil
	}

	_, err = c.store.Decr(ctx, KeySendCounter)

	return err
}
