package cache

import (
	"context"
	"strconv"
)

// CursorStore keeps the last seen position of every monitored channel.
// Cursors have no TTL: losing one only costs a metadata bootstrap.
type CursorStore struct {
	store Store
}

func NewCursorStore(store Store) *CursorStore {
	return &CursorStore{store: store}
}

func (c *CursorStore) Get(ctx context.Context, channelRef string) (int64, bool, error) {
	data, ok, err := c.store.Get(ctx, KeyCursor(channelRef))
	if err != nil || !ok {
		return 0, false, err
	}

	position, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		// Испорченный курсор эквивалентен отсутствующему.
		return 0, false, nil
	}

	return position, true, nil
}

func (c *CursorStore) Set(ctx context.Context, channelRef string, position int64) error {
	return c.store.Set(ctx, KeyCursor(channelRef), []byte(strconv.FormatInt(position, 10)), 0)
}

func (c *CursorStore) Delete(ctx context.Context, channelRef string) error {
	return c.store.Del(ctx, KeyCursor(channelRef))
}
