package platform_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/matthew11k/outreach/internal/domain/models"
	"github.com/matthew11k/outreach/internal/engine/platform"
	"github.com/matthew11k/outreach/internal/engine/platform/mocks"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want models.StatusKind
	}{
		{"forbidden", platform.ErrForbidden, models.StatusForbidden},
		{"wrapped rate limit", errors.Join(errors.New("send"), platform.ErrRateLimited), models.StatusRateLimited},
		{"deadline", context.DeadlineExceeded, models.StatusConnection},
		{"other", errors.New("boom"), models.StatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, platform.Classify(tt.err))
		})
	}
}

func TestResolver_Resolve(t *testing.T) {
	t.Run("found on first lookup", func(t *testing.T) {
		client := mocks.NewClient(t)
		client.EXPECT().ResolveEntity(mock.Anything, "@news").Return(&models.Entity{ID: 1}, nil).Once()

		entity, status := platform.NewResolver(client, time.Second, discardLogger()).Resolve(context.Background(), "@news")

		assert.Nil(t, status)
		assert.Equal(t, int64(1), entity.ID)
	})

	t.Run("not found refreshes dialogs and retries", func(t *testing.T) {
		client := mocks.NewClient(t)
		client.EXPECT().ResolveEntity(mock.Anything, "@news").Return(nil, platform.ErrNotFound).Once()
		client.EXPECT().RefreshDialogs(mock.Anything).Return(nil).Once()
		client.EXPECT().ResolveEntity(mock.Anything, "@news").Return(&models.Entity{ID: 2}, nil).Once()

		entity, status := platform.NewResolver(client, time.Second, discardLogger()).Resolve(context.Background(), "@news")

		assert.Nil(t, status)
		assert.Equal(t, int64(2), entity.ID)
	})

	t.Run("still missing after refresh", func(t *testing.T) {
		client := mocks.NewClient(t)
		client.EXPECT().ResolveEntity(mock.Anything, "@gone").Return(nil, platform.ErrNotFound).Twice()
		client.EXPECT().RefreshDialogs(mock.Anything).Return(nil).Once()

		entity, status := platform.NewResolver(client, time.Second, discardLogger()).Resolve(context.Background(), "@gone")

		assert.Nil(t, entity)
		require.NotNil(t, status)
		assert.Equal(t, models.StatusNotFound, status.Kind)
		assert.Equal(t, "@gone", status.ChannelRef)
	})

	t.Run("forbidden does not refresh", func(t *testing.T) {
		client := mocks.NewClient(t)
		client.EXPECT().ResolveEntity(mock.Anything, "@private").Return(nil, platform.ErrForbidden).Once()

		_, status := platform.NewResolver(client, time.Second, discardLogger()).Resolve(context.Background(), "@private")

		require.NotNil(t, status)
		assert.Equal(t, models.StatusForbidden, status.Kind)
	})
}

func TestResolver_CallTimeoutIsConnectionFailure(t *testing.T) {
	resolver := platform.NewResolver(mocks.NewClient(t), 10*time.Millisecond, discardLogger())

	err := resolver.Call(context.Background(), func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	assert.ErrorIs(t, err, platform.ErrConnection)
	assert.Equal(t, models.StatusConnection, platform.Classify(err))
}
