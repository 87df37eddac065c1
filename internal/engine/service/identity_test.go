package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	customerrors "github.com/matthew11k/outreach/internal/domain/errors"
	"github.com/matthew11k/outreach/internal/domain/models"
	"github.com/matthew11k/outreach/internal/engine/cache"
	cachemocks "github.com/matthew11k/outreach/internal/engine/cache/mocks"
	repomocks "github.com/matthew11k/outreach/internal/engine/repository/mocks"
	"github.com/matthew11k/outreach/internal/engine/service"
)

func TestIdentityService_Current(t *testing.T) {
	store := cachemocks.NewStore(t)
	bots := repomocks.NewBotRepository(t)
	identity := service.NewIdentityService(bots, store, "sessions/main", 5*time.Second, discardLogger())

	store.EXPECT().Get(mock.Anything, cache.KeySession("sessions/main")).Return(nil, false, nil).Once()
	bots.EXPECT().FindBySession(mock.Anything, "sessions/main").
		Return(&models.Bot{ID: 7, OwnerID: 1, SessionPath: "sessions/main"}, nil).Once()
	store.EXPECT().Set(mock.Anything, cache.KeySession("sessions/main"), mock.Anything, time.Hour).Return(nil).Once()

	store.EXPECT().Get(mock.Anything, cache.KeyWorkFlag(7)).Return(nil, false, nil).Once()
	bots.EXPECT().FindByID(mock.Anything, int64(7)).Return(&models.Bot{ID: 7, OwnerID: 1, IsStarted: true}, nil).Once()
	store.EXPECT().Set(mock.Anything, cache.KeyWorkFlag(7), []byte("true"), 5*time.Second).Return(nil).Once()

	tick, err := identity.Current(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(1), tick.OwnerID)
	assert.Equal(t, int64(7), tick.BotID)
	assert.True(t, tick.Working)
	assert.NotEmpty(t, tick.RunID)
}

func TestIdentityService_UnknownSession(t *testing.T) {
	store := cachemocks.NewStore(t)
	bots := repomocks.NewBotRepository(t)
	identity := service.NewIdentityService(bots, store, "sessions/missing", 5*time.Second, discardLogger())

	store.EXPECT().Get(mock.Anything, cache.KeySession("sessions/missing")).Return(nil, false, nil).Once()
	bots.EXPECT().FindBySession(mock.Anything, "sessions/missing").
		Return(nil, &customerrors.ErrBotNotFound{SessionPath: "sessions/missing"}).Once()

	_, err := identity.Current(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, &customerrors.ErrBotNotFound{})
}
