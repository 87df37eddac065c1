package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/matthew11k/outreach/internal/domain/models"
	"github.com/matthew11k/outreach/internal/engine/platform"
	platformmocks "github.com/matthew11k/outreach/internal/engine/platform/mocks"
	repomocks "github.com/matthew11k/outreach/internal/engine/repository/mocks"
	"github.com/matthew11k/outreach/internal/engine/service"
	servicemocks "github.com/matthew11k/outreach/internal/engine/service/mocks"
)

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Анна Иванова", service.DisplayName(&models.Self{FirstName: "Анна", LastName: "Иванова"}))
	assert.Equal(t, "Анна", service.DisplayName(&models.Self{FirstName: " Анна ", Username: "anna"}))
	assert.Equal(t, "anna_ivanova", service.DisplayName(&models.Self{Username: "anna_ivanova"}))
}

func TestNameRefresher_Tick(t *testing.T) {
	t.Run("unchanged name is not written", func(t *testing.T) {
		bots := repomocks.NewBotRepository(t)
		client := platformmocks.NewClient(t)
		refresher := service.NewNameRefresher(bots, platform.NewResolver(client, time.Second, discardLogger()),
			servicemocks.NewStatusHandler(t), discardLogger())

		client.EXPECT().GetSelf(mock.Anything).Return(&models.Self{FirstName: "Анна"}, nil).Once()
		bots.EXPECT().FindByID(mock.Anything, int64(7)).Return(&models.Bot{ID: 7, Name: "Анна"}, nil).Once()

		require.NoError(t, refresher.Tick(context.Background(), testTick()))
	})

	t.Run("provider failure goes to remediation", func(t *testing.T) {
		client := platformmocks.NewClient(t)
		statuses := servicemocks.NewStatusHandler(t)
		refresher := service.NewNameRefresher(repomocks.NewBotRepository(t),
			platform.NewResolver(client, time.Second, discardLogger()), statuses, discardLogger())

		client.EXPECT().GetSelf(mock.Anything).Return(nil, platform.ErrConnection).Once()
		statuses.EXPECT().Handle(mock.Anything, mock.Anything, mock.MatchedBy(func(s *models.Status) bool {
			return s.Kind == models.StatusConnection
		})).Once()

		require.NoError(t, refresher.Tick(context.Background(), testTick()))
	})
}
