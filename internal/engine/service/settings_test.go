package service_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/matthew11k/outreach/internal/domain/models"
	"github.com/matthew11k/outreach/internal/engine/cache"
	cachemocks "github.com/matthew11k/outreach/internal/engine/cache/mocks"
	repomocks "github.com/matthew11k/outreach/internal/engine/repository/mocks"
	"github.com/matthew11k/outreach/internal/engine/service"
)

func TestSettingsService_RulesCacheMissLoadsFromStore(t *testing.T) {
	store := cachemocks.NewStore(t)
	rules := repomocks.NewRuleRepository(t)
	settings := service.NewSettingsService(store, rules, repomocks.NewBanRepository(t), repomocks.NewOwnerRepository(t),
		time.Minute, discardLogger())

	expected := models.RuleSet{Keywords: []string{"дизайнер"}, Excludes: []string{"спам"}}
	encoded, err := json.Marshal(expected)
	require.NoError(t, err)

	store.EXPECT().Get(mock.Anything, cache.KeyRules).Return(nil, false, nil).Once()
	rules.EXPECT().List(mock.Anything, models.RuleKeyword, int64(1)).Return(expected.Keywords, nil).Once()
	rules.EXPECT().List(mock.Anything, models.RuleExclude, int64(1)).Return(expected.Excludes, nil).Once()
	store.EXPECT().Set(mock.Anything, cache.KeyRules, encoded, time.Minute).Return(nil).Once()

	got, err := settings.Rules(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestSettingsService_CacheHitSkipsStore(t *testing.T) {
	store := cachemocks.NewStore(t)
	settings := service.NewSettingsService(store, repomocks.NewRuleRepository(t), repomocks.NewBanRepository(t),
		repomocks.NewOwnerRepository(t), time.Minute, discardLogger())

	store.EXPECT().Get(mock.Anything, cache.KeyAnswers).Return([]byte(`["Привет","Добрый день"]`), true, nil).Once()
	store.EXPECT().Get(mock.Anything, cache.KeyOwnerConfig).
		Return([]byte(`{"ID":1,"SendRatePerMinute":3,"AntiFloodMode":true,"AntiFloodBatchSize":10}`), true, nil).Once()

	answers, err := settings.Answers(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Привет", "Добрый день"}, answers)

	owner, err := settings.OwnerConfig(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, owner.SendRatePerMinute)
	assert.True(t, owner.AntiFloodMode)
}

func TestSettingsService_BannedAndInvalidate(t *testing.T) {
	store := cachemocks.NewStore(t)
	bans := repomocks.NewBanRepository(t)
	settings := service.NewSettingsService(store, repomocks.NewRuleRepository(t), bans, repomocks.NewOwnerRepository(t),
		time.Minute, discardLogger())

	store.EXPECT().Get(mock.Anything, cache.KeyBanned).Return(nil, false, nil).Once()
	bans.EXPECT().List(mock.Anything, int64(1)).Return([]models.BannedHandle{
		{OwnerID: 1, Handle: "@spammer_one"},
		{OwnerID: 1, Handle: "@spammer_two", Blocked: true},
	}, nil).Once()
	store.EXPECT().Set(mock.Anything, cache.KeyBanned, mock.Anything, time.Minute).Return(nil).Once()
	store.EXPECT().Del(mock.Anything, cache.KeyBanned, cache.KeyRules).Return(nil).Once()

	banned, err := settings.Banned(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"@spammer_one", "@spammer_two"}, banned)

	require.NoError(t, settings.Invalidate(context.Background(), cache.KeyBanned, cache.KeyRules))
}
