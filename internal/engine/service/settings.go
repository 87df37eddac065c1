package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"github.com/matthew11k/outreach/internal/domain/models"
	"github.com/matthew11k/outreach/internal/engine/cache"
	"github.com/matthew11k/outreach/internal/engine/repository"
)

type SettingsService struct {
	store  cache.Store
	rules  repository.RuleRepository
	bans   repository.BanRepository
	owners repository.OwnerRepository
	ttl    time.Duration
	logger *slog.Logger
}

func NewSettingsService(
	store cache.Store,
	rules repository.RuleRepository,
	bans repository.BanRepository,
	owners repository.OwnerRepository,
	ttl time.Duration,
	logger *slog.Logger,
) *SettingsService {
	return &SettingsService{
		store:  store,
		rules:  rules,
		bans:   bans,
		owners: owners,
		ttl:    ttl,
		logger: logger,
	}
}

func (s *SettingsService) Rules(ctx context.Context, ownerID int64) (models.RuleSet, error) {
	return cache.GetOrLoad(ctx, s.store, cache.KeyRules, s.ttl, func(ctx context.Context) (models.RuleSet, error) {
		keywords, err := s.rules.List(ctx, models.RuleKeyword, ownerID)
		if err != nil {
			return models.RuleSet{}, err
		}

		excludes, err := s.rules.List(ctx, models.RuleExclude, ownerID)
		if err != nil {
			return models.RuleSet{}, err
		}

		s.logger.Debug("Правила загружены из БД",
			"keywords", len(keywords),
			"excludes", len(excludes),
		)

		return models.RuleSet{Keywords: keywords, Excludes: excludes}, nil
	})
}

func (s *SettingsService) Answers(ctx context.Context, ownerID int64) ([]string, error) {
	return cache.GetOrLoad(ctx, s.store, cache.KeyAnswers, s.ttl, func(ctx context.Context) ([]string, error) {
		return s.rules.List(ctx, models.RuleAnswer, ownerID)
	})
}

// Banned returns the banned handles in their stored "@name" form.
func (s *SettingsService) Banned(ctx context.Context, ownerID int64) ([]string, error) {
	return cache.GetOrLoad(ctx, s.store, cache.KeyBanned, s.ttl, func(ctx context.Context) ([]string, error) {
		bans, err := s.bans.List(ctx, ownerID)
		if err != nil {
			return nil, err
		}

		return lo.Map(bans, func(b models.BannedHandle, _ int) string { return b.Handle }), nil
	})
}

func (s *SettingsService) OwnerConfig(ctx context.Context, ownerID int64) (*models.OwnerConfig, error) {
	return cache.GetOrLoad(ctx, s.store, cache.KeyOwnerConfig, s.ttl, func(ctx context.Context) (*models.OwnerConfig, error) {
		return s.owners.FindByID(ctx, ownerID)
	})
}

func (s *SettingsService) Invalidate(ctx context.Context, keys ...string) error {
	return s.store.Del(ctx, keys...)
}
