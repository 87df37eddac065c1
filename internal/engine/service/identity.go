package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/matthew11k/outreach/internal/domain/models"
	"github.com/matthew11k/outreach/internal/engine/cache"
	"github.com/matthew11k/outreach/internal/engine/repository"
)

const sessionCacheTTL = time.Hour

// IdentityService resolves the bot this process runs as and builds a fresh
// TickContext for every scheduler tick.
type IdentityService struct {
	bots        repository.BotRepository
	store       cache.Store
	sessionPath string
	flagTTL     time.Duration
	logger      *slog.Logger
}

func NewIdentityService(bots repository.BotRepository, store cache.Store, sessionPath string, flagTTL time.Duration, logger *slog.Logger) *IdentityService {
	return &IdentityService{
		bots:        bots,
		store:       store,
		sessionPath: sessionPath,
		flagTTL:     flagTTL,
		logger:      logger,
	}
}

func (s *IdentityService) Bot(ctx context.Context) (*models.Bot, error) {
	return cache.GetOrLoad(ctx, s.store, cache.KeySession(s.sessionPath), sessionCacheTTL, func(ctx context.Context) (*models.Bot, error) {
		return s.bots.FindBySession(ctx, s.sessionPath)
	})
}

func (s *IdentityService) Current(ctx context.Context) (*models.TickContext, error) {
	bot, err := s.Bot(ctx)
	if err != nil {
		return nil, err
	}

	working, err := cache.GetOrLoad(ctx, s.store, cache.KeyWorkFlag(bot.ID), s.flagTTL, func(ctx context.Context) (bool, error) {
		fresh, err := s.bots.FindByID(ctx, bot.ID)
		if err != nil {
			return false, err
		}

		return fresh.IsStarted, nil
	})
	if err != nil {
		return nil, err
	}

	return &models.TickContext{
		RunID:   uuid.NewString(),
		OwnerID: bot.OwnerID,
		BotID:   bot.ID,
		Working: working,
	}, nil
}
