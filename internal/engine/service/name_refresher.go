package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/matthew11k/outreach/internal/domain/models"
	"github.com/matthew11k/outreach/internal/engine/platform"
	"github.com/matthew11k/outreach/internal/engine/repository"
)

// NameRefresher copies the platform display name of the identity into the store.
type NameRefresher struct {
	bots     repository.BotRepository
	resolver *platform.Resolver
	statuses StatusHandler
	logger   *slog.Logger
}

func NewNameRefresher(bots repository.BotRepository, resolver *platform.Resolver, statuses StatusHandler, logger *slog.Logger) *NameRefresher {
	return &NameRefresher{
		bots:     bots,
		resolver: resolver,
		statuses: statuses,
		logger:   logger,
	}
}

func (r *NameRefresher) Tick(ctx context.Context, tick *models.TickContext) error {
	var self *models.Self

	err := r.resolver.Call(ctx, func(ctx context.Context) error {
		var err error
		self, err = r.resolver.Client().GetSelf(ctx)

		return err
	})
	if err != nil {
		r.statuses.Handle(ctx, tick, platform.NewStatus(err, "", ""))
		return nil
	}

	bot, err := r.bots.FindByID(ctx, tick.BotID)
	if err != nil {
		return err
	}

	name := DisplayName(self)
	if name == "" || name == bot.Name {
		return nil
	}

	if err := r.bots.UpdateName(ctx, tick.BotID, name); err != nil {
		return err
	}

	r.logger.Info("Имя бота обновлено", "botID", tick.BotID, "old", bot.Name, "new", name)

	return nil
}

// DisplayName is "first last", or the username when both are empty.
func DisplayName(self *models.Self) string {
	name := strings.TrimSpace(strings.TrimSpace(self.FirstName) + " " + strings.TrimSpace(self.LastName))
	if name != "" {
		return name
	}

	return self.Username
}
