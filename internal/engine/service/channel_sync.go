package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/multierr"

	"github.com/matthew11k/outreach/internal/domain/models"
	"github.com/matthew11k/outreach/internal/engine/filter"
	"github.com/matthew11k/outreach/internal/engine/repository"
)

// ChannelSync runs fetcher, filter and intake over every monitored channel of the owner.
type ChannelSync struct {
	channels repository.ChannelRepository
	fetcher  MessageFetcher
	matcher  filter.Matcher
	intake   *CandidateIntake
	settings Settings
	statuses StatusHandler
	logger   *slog.Logger
}

func NewChannelSync(
	channels repository.ChannelRepository,
	fetcher MessageFetcher,
	matcher filter.Matcher,
	intake *CandidateIntake,
	settings Settings,
	statuses StatusHandler,
	logger *slog.Logger,
) *ChannelSync {
	return &ChannelSync{
		channels: channels,
		fetcher:  fetcher,
		matcher:  matcher,
		intake:   intake,
		settings: settings,
		statuses: statuses,
		logger:   logger,
	}
}

func (s *ChannelSync) Tick(ctx context.Context, tick *models.TickContext) error {
	if !tick.Working {
		return nil
	}

	ctx, span := tracer.Start(ctx, "ChannelSync.Tick", trace.WithAttributes(attribute.String("run_id", tick.RunID)))
	defer span.End()

	channels, err := s.channels.ListByOwner(ctx, tick.OwnerID)
	if err != nil {
		return err
	}

	var errs error

	for _, channel := range channels {
		if ctx.Err() != nil {
			errs = multierr.Append(errs, ctx.Err())
			break
		}

		if err := s.syncChannel(ctx, tick, channel); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("канал %s: %w", channel.ChannelRef, err))
		}
	}

	return errs
}

func (s *ChannelSync) syncChannel(ctx context.Context, tick *models.TickContext, channel *models.MonitoredChannel) error {
	messages, status := s.fetcher.FetchNew(ctx, tick, channel)
	if status != nil {
		s.statuses.Handle(ctx, tick, status)
		return nil
	}

	if len(messages) == 0 {
		return nil
	}

	rules, err := s.settings.Rules(ctx, tick.OwnerID)
	if err != nil {
		return err
	}

	banned, err := s.settings.Banned(ctx, tick.OwnerID)
	if err != nil {
		return err
	}

	bannedSet := make(map[string]struct{}, len(banned))
	for _, handle := range banned {
		bannedSet[ExternalUserID(handle)] = struct{}{}
	}

	var errs error

	for _, message := range messages {
		if err := s.processMessage(ctx, tick, message, rules, bannedSet); err != nil {
			errs = multierr.Append(errs, err)
		}
	}

	return errs
}

func (s *ChannelSync) processMessage(
	ctx context.Context,
	tick *models.TickContext,
	message models.Message,
	rules models.RuleSet,
	banned map[string]struct{},
) error {
	if strings.TrimSpace(message.Text) == "" {
		return nil
	}

	result := s.matcher.Evaluate(message.Text, rules.Keywords, rules.Excludes)

	handle, ok := filter.ExtractMention(message.Text)
	if !ok || filter.IsBotHandle(handle) {
		return nil
	}

	sender := models.Sender{
		ExternalUserID: ExternalUserID(handle),
		Handle:         handle,
	}

	bannedHandle := ""
	if _, ok := banned[sender.ExternalUserID]; ok {
		bannedHandle = sender.ExternalUserID
	}

	meta := BuildDecisionMeta(result, true, bannedHandle, false)

	_, err := s.intake.Intake(ctx, tick, sender, message, meta)

	return err
}

// ExternalUserID is the owner-wide identity of a mentioned handle: "@" plus
// the lower-cased handle.
func ExternalUserID(handle string) string {
	return "@" + strings.ToLower(strings.TrimPrefix(strings.TrimSpace(handle), "@"))
}
