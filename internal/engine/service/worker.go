package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/multierr"

	"github.com/matthew11k/outreach/internal/common/metrics"
	customerrors "github.com/matthew11k/outreach/internal/domain/errors"
	"github.com/matthew11k/outreach/internal/domain/models"
	"github.com/matthew11k/outreach/internal/engine/cache"
	"github.com/matthew11k/outreach/internal/engine/notify"
	"github.com/matthew11k/outreach/internal/engine/platform"
	"github.com/matthew11k/outreach/internal/engine/repository"
)

// JobWorker drains the owner's job queue. Each job runs in its own transaction.
type JobWorker struct {
	jobs       repository.JobRepository
	channels   repository.ChannelRepository
	candidates repository.CandidateRepository
	owners     repository.OwnerRepository
	bans       repository.BanRepository
	txManager  TxManager
	resolver   *platform.Resolver
	cursors    CursorStore
	settings   Settings
	notifier   notify.AlertNotifier
	names      *NameRefresher
	logger     *slog.Logger
}

func NewJobWorker(
	repos *repository.Repositories,
	txManager TxManager,
	resolver *platform.Resolver,
	cursors CursorStore,
	settings Settings,
	notifier notify.AlertNotifier,
	names *NameRefresher,
	logger *slog.Logger,
) *JobWorker {
	return &JobWorker{
		jobs:       repos.Jobs,
		channels:   repos.Channels,
		candidates: repos.Candidates,
		owners:     repos.Owners,
		bans:       repos.Bans,
		txManager:  txManager,
		resolver:   resolver,
		cursors:    cursors,
		settings:   settings,
		notifier:   notifier,
		names:      names,
		logger:     logger,
	}
}

func (w *JobWorker) Tick(ctx context.Context, tick *models.TickContext) error {
	ctx, span := tracer.Start(ctx, "JobWorker.Tick", trace.WithAttributes(attribute.String("run_id", tick.RunID)))
	defer span.End()

	jobs, err := w.jobs.ListPending(ctx, tick.OwnerID)
	if err != nil {
		return err
	}

	var errs error

	for _, job := range jobs {
		if ctx.Err() != nil {
			errs = multierr.Append(errs, ctx.Err())
			break
		}

		logger := w.logger.With("runID", tick.RunID, "jobID", job.ID, "kind", job.Kind)

		if !job.Kind.Known() {
			logger.Warn("Неизвестный тип задачи, оставляем в очереди")
			metrics.RecordJob(string(job.Kind), false)

			continue
		}

		err := w.txManager.WithTransaction(ctx, func(ctx context.Context) error {
			return w.process(ctx, tick, job)
		})

		metrics.RecordJob(string(job.Kind), err == nil)

		if err != nil {
			logger.Error("Ошибка выполнения задачи", "error", err)
			errs = multierr.Append(errs, fmt.Errorf("задача %d (%s): %w", job.ID, job.Kind, err))

			continue
		}

		logger.Info("Задача выполнена")
	}

	return errs
}

//nolint:gocyclo // одна ветка на тип задачи
func (w *JobWorker) process(ctx context.Context, tick *models.TickContext, job *models.Job) error {
	payload, err := models.DecodeJobPayload(job.Metadata)
	if err != nil {
		return err
	}

	switch job.Kind {
	case models.JobListFolders:
		folders, err := w.listFolders(ctx)
		if err != nil {
			return err
		}

		return w.jobs.SetResult(ctx, job.ID, models.EncodeFolders(folders))
	case models.JobEnrichFolderMembers:
		members, err := w.enrichFolders(ctx, tick, payload.Folders)
		if err != nil {
			return err
		}

		return w.jobs.SetResult(ctx, job.ID, models.EncodeFolderMembers(members))
	case models.JobUpdateChannelTitles:
		err = w.updateTitles(ctx, tick)
	case models.JobUpdateSelfName:
		err = w.names.Tick(ctx, tick)
	case models.JobResetAntiFlood:
		err = w.resetAntiFlood(ctx, tick, payload.Handles)
	case models.JobBatchNotify:
		err = w.alert(ctx, tick, models.AlertBatch, fmt.Sprintf("Набран пакет из %d кандидатов", len(payload.Handles)), payload.Handles)
	case models.JobDeregisterChannel:
		err = w.deregister(ctx, tick, payload)
	case models.JobConnectivityAlarm:
		err = w.alert(ctx, tick, models.AlertConnectivity, payload.Reason, nil)
	case models.JobThrottleAlarm:
		err = w.alert(ctx, tick, models.AlertThrottle, payload.Reason, lo.Compact([]string{payload.Handle}))
	case models.JobBlockBanned:
		err = w.blockBanned(ctx, tick)
	case models.JobUnblockUser:
		err = w.unblock(ctx, payload.Handle)
	default:
		return &customerrors.ErrUnknownJobKind{Kind: string(job.Kind)}
	}

	if err != nil {
		return err
	}

	return w.jobs.Delete(ctx, job.ID)
}

func (w *JobWorker) listFolders(ctx context.Context) ([]models.DialogFilter, error) {
	var folders []models.DialogFilter

	err := w.resolver.Call(ctx, func(ctx context.Context) error {
		var err error
		folders, err = w.resolver.Client().ListDialogFilters(ctx)

		return err
	})

	return folders, err
}

func (w *JobWorker) enrichFolders(ctx context.Context, tick *models.TickContext, folders []models.DialogFilter) ([]models.FolderMembers, error) {
	result := make([]models.FolderMembers, 0, len(folders))

	for _, folder := range folders {
		members := make([]models.Entity, 0, len(folder.PinnedPeers))

		for _, peerID := range folder.PinnedPeers {
			entity, status := w.resolver.Resolve(ctx, strconv.FormatInt(peerID, 10))
			if status != nil {
				if status.Kind == models.StatusConnection || status.Kind == models.StatusRateLimited {
					return nil, status
				}

				w.logger.Warn("Не удалось получить участника папки",
					"runID", tick.RunID,
					"folder", folder.Title,
					"peer", peerID,
					"status", status.Kind,
				)

				continue
			}

			members = append(members, *entity)
		}

		result = append(result, models.FolderMembers{Title: folder.Title, Members: members})
	}

	return result, nil
}

func (w *JobWorker) updateTitles(ctx context.Context, tick *models.TickContext) error {
	channels, err := w.channels.ListWithoutTitle(ctx, tick.OwnerID)
	if err != nil {
		return err
	}

	for _, channel := range channels {
		entity, status := w.resolver.Resolve(ctx, channel.ChannelRef)
		if status != nil {
			w.logger.Warn("Не удалось получить название канала",
				"runID", tick.RunID,
				"channel", channel.ChannelRef,
				"status", status.Kind,
			)

			continue
		}

		if entity.Title == "" {
			continue
		}

		if err := w.channels.UpdateTitle(ctx, channel.ID, entity.Title); err != nil {
			return err
		}
	}

	return nil
}

func (w *JobWorker) resetAntiFlood(ctx context.Context, tick *models.TickContext, handles []string) error {
	reset, err := w.candidates.ResetBatched(ctx, tick.OwnerID, lo.Map(handles, func(h string, _ int) string {
		return ExternalUserID(h)
	}))
	if err != nil {
		return err
	}

	if err := w.owners.SetAntiFloodMode(ctx, tick.OwnerID, false); err != nil {
		return err
	}

	w.logger.Info("Антифлуд сброшен", "runID", tick.RunID, "candidates", reset)

	return w.settings.Invalidate(ctx, cache.KeyOwnerConfig)
}

func (w *JobWorker) deregister(ctx context.Context, tick *models.TickContext, payload models.JobPayload) error {
	if payload.ChannelRef == "" {
		return &customerrors.ErrMissingRequiredField{FieldName: "channel_ref"}
	}

	removed, err := w.channels.Remove(ctx, tick.OwnerID, payload.ChannelRef)
	if err != nil {
		return err
	}

	if err := w.cursors.Delete(ctx, payload.ChannelRef); err != nil {
		return err
	}

	if !removed {
		return nil
	}

	text := "Канал " + payload.ChannelRef + " удален из мониторинга"
	if payload.Reason != "" {
		text += ": " + payload.Reason
	}

	return w.alert(ctx, tick, models.AlertChannelLost, text, nil)
}

func (w *JobWorker) blockBanned(ctx context.Context, tick *models.TickContext) error {
	banned, err := w.bans.ListUnblocked(ctx, tick.OwnerID)
	if err != nil {
		return err
	}

	for _, ban := range banned {
		handle := ban.Handle

		err := w.resolver.Call(ctx, func(ctx context.Context) error {
			return w.resolver.Client().BlockUser(ctx, handle)
		})
		if err != nil {
			status := platform.NewStatus(err, "", handle)
			if status.Kind == models.StatusNotFound {
				w.logger.Warn("Пользователь для блокировки не найден", "handle", handle)
				continue
			}

			return status
		}

		if err := w.bans.SetBlocked(ctx, tick.OwnerID, handle, true); err != nil {
			return err
		}
	}

	return nil
}

func (w *JobWorker) unblock(ctx context.Context, handle string) error {
	if handle == "" {
		return &customerrors.ErrMissingRequiredField{FieldName: "handle"}
	}

	err := w.resolver.Call(ctx, func(ctx context.Context) error {
		return w.resolver.Client().UnblockUser(ctx, handle)
	})
	if err != nil && platform.Classify(err) != models.StatusNotFound {
		return err
	}

	return nil
}

func (w *JobWorker) alert(ctx context.Context, tick *models.TickContext, kind models.AlertKind, text string, handles []string) error {
	return w.notifier.Notify(ctx, &models.Alert{
		Kind:      kind,
		OwnerID:   tick.OwnerID,
		BotID:     tick.BotID,
		Text:      text,
		Handles:   handles,
		CreatedAt: time.Now().UTC(),
	})
}
