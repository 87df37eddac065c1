package service

import (
	"context"
	"log/slog"

	"github.com/matthew11k/outreach/internal/common/metrics"
	"github.com/matthew11k/outreach/internal/domain/models"
	"github.com/matthew11k/outreach/internal/engine/repository"
)

// Remediator turns provider statuses into queued jobs. It never retries and
// never fails the caller. A status whose job is still queued adds nothing.
type Remediator struct {
	jobs   repository.JobRepository
	logger *slog.Logger
}

func NewRemediator(jobs repository.JobRepository, logger *slog.Logger) *Remediator {
	return &Remediator{
		jobs:   jobs,
		logger: logger,
	}
}

// JobFor returns the remediation job kind for a status, or false when the
// status is only logged.
func JobFor(status *models.Status) (models.JobKind, bool) {
	switch status.Kind {
	case models.StatusForbidden:
		return models.JobDeregisterChannel, status.ChannelRef != ""
	case models.StatusConnection:
		return models.JobConnectivityAlarm, true
	case models.StatusRateLimited:
		return models.JobThrottleAlarm, true
	case models.StatusNotFound, models.StatusUnknown:
		return "", false
	default:
		return "", false
	}
}

func (r *Remediator) Handle(ctx context.Context, tick *models.TickContext, status *models.Status) {
	if status == nil {
		return
	}

	metrics.RecordStatus(string(status.Kind))

	logger := r.logger.With(
		"runID", tick.RunID,
		"status", status.Kind,
		"channel", status.ChannelRef,
		"peer", status.Peer,
	)

	kind, ok := JobFor(status)
	if !ok {
		logger.Warn("Статус платформы без действия", "cause", status.Cause)
		return
	}

	pending, err := r.jobs.ExistsPending(ctx, tick.OwnerID, kind, status.ChannelRef)
	if err != nil {
		logger.Error("Не удалось проверить очередь задач", "kind", kind, "error", err)
	}

	if pending {
		logger.Debug("Задача исправления уже в очереди", "kind", kind)
		return
	}

	payload := models.JobPayload{
		ChannelRef: status.ChannelRef,
		Handle:     status.Peer,
	}
	if status.Cause != nil {
		payload.Reason = status.Cause.Error()
	}

	jobID, err := r.jobs.Enqueue(ctx, &models.Job{
		OwnerID:  tick.OwnerID,
		Kind:     kind,
		Metadata: models.EncodeJobPayload(payload),
	})
	if err != nil {
		logger.Error("Не удалось поставить задачу исправления", "kind", kind, "error", err)
		return
	}

	logger.Info("Поставлена задача исправления", "kind", kind, "jobID", jobID)
}
