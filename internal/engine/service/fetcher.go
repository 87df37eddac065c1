package service

import (
	"context"
	"log/slog"
	"math"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/matthew11k/outreach/internal/common/metrics"
	"github.com/matthew11k/outreach/internal/domain/models"
	"github.com/matthew11k/outreach/internal/engine/platform"
)

// FullWindow is the message id range every delta request covers.
var FullWindow = models.DeltaRange{MinID: 0, MaxID: math.MaxInt32}

type DeltaFetcher struct {
	resolver     *platform.Resolver
	cursors      CursorStore
	deltaLimit   int
	historyLimit int
	logger       *slog.Logger
}

func NewDeltaFetcher(resolver *platform.Resolver, cursors CursorStore, deltaLimit, historyLimit int, logger *slog.Logger) *DeltaFetcher {
	return &DeltaFetcher{
		resolver:     resolver,
		cursors:      cursors,
		deltaLimit:   deltaLimit,
		historyLimit: historyLimit,
		logger:       logger,
	}
}

// FetchNew returns the messages posted since the stored cursor. Expected
// provider failures come back as a Status; anything else is logged and
// reported as no messages. The cursor is written only after a validated delta.
func (f *DeltaFetcher) FetchNew(ctx context.Context, tick *models.TickContext, channel *models.MonitoredChannel) ([]models.Message, *models.Status) {
	ref := channel.ChannelRef

	ctx, span := tracer.Start(ctx, "DeltaFetcher.FetchNew", trace.WithAttributes(attribute.String("channel", ref)))
	defer span.End()

	logger := f.logger.With("runID", tick.RunID, "channel", ref)

	entity, status := f.resolver.Resolve(ctx, ref)
	if status != nil {
		return nil, status
	}

	if !entity.Broadcast {
		logger.Debug("Сущность не является каналом, пропускаем")
		return nil, nil
	}

	position, ok, err := f.cursors.Get(ctx, ref)
	if err != nil {
		logger.Error("Не удалось прочитать курсор канала", "error", err)
		return nil, nil
	}

	if !ok {
		meta, err := f.metadata(ctx, entity)
		if err != nil {
			return nil, platform.NewStatus(err, ref, "")
		}

		if err := f.cursors.Set(ctx, ref, meta.Position); err != nil {
			logger.Error("Не удалось сохранить начальный курсор", "error", err)
			return nil, nil
		}

		logger.Info("Курсор канала инициализирован", "position", meta.Position)

		position = meta.Position
	}

	var delta *models.Delta

	err = f.resolver.Call(ctx, func(ctx context.Context) error {
		var err error
		delta, err = f.resolver.Client().FetchDelta(ctx, entity, position, FullWindow, f.deltaLimit)

		return err
	})
	if err != nil {
		logger.Warn("Не удалось получить обновления канала", "position", position, "error", err)
		return nil, platform.NewStatus(err, ref, "")
	}

	switch delta.State {
	case models.DeltaEmpty:
		logger.Debug("Новых сообщений нет", "position", position)
		return nil, nil
	case models.DeltaTooLong:
		return f.recoverGap(ctx, entity, ref, position, logger)
	case models.DeltaNormal:
		return f.applyDelta(ctx, delta, ref, position, logger), nil
	default:
		logger.Warn("Неизвестное состояние обновлений", "state", delta.State)
		return nil, nil
	}
}

func (f *DeltaFetcher) applyDelta(ctx context.Context, delta *models.Delta, ref string, position int64, logger *slog.Logger) []models.Message {
	messages := make([]models.Message, 0, len(delta.NewMessages)+len(delta.OtherUpdates))
	messages = append(messages, delta.NewMessages...)

	for _, update := range delta.OtherUpdates {
		if update.Message != nil {
			messages = append(messages, *update.Message)
		}
	}

	metrics.RecordMessagesFetched(string(models.DeltaNormal), len(messages))

	if delta.Position <= position {
		logger.Warn("Позиция канала не увеличилась, возможна ошибка синхронизации",
			"position", position,
			"returned", delta.Position,
		)
		metrics.RecordCursorAnomaly("non_increasing")

		return messages
	}

	if err := f.cursors.Set(ctx, ref, delta.Position); err != nil {
		// Сообщения будут получены повторно, прием кандидатов идемпотентен.
		logger.Error("Не удалось обновить курсор канала", "error", err)
		return messages
	}

	logger.Info("Получены сообщения канала",
		"count", len(messages),
		"from", position,
		"to", delta.Position,
	)

	return messages
}

// recoverGap replaces a too-stale cursor with the current position. Messages
// older than the history window are lost.
func (f *DeltaFetcher) recoverGap(ctx context.Context, entity *models.Entity, ref string, position int64, logger *slog.Logger) ([]models.Message, *models.Status) {
	logger.Warn("Курсор канала сильно устарел, читаем историю", "position", position)
	metrics.RecordCursorAnomaly(string(models.DeltaTooLong))

	var history []models.Message

	err := f.resolver.Call(ctx, func(ctx context.Context) error {
		var err error
		history, err = f.resolver.Client().FetchHistory(ctx, entity, f.historyLimit)

		return err
	})
	if err != nil {
		return nil, platform.NewStatus(err, ref, "")
	}

	meta, err := f.metadata(ctx, entity)
	if err != nil {
		return nil, platform.NewStatus(err, ref, "")
	}

	if err := f.cursors.Set(ctx, ref, meta.Position); err != nil {
		logger.Error("Не удалось сбросить курсор канала", "error", err)
		return nil, nil
	}

	metrics.RecordMessagesFetched(string(models.DeltaTooLong), len(history))

	logger.Warn("Сообщения восстановлены из истории",
		"count", len(history),
		"position", meta.Position,
	)

	return history, nil
}

func (f *DeltaFetcher) metadata(ctx context.Context, entity *models.Entity) (*models.ChannelMetadata, error) {
	var meta *models.ChannelMetadata

	err := f.resolver.Call(ctx, func(ctx context.Context) error {
		var err error
		meta, err = f.resolver.Client().FetchChannelMetadata(ctx, entity)

		return err
	})

	return meta, err
}
