package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/matthew11k/outreach/internal/common/metrics"
	"github.com/matthew11k/outreach/internal/domain/models"
	"github.com/matthew11k/outreach/internal/engine/cache"
	"github.com/matthew11k/outreach/internal/engine/platform"
	"github.com/matthew11k/outreach/internal/engine/repository"
)

const maxJitter = time.Second

// Dispatcher sends queued candidates under the owner's per-minute budget.
type Dispatcher struct {
	counter       SendCounter
	settings      Settings
	candidates    repository.CandidateRepository
	jobs          repository.JobRepository
	owners        repository.OwnerRepository
	txManager     TxManager
	resolver      *platform.Resolver
	statuses      StatusHandler
	strategies    *StrategyTable
	tickInterval  time.Duration
	defaultAnswer string
	rnd           *rand.Rand
	sleep         func(ctx context.Context, d time.Duration)
	logger        *slog.Logger
}

type DispatcherOption func(*Dispatcher)

// WithRand fixes the source used for template, strategy and jitter choices.
func WithRand(rnd *rand.Rand) DispatcherOption {
	return func(d *Dispatcher) {
		d.rnd = rnd
	}
}

func WithSleep(sleep func(ctx context.Context, d time.Duration)) DispatcherOption {
	return func(d *Dispatcher) {
		d.sleep = sleep
	}
}

func NewDispatcher(
	counter SendCounter,
	settings Settings,
	repos *repository.Repositories,
	txManager TxManager,
	resolver *platform.Resolver,
	statuses StatusHandler,
	strategies *StrategyTable,
	tickInterval time.Duration,
	defaultAnswer string,
	logger *slog.Logger,
	opts ...DispatcherOption,
) *Dispatcher {
	d := &Dispatcher{
		counter:       counter,
		settings:      settings,
		candidates:    repos.Candidates,
		jobs:          repos.Jobs,
		owners:        repos.Owners,
		txManager:     txManager,
		resolver:      resolver,
		statuses:      statuses,
		strategies:    strategies,
		tickInterval:  tickInterval,
		defaultAnswer: defaultAnswer,
		rnd:           rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // не криптография
		sleep:         sleepContext,
		logger:        logger,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// BatchSize spreads the remaining budget over the ticks left in the counter window.
func BatchSize(remaining int64, ttl, tick time.Duration) int {
	if remaining <= 0 {
		return 0
	}

	cycles := int64(1)
	if tick > 0 {
		cycles = max(1, int64(math.Ceil(float64(ttl)/float64(tick))))
	}

	batch := int64(math.Ceil(float64(remaining) / float64(cycles)))

	return int(max(1, min(remaining, batch)))
}

// Jitter returns the pause inserted between two sends of one tick.
func Jitter(rnd *rand.Rand, tick time.Duration, batch int) time.Duration {
	if batch <= 1 {
		return 0
	}

	upper := min(maxJitter, tick/time.Duration(batch))
	if upper <= 0 {
		return 0
	}

	return time.Duration(rnd.Int63n(int64(upper)))
}

func (d *Dispatcher) Tick(ctx context.Context, tick *models.TickContext) error {
	ctx, span := tracer.Start(ctx, "Dispatcher.Tick", trace.WithAttributes(attribute.String("run_id", tick.RunID)))
	defer span.End()

	logger := d.logger.With("runID", tick.RunID, "ownerID", tick.OwnerID)

	owner, err := d.settings.OwnerConfig(ctx, tick.OwnerID)
	if err != nil {
		return err
	}

	rate := max(1, owner.SendRatePerMinute)

	used, ttl, err := d.counter.Snapshot(ctx)
	if err != nil {
		return err
	}

	remaining := int64(rate) - used
	metrics.UpdateSendBudget(max(0, remaining))

	if remaining <= 0 {
		logger.Debug("Лимит отправки исчерпан", "rate", rate, "used", used, "ttl", ttl)
		return nil
	}

	batch := BatchSize(remaining, ttl, d.tickInterval)

	if !tick.Working {
		return nil
	}

	if owner.AntiFloodMode {
		return d.collectBatch(ctx, tick, owner, logger)
	}

	return d.send(ctx, tick, rate, batch, logger)
}

// collectBatch hands a full batch of candidates to the operator instead of
// messaging them. A partial batch waits for the next tick.
func (d *Dispatcher) collectBatch(ctx context.Context, tick *models.TickContext, owner *models.OwnerConfig, logger *slog.Logger) error {
	size := max(1, owner.AntiFloodBatchSize)

	pending, err := d.candidates.ListPending(ctx, tick.OwnerID, size)
	if err != nil {
		return err
	}

	if len(pending) < size {
		logger.Debug("Пакет антифлуда еще не набран", "pending", len(pending), "size", size)
		return nil
	}

	ids := lo.Map(pending, func(c *models.Candidate, _ int) int64 { return c.ID })
	handles := lo.Map(pending, func(c *models.Candidate, _ int) string { return c.ExternalUserID })

	err = d.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		if err := d.candidates.MarkSent(ctx, ids, true); err != nil {
			return err
		}

		_, err := d.jobs.Enqueue(ctx, &models.Job{
			OwnerID: tick.OwnerID,
			Kind:    models.JobBatchNotify,
			Metadata: models.EncodeJobPayload(models.JobPayload{
				Handles:      handles,
				CandidateIDs: ids,
			}),
		})

		return err
	})
	if err != nil {
		return err
	}

	logger.Info("Сформирован пакет антифлуда", "size", len(ids))

	return nil
}

func (d *Dispatcher) send(ctx context.Context, tick *models.TickContext, rate, batch int, logger *slog.Logger) error {
	pending, err := d.candidates.ListPending(ctx, tick.OwnerID, batch)
	if err != nil {
		return err
	}

	if len(pending) == 0 {
		return nil
	}

	answers, err := d.settings.Answers(ctx, tick.OwnerID)
	if err != nil {
		return err
	}

	sent := make([]int64, 0, len(pending))

	for i, candidate := range pending {
		if ctx.Err() != nil {
			break
		}

		if i > 0 {
			d.sleep(ctx, Jitter(d.rnd, d.tickInterval, len(pending)))
		}

		ok, err := d.counter.Acquire(ctx, rate)
		if err != nil {
			logger.Error("Не удалось занять слот отправки", "error", err)
			break
		}

		if !ok {
			logger.Debug("Слоты отправки закончились", "sent", len(sent))
			break
		}

		strategy := d.strategies.Choose(d.rnd)

		delivered, err := sendWithStrategy(ctx, d.resolver, strategy, candidate, d.pickAnswer(answers))
		metrics.RecordSend(string(strategy), delivered)

		if delivered {
			sent = append(sent, candidate.ID)

			logger.Info("Сообщение отправлено",
				"candidateID", candidate.ID,
				"peer", candidate.ExternalUserID,
				"strategy", strategy,
			)
		} else if err := d.counter.Release(ctx); err != nil {
			logger.Error("Не удалось освободить слот отправки", "error", err)
		}

		if err == nil {
			continue
		}

		if delivered {
			logger.Warn("Ответ доставлен, пересылка поста не удалась",
				"candidateID", candidate.ID,
				"error", err,
			)
		}

		status := platform.NewStatus(err, "", candidate.ExternalUserID)
		d.statuses.Handle(ctx, tick, status)

		if !delivered {
			d.dropUndeliverable(ctx, candidate, status.Kind, logger)
		}

		if status.Kind == models.StatusRateLimited {
			d.enableAntiFlood(ctx, tick, logger)
			break
		}
	}

	if len(sent) == 0 {
		return nil
	}

	return d.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		return d.candidates.MarkSent(ctx, sent, false)
	})
}

// dropUndeliverable takes a candidate out of the queue when the peer itself
// rejects messages. Connection and rate limit failures keep it queued.
func (d *Dispatcher) dropUndeliverable(ctx context.Context, candidate *models.Candidate, kind models.StatusKind, logger *slog.Logger) {
	if kind != models.StatusNotFound && kind != models.StatusForbidden {
		return
	}

	meta, err := json.Marshal(&models.DecisionMeta{Undeliverable: string(kind)})
	if err != nil {
		logger.Error("Ошибка при сериализации метаданных решения", "error", err)
		return
	}

	if err := d.candidates.MarkUndeliverable(ctx, candidate.ID, meta); err != nil {
		logger.Error("Не удалось исключить кандидата из очереди",
			"candidateID", candidate.ID,
			"error", err,
		)

		return
	}

	logger.Warn("Кандидат исключен из очереди отправки",
		"candidateID", candidate.ID,
		"peer", candidate.ExternalUserID,
		"status", kind,
	)
}

func (d *Dispatcher) enableAntiFlood(ctx context.Context, tick *models.TickContext, logger *slog.Logger) {
	logger.Warn("Платформа ограничила отправку, включаем антифлуд")

	if err := d.owners.SetAntiFloodMode(ctx, tick.OwnerID, true); err != nil {
		logger.Error("Не удалось включить антифлуд", "error", err)
		return
	}

	if err := d.settings.Invalidate(ctx, cache.KeyOwnerConfig); err != nil {
		logger.Error("Не удалось сбросить кэш настроек", "error", err)
	}
}

func (d *Dispatcher) pickAnswer(answers []string) string {
	if len(answers) == 0 {
		return d.defaultAnswer
	}

	return answers[d.rnd.Intn(len(answers))]
}

func sleepContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
