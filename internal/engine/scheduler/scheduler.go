package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/matthew11k/outreach/internal/common/metrics"
	"github.com/matthew11k/outreach/internal/domain/models"
)

var tracer = otel.Tracer("github.com/matthew11k/outreach/internal/engine/scheduler")

type IdentityProvider interface {
	Current(ctx context.Context) (*models.TickContext, error)
}

type Pass interface {
	Tick(ctx context.Context, tick *models.TickContext) error
}

// Component is one periodic pass of the engine.
type Component struct {
	Name       string
	Interval   time.Duration
	Pass       Pass
	RunAtStart bool
}

// Scheduler runs every component on its own gocron job. A job never overlaps
// with itself: an overrun delays the next tick of that component only.
type Scheduler struct {
	scheduler   *gocron.Scheduler
	identity    IdentityProvider
	components  []Component
	tickTimeout time.Duration
	logger      *slog.Logger
}

func NewScheduler(identity IdentityProvider, components []Component, tickTimeout time.Duration, logger *slog.Logger) *Scheduler {
	scheduler := gocron.NewScheduler(time.UTC)
	scheduler.SingletonModeAll()

	return &Scheduler{
		scheduler:   scheduler,
		identity:    identity,
		components:  components,
		tickTimeout: tickTimeout,
		logger:      logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	for _, component := range s.components {
		s.logger.Info("Запуск компонента планировщика",
			"component", component.Name,
			"interval", component.Interval.String(),
		)

		job := s.scheduler.Every(component.Interval)
		if !component.RunAtStart {
			job = job.WaitForSchedule()
		}

		_, err := job.SingletonMode().Do(s.RunOnce, ctx, component)
		if err != nil {
			s.logger.Error("Ошибка при настройке планировщика",
				"component", component.Name,
				"error", err,
			)

			return fmt.Errorf("ошибка при настройке компонента %s: %w", component.Name, err)
		}
	}

	s.scheduler.StartAsync()

	return nil
}

// RunOnce executes one tick of the component. Errors and panics are logged
// and never leave the scheduler goroutine.
func (s *Scheduler) RunOnce(ctx context.Context, component Component) {
	logger := s.logger.With("component", component.Name)

	ctx, cancel := context.WithTimeout(ctx, s.tickTimeout)
	defer cancel()

	start := time.Now()

	var err error

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("паника: %v", r)
			logger.Error("Паника в проходе планировщика", "panic", r)
		}

		metrics.RecordPass(component.Name, err, time.Since(start))
	}()

	tick, err := s.identity.Current(ctx)
	if err != nil {
		logger.Error("Не удалось определить бота для прохода", "error", err)
		return
	}

	ctx, span := tracer.Start(ctx, "scheduler."+component.Name, trace.WithAttributes(
		attribute.String("run_id", tick.RunID),
		attribute.Int64("bot_id", tick.BotID),
	))
	defer span.End()

	err = component.Pass.Tick(ctx, tick)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		logger.Error("Ошибка при выполнении прохода",
			"runID", tick.RunID,
			"error", err,
		)

		return
	}

	logger.Debug("Проход завершен",
		"runID", tick.RunID,
		"duration", time.Since(start),
	)
}

func (s *Scheduler) Stop() {
	s.logger.Info("Остановка планировщика")
	s.scheduler.Stop()
}
