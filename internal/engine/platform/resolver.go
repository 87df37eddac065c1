package platform

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/matthew11k/outreach/internal/domain/models"
)

// Resolver wraps provider calls with a bounded timeout and turns expected
// failures into a Status.
type Resolver struct {
	client  Client
	timeout time.Duration
	logger  *slog.Logger
}

func NewResolver(client Client, timeout time.Duration, logger *slog.Logger) *Resolver {
	return &Resolver{
		client:  client,
		timeout: timeout,
		logger:  logger,
	}
}

func (r *Resolver) Client() Client {
	return r.client
}

// Call runs fn under the call timeout. A deadline is reported as a connection failure.
func (r *Resolver) Call(ctx context.Context, fn func(ctx context.Context) error) error {
	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	err := fn(callCtx)
	if err != nil && errors.Is(callCtx.Err(), context.DeadlineExceeded) {
		return errors.Join(ErrConnection, err)
	}

	return err
}

// Resolve looks the ref up once more after refreshing dialogs when the first
// lookup reports not found.
func (r *Resolver) Resolve(ctx context.Context, ref string) (*models.Entity, *models.Status) {
	entity, err := r.resolveOnce(ctx, ref)
	if err == nil {
		return entity, nil
	}

	if !errors.Is(err, ErrNotFound) {
		status := NewStatus(err, ref, "")

		r.logger.Warn("Не удалось получить сущность",
			"ref", ref,
			"status", status.Kind,
			"error", err,
		)

		return nil, status
	}

	r.logger.Info("Сущность не найдена, обновляем список диалогов",
		"ref", ref,
	)

	if refreshErr := r.Call(ctx, r.client.RefreshDialogs); refreshErr != nil {
		return nil, NewStatus(refreshErr, ref, "")
	}

	entity, err = r.resolveOnce(ctx, ref)
	if err != nil {
		return nil, NewStatus(err, ref, "")
	}

	return entity, nil
}

func (r *Resolver) resolveOnce(ctx context.Context, ref string) (*models.Entity, error) {
	var entity *models.Entity

	err := r.Call(ctx, func(ctx context.Context) error {
		var err error
		entity, err = r.client.ResolveEntity(ctx, ref)

		return err
	})

	return entity, err
}
