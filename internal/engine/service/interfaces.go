package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/matthew11k/outreach/internal/domain/models"
)

var tracer = otel.Tracer("github.com/matthew11k/outreach/internal/engine/service")

type TxManager interface {
	WithTransaction(ctx context.Context, txFunc func(ctx context.Context) error) error
}

type CursorStore interface {
	Get(ctx context.Context, channelRef string) (int64, bool, error)
	Set(ctx context.Context, channelRef string, position int64) error
	Delete(ctx context.Context, channelRef string) error
}

type SendCounter interface {
	Snapshot(ctx context.Context) (int64, time.Duration, error)
	Acquire(ctx context.Context, limit int) (bool, error)
	Release(ctx context.Context) error
}

// Settings serves the owner's rule sets and configuration, cached for a short TTL.
type Settings interface {
	Rules(ctx context.Context, ownerID int64) (models.RuleSet, error)
	Answers(ctx context.Context, ownerID int64) ([]string, error)
	Banned(ctx context.Context, ownerID int64) ([]string, error)
	OwnerConfig(ctx context.Context, ownerID int64) (*models.OwnerConfig, error)
	Invalidate(ctx context.Context, keys ...string) error
}

type StatusHandler interface {
	Handle(ctx context.Context, tick *models.TickContext, status *models.Status)
}

type MessageFetcher interface {
	FetchNew(ctx context.Context, tick *models.TickContext, channel *models.MonitoredChannel) ([]models.Message, *models.Status)
}
