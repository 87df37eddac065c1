package notify

import (
	"context"
	"log/slog"

	"go.uber.org/multierr"

	"github.com/matthew11k/outreach/internal/domain/models"
)

// FallbackAlertNotifier tries the secondary transport only when the primary
// one fails. If both fail the caller gets both errors.
type FallbackAlertNotifier struct {
	primary   AlertNotifier
	secondary AlertNotifier
	logger    *slog.Logger
}

func NewFallbackAlertNotifier(primary, secondary AlertNotifier, logger *slog.Logger) *FallbackAlertNotifier {
	return &FallbackAlertNotifier{
		primary:   primary,
		secondary: secondary,
		logger:    logger,
	}
}

func (n *FallbackAlertNotifier) Notify(ctx context.Context, alert *models.Alert) error {
	primaryErr := n.primary.Notify(ctx, alert)
	if primaryErr == nil {
		return nil
	}

	n.logger.Warn("Основной транспорт уведомлений недоступен, пробуем резервный",
		"kind", alert.Kind,
		"error", primaryErr,
	)

	if err := n.secondary.Notify(ctx, alert); err != nil {
		return multierr.Combine(primaryErr, err)
	}

	return nil
}
