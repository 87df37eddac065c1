package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/matthew11k/outreach/internal/domain/models"
)

// MessageSender is the part of the Telegram client the notifier needs.
type MessageSender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

type TelegramAlertNotifier struct {
	sender MessageSender
	chatID int64
	logger *slog.Logger
}

func NewTelegramAlertNotifier(sender MessageSender, chatID int64, logger *slog.Logger) *TelegramAlertNotifier {
	return &TelegramAlertNotifier{
		sender: sender,
		chatID: chatID,
		logger: logger,
	}
}

func (n *TelegramAlertNotifier) Notify(ctx context.Context, alert *models.Alert) error {
	n.logger.Info("Отправка уведомления оператору в Telegram",
		"kind", alert.Kind,
		"chatID", n.chatID,
	)

	if err := n.sender.SendMessage(ctx, n.chatID, FormatAlert(alert)); err != nil {
		return fmt.Errorf("ошибка при отправке уведомления в Telegram: %w", err)
	}

	return nil
}
