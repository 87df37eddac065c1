package notify

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/matthew11k/outreach/internal/domain/models"
)

type AlertNotifier interface {
	Notify(ctx context.Context, alert *models.Alert) error
}

// FormatAlert renders an alert as Telegram HTML.
func FormatAlert(alert *models.Alert) string {
	var b strings.Builder

	switch alert.Kind {
	case models.AlertBatch:
		b.WriteString("📦 <b>Пакет кандидатов</b>")
	case models.AlertConnectivity:
		b.WriteString("🔌 <b>Нет соединения с платформой</b>")
	case models.AlertThrottle:
		b.WriteString("⏳ <b>Платформа ограничила отправку</b>")
	case models.AlertChannelLost:
		b.WriteString("🚫 <b>Канал недоступен</b>")
	default:
		b.WriteString("ℹ️ <b>Уведомление</b>")
	}

	fmt.Fprintf(&b, "\nБот: %d", alert.BotID)

	if alert.Text != "" {
		b.WriteString("\n\n")
		b.WriteString(html.EscapeString(alert.Text))
	}

	if len(alert.Handles) > 0 {
		b.WriteString("\n")

		for _, handle := range alert.Handles {
			b.WriteString("\n")
			b.WriteString(html.EscapeString(handle))
		}
	}

	return b.String()
}
