package notify

import (
	"log/slog"
	"strings"

	"github.com/matthew11k/outreach/internal/config"
	customerrors "github.com/matthew11k/outreach/internal/domain/errors"
)

type TransportType string

const (
	TelegramTransport TransportType = "TELEGRAM"
	KafkaTransport    TransportType = "KAFKA"
)

type NotifierFactory struct {
	config *config.Config
	sender MessageSender
	logger *slog.Logger
}

// NewNotifierFactory takes the Telegram sender up front; it may be nil when
// neither transport is Telegram.
func NewNotifierFactory(cfg *config.Config, sender MessageSender, logger *slog.Logger) *NotifierFactory {
	return &NotifierFactory{
		config: cfg,
		sender: sender,
		logger: logger,
	}
}

// CreateNotifier builds the configured transport and wraps it in a fallback
// when FALLBACK_ENABLED is set.
func (f *NotifierFactory) CreateNotifier() (AlertNotifier, error) {
	primary, err := f.create(f.config.AlertTransport)
	if err != nil {
		return nil, err
	}

	if !f.config.FallbackEnabled || strings.EqualFold(f.config.FallbackTransport, f.config.AlertTransport) {
		return primary, nil
	}

	secondary, err := f.create(f.config.FallbackTransport)
	if err != nil {
		return nil, err
	}

	f.logger.Info("Включен резервный транспорт уведомлений",
		"primary", f.config.AlertTransport,
		"fallback", f.config.FallbackTransport,
	)

	return NewFallbackAlertNotifier(primary, secondary, f.logger), nil
}

func (f *NotifierFactory) create(transport string) (AlertNotifier, error) {
	transportType := TransportType(strings.ToUpper(transport))

	f.logger.Info("Создание нотификатора", "type", transportType)

	switch transportType {
	case TelegramTransport:
		if f.sender == nil {
			return nil, &customerrors.ErrMissingRequiredField{FieldName: "CONTROL_BOT_TOKEN"}
		}

		return NewTelegramAlertNotifier(f.sender, f.config.AlertChatID, f.logger), nil
	case KafkaTransport:
		brokers := strings.Split(f.config.KafkaBrokers, ",")
		return NewKafkaAlertNotifier(brokers, f.config.TopicAlerts, f.logger), nil
	default:
		return nil, &customerrors.ErrUnknownAlertTransport{Transport: transport}
	}
}
