package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/matthew11k/outreach/internal/domain/models"
)

type KafkaAlertNotifier struct {
	producer *kafka.Writer
	topic    string
	logger   *slog.Logger
}

func NewKafkaAlertNotifier(brokers []string, topic string, logger *slog.Logger) *KafkaAlertNotifier {
	producer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
		Logger:                 kafka.LoggerFunc(logger.Debug),
		ErrorLogger:            kafka.LoggerFunc(logger.Error),
	}

	return &KafkaAlertNotifier{
		producer: producer,
		topic:    topic,
		logger:   logger,
	}
}

func (n *KafkaAlertNotifier) Notify(ctx context.Context, alert *models.Alert) error {
	n.logger.Info("Отправка уведомления в Kafka",
		"kind", alert.Kind,
		"topic", n.topic,
	)

	value, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("ошибка при сериализации уведомления: %w", err)
	}

	err = n.producer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(uuid.NewString()),
		Value: value,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(alert.Kind)},
		},
		Time: time.Now(),
	})
	if err != nil {
		n.logger.Error("Ошибка при отправке сообщения в Kafka", "error", err)

		return fmt.Errorf("ошибка при отправке сообщения в Kafka: %w", err)
	}

	return nil
}

func (n *KafkaAlertNotifier) Close() error {
	return n.producer.Close()
}
