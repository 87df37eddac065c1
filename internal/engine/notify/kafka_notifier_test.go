package notify_test

import (
	"context"
	"encoding/json"
	"net"
	"strconv"
	"testing"
	"time"

	segkafka "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"

	"github.com/matthew11k/outreach/internal/domain/models"
	"github.com/matthew11k/outreach/internal/engine/notify"
)

const alertsTopic = "outreach-alerts-test"

func createTopic(t *testing.T, broker string) {
	t.Helper()

	conn, err := segkafka.Dial("tcp", broker)
	require.NoError(t, err)

	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err)

	controllerConn, err := segkafka.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	require.NoError(t, err)

	defer controllerConn.Close()

	require.NoError(t, controllerConn.CreateTopics(segkafka.TopicConfig{
		Topic:             alertsTopic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	}))
}

func TestKafkaAlertNotifier_PublishesAlert(t *testing.T) {
	if testing.Short() {
		t.Skip("пропуск интеграционного теста в коротком режиме")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	container, err := tckafka.Run(ctx, "confluentinc/confluent-local:7.5.0", tckafka.WithClusterID("outreach-test"))
	require.NoError(t, err)

	defer func() {
		_ = testcontainers.TerminateContainer(container)
	}()

	brokers, err := container.Brokers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, brokers)

	createTopic(t, brokers[0])

	notifier := notify.NewKafkaAlertNotifier(brokers, alertsTopic, discardLogger())

	defer func() {
		_ = notifier.Close()
	}()

	alert := batchAlert()
	require.NoError(t, notifier.Notify(ctx, alert))

	reader := segkafka.NewReader(segkafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    alertsTopic,
		MinBytes: 1,
		MaxBytes: 1 << 20,
	})

	defer reader.Close()

	readCtx, readCancel := context.WithTimeout(ctx, 30*time.Second)
	defer readCancel()

	msg, err := reader.ReadMessage(readCtx)
	require.NoError(t, err)

	var got models.Alert
	require.NoError(t, json.Unmarshal(msg.Value, &got))

	assert.Equal(t, alert.Kind, got.Kind)
	assert.Equal(t, alert.BotID, got.BotID)
	assert.Equal(t, alert.Handles, got.Handles)
	assert.True(t, alert.CreatedAt.Equal(got.CreatedAt))

	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "kind", msg.Headers[0].Key)
	assert.Equal(t, string(models.AlertBatch), string(msg.Headers[0].Value))
}
