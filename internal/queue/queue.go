package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/CrossChainLabs-FIL/filmarket-registry/consumer"
	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/config"
)

const exchangeName = "filmarket.registry"

type QueueManager struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *zap.Logger
}

func NewQueueManager(cfg *config.QueueConfig, logger *zap.Logger) (*QueueManager, error) {
	amqpURI := fmt.Sprintf("amqp://%s:%s@%s", cfg.QueueUser, cfg.QueuePassword, cfg.Url)

	conn, err := amqp.Dial(amqpURI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchangeName,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchangeName, err)
	}

	logger.Info("connected to rabbitmq", zap.String("exchange", exchangeName))

	return &QueueManager{
		conn:    conn,
		channel: channel,
		logger:  logger,
	}, nil
}

// PublishRegistryEvent sends the event to the registry exchange using the
// event type as routing key.
func (qm *QueueManager) PublishRegistryEvent(ctx context.Context, event *consumer.RegistryEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal registry event: %w", err)
	}

	err = qm.channel.PublishWithContext(
		ctx,
		exchangeName,
		event.Type.String(),
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Timestamp:   time.Now(),
			Body:        body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish registry event %s: %w", event.Type, err)
	}

	qm.logger.Debug("published registry event",
		zap.String("type", event.Type.String()),
		zap.String("account", event.Account),
		zap.Int("count", event.Count),
	)

	return nil
}

// Shutdown gracefully stops the interaction with the queue, ensuring all resources are properly released.
func (qm *QueueManager) Shutdown() {
	qm.logger.Info("shutting down queue manager")

	if err := qm.channel.Close(); err != nil {
		qm.logger.Error("failed to close rabbitmq channel", zap.Error(err))
	}
	if err := qm.conn.Close(); err != nil {
		qm.logger.Error("failed to close rabbitmq connection", zap.Error(err))
	}
}
