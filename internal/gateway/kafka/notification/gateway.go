package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
	retrierconfig "dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 50 * time.Millisecond
	maxInterval     = 500 * time.Millisecond
	maxElapsedTime  = 2 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// notificationMessage — формат события в топике уведомлений.
type notificationMessage struct {
	MessageID   string `json:"message_id"`
	Recipient   string `json:"recipient"`
	RecipientID string `json:"recipient_id"`
	Event       string `json:"event"`
	OrderID     string `json:"order_id"`
	Message     string `json:"message"`
	OccurredAt  string `json:"occurred_at"`
}

type Gateway struct {
	producer sarama.SyncProducer
	topic    string
	retrier  retrier
	log      gatewayLogger
}

func New(brokers []string, topic string, log gatewayLogger) (*Gateway, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3
	config.Producer.Retry.Backoff = 250 * time.Millisecond
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("create notification producer: %w", err)
	}

	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
	}

	return &Gateway{
		producer: producer,
		topic:    topic,
		retrier:  backoff_adapter.New(retryConfig),
		log:      log.With(logger.NewField("topic", topic)),
	}, nil
}

// Send публикует уведомление. Ключ партиционирования — получатель, чтобы
// события одного курьера/вендора читались по порядку.
func (g *Gateway) Send(ctx context.Context, n entities.Notification) error {
	// message_id дает потребителям ключ дедупликации при ретраях продюсера.
	payload, err := json.Marshal(notificationMessage{
		MessageID:   uuid.NewString(),
		Recipient:   n.Recipient.String(),
		RecipientID: n.RecipientID,
		Event:       n.Event.String(),
		OrderID:     n.OrderID,
		Message:     n.Message,
		OccurredAt:  time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: g.topic,
		Key:   sarama.StringEncoder(n.Recipient.String() + ":" + n.RecipientID),
		Value: sarama.ByteEncoder(payload),
	}

	start := time.Now()

	err = g.retrier.ExecuteWithContext(ctx, func(context.Context) error {
		_, _, sendErr := g.producer.SendMessage(msg)
		return sendErr
	})

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	NotificationsPublishedTotal.WithLabelValues(n.Event.String(), n.Recipient.String(), outcome).Inc()
	NotificationPublishDuration.WithLabelValues(n.Event.String(), outcome).Observe(time.Since(start).Seconds())

	if err != nil {
		g.log.With(
			logger.NewField("event", n.Event.String()),
			logger.NewField("order", n.OrderID),
			logger.NewField("error", err),
		).Error("notification publish failed")
		return fmt.Errorf("gateway notification, send %s: %w", n.Event.String(), err)
	}

	g.log.With(
		logger.NewField("event", n.Event.String()),
		logger.NewField("order", n.OrderID),
	).Debug("notification published")

	return nil
}

func (g *Gateway) Close() error {
	return g.producer.Close()
}
