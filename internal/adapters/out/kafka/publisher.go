// Package kafka publishes order lifecycle events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fooddelivery/internal/core/domain/model/order"

	"github.com/IBM/sarama"
)

// DefaultTopic receives one message per order status change.
const DefaultTopic = "order.changed"

// OrderChangedMessage is the JSON body of a message on DefaultTopic.
type OrderChangedMessage struct {
	OrderID    string    `json:"orderId"`
	Reference  string    `json:"reference"`
	Status     string    `json:"status"`
	RiderID    *string   `json:"riderId"`
	Version    int       `json:"version"`
	OccurredAt time.Time `json:"occurredAt"`
}

func newOrderChangedMessage(e order.StatusChanged) OrderChangedMessage {
	msg := OrderChangedMessage{
		OrderID:    e.OrderID.String(),
		Reference:  e.Reference,
		Status:     e.Status.String(),
		Version:    e.Version,
		OccurredAt: e.OccurredAt.UTC(),
	}
	if e.RiderID != nil {
		id := e.RiderID.String()
		msg.RiderID = &id
	}
	return msg
}

// OrderEventPublisher implements ports.OrderEventPublisher on top of a
// sarama SyncProducer. Messages are keyed by order id so every order's
// events land on one partition in order.
type OrderEventPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

func NewOrderEventPublisher(producer sarama.SyncProducer, topic string, logger *slog.Logger) (*OrderEventPublisher, error) {
	if producer == nil {
		return nil, errors.New("kafka producer is required")
	}
	if topic == "" {
		topic = DefaultTopic
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderEventPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "kafka_publisher", "topic", topic),
	}, nil
}

// NewSyncProducer dials the brokers with acks from all in-sync replicas.
func NewSyncProducer(brokers []string) (sarama.SyncProducer, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5
	cfg.Producer.Retry.Backoff = 100 * time.Millisecond
	cfg.Producer.Return.Successes = true
	cfg.Net.DialTimeout = 10 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	return producer, nil
}

func (p *OrderEventPublisher) Publish(ctx context.Context, events ...order.StatusChanged) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]*sarama.ProducerMessage, 0, len(events))
	for _, e := range events {
		body, err := json.Marshal(newOrderChangedMessage(e))
		if err != nil {
			return err
		}
		msgs = append(msgs, &sarama.ProducerMessage{
			Topic: p.topic,
			Key:   sarama.StringEncoder(e.OrderID.String()),
			Value: sarama.ByteEncoder(body),
		})
	}

	if err := p.producer.SendMessages(msgs); err != nil {
		return fmt.Errorf("failed to publish %d order events: %w", len(msgs), err)
	}

	p.logger.DebugContext(ctx, "published order events", "count", len(msgs))
	return nil
}

func (p *OrderEventPublisher) Close() error {
	return p.producer.Close()
}
