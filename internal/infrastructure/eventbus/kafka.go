// Package eventbus publishes place-order events to Kafka for downstream
// subsystems (shipping, billing).
package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/orderflow/order-taking-service/internal/domain"
	"github.com/orderflow/order-taking-service/pkg/logging"
	"github.com/orderflow/order-taking-service/pkg/metrics"
)

// Config holds Kafka publisher configuration.
type Config struct {
	Brokers      []string
	Topic        string
	BatchTimeout time.Duration
	RequiredAcks int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig(brokers []string, topic string) *Config {
	return &Config{
		Brokers:      brokers,
		Topic:        topic,
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: -1,
	}
}

// KafkaPublisher writes place-order events to a single topic, keyed by order
// id so all events of one order land on one partition, in order.
type KafkaPublisher struct {
	writer  *kafka.Writer
	source  string
	logger  *logging.Logger
	metrics *metrics.Metrics
}

// NewKafkaPublisher creates a new KafkaPublisher.
func NewKafkaPublisher(config *Config, source string, logger *logging.Logger, m *metrics.Metrics) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(config.Brokers...),
		Topic:        config.Topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: config.BatchTimeout,
		RequiredAcks: kafka.RequiredAcks(config.RequiredAcks),
		Async:        false,
	}
	return &KafkaPublisher{
		writer:  writer,
		source:  source,
		logger:  logger.WithComponent("event-publisher"),
		metrics: m,
	}
}

// Publish implements workflow.EventPublisher. Events are written in the
// order they were assembled.
func (p *KafkaPublisher) Publish(ctx context.Context, events []domain.PlaceOrderEvent) error {
	messages := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		data, err := json.Marshal(event)
		if err != nil {
			p.recordAll(events, "failure")
			return fmt.Errorf("marshal event %s: %w", event.EventType(), err)
		}
		messages = append(messages, kafka.Message{
			Key:   []byte(event.AggregateID()),
			Value: data,
			Headers: []kafka.Header{
				{Key: "ce-type", Value: []byte(event.EventType())},
				{Key: "ce-source", Value: []byte(p.source)},
				{Key: "ce-time", Value: []byte(event.OccurredAt().Format(time.RFC3339))},
				{Key: "content-type", Value: []byte("application/json")},
			},
			Time: event.OccurredAt(),
		})
	}

	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		p.recordAll(events, "failure")
		return fmt.Errorf("publish events to topic %s: %w", p.writer.Topic, err)
	}

	p.recordAll(events, "success")
	return nil
}

func (p *KafkaPublisher) recordAll(events []domain.PlaceOrderEvent, status string) {
	for _, event := range events {
		p.metrics.RecordEventPublished(event.EventType(), status)
	}
}

// Close closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
