// Package kafka publishes order events to the realtime order feed.
package kafka

import (
	"context"
	"fmt"

	"storefront/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// OrderChangedTopic is the default topic for order events. Messages are
// keyed by order id so events of one order stay in order.
const OrderChangedTopic = "order-changed"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderEventPublisher implements ports.EventPublisher.
type OrderEventPublisher struct {
	writer messageWriter
}

// NewOrderEventPublisher writes to topic on brokers; an empty topic means
// OrderChangedTopic.
func NewOrderEventPublisher(topic string, brokers ...string) *OrderEventPublisher {
	if topic == "" {
		topic = OrderChangedTopic
	}
	return NewOrderEventPublisherWithWriter(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	})
}

func NewOrderEventPublisherWithWriter(writer messageWriter) *OrderEventPublisher {
	return &OrderEventPublisher{writer: writer}
}

// Publish sends one outbox message. The payload is already JSON.
func (p *OrderEventPublisher) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.AggregateID.String()),
		Value: msg.Payload,
		Time:  msg.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(msg.EventName)},
			{Key: "event_id", Value: []byte(msg.ID.String())},
		},
	})
	if err != nil {
		return fmt.Errorf("publish %s %s: %w", msg.EventName, msg.ID, err)
	}
	return nil
}

func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}
