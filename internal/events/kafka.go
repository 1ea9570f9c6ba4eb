package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaPublisher struct {
	writer messageWriter
	topic  string
	log    *slog.Logger
}

func NewKafkaPublisher(writer messageWriter, topic string, log *slog.Logger) *KafkaPublisher {
	if topic == "" {
		topic = EmployeeLifecycleTopic
	}

	return &KafkaPublisher{
		writer: writer,
		topic:  topic,
		log:    log,
	}
}

// NewKafkaWriter returns a writer that hashes on the message key, so events of one
// employee land on one partition in publish order.
func NewKafkaWriter(brokers []string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event EmployeeEvent) error {
	const op = "internal.events.Publish"

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%s: failed to marshal event: %w", op, err)
	}

	msg := kafka.Message{
		Topic: p.topic,
		Key:   []byte(event.EmployeeID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%s: failed to write message: %w", op, err)
	}

	p.log.Debug("event published",
		slog.String("op", op),
		slog.String("event_type", event.EventType),
		slog.String("employee_id", event.EmployeeID),
	)

	return nil
}
