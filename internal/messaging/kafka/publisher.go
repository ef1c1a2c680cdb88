package kafka

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"go-hrgen/internal/events"
)

type EventPublisher interface {
	PublishDatasetGenerated(ctx context.Context, event events.DatasetGeneratedEvent) error
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishDatasetGenerated(context.Context, events.DatasetGeneratedEvent) error {
	return nil
}

type kafkaEventPublisher struct {
	writer *kafka.Writer
}

func NewEventPublisher(writer *kafka.Writer) EventPublisher {
	return &kafkaEventPublisher{writer: writer}
}

func (p *kafkaEventPublisher) PublishDatasetGenerated(
	ctx context.Context,
	event events.DatasetGeneratedEvent,
) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: events.DatasetGeneratedTopic,
		Key:   []byte(event.RunID),
		Value: payload,
	})
}
