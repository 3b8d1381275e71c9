package service

import (
	"context"
	"encoding/json"
	"fmt"

	"novamind-be/internal/pkg/logger"
	"novamind-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

type IPublisherService interface {
	Publish(ctx context.Context, event events.Event)
}

// EventMirror receives a copy of every published event (the NATS publisher in production).
type EventMirror interface {
	Publish(ctx context.Context, event events.Event) error
}

type publisherService struct {
	publisher message.Publisher
	topic     string
	mirror    EventMirror
	logger    logger.ILogger
}

// NewPublisherService publishes onto the in-process bus; mirror may be nil.
func NewPublisherService(publisher message.Publisher, topic string, mirror EventMirror, log logger.ILogger) IPublisherService {
	return &publisherService{
		publisher: publisher,
		topic:     topic,
		mirror:    mirror,
		logger:    log,
	}
}

// Publish never fails the caller; delivery problems are only logged.
func (p *publisherService) Publish(ctx context.Context, event events.Event) {
	if err := p.publishLocal(event); err != nil {
		p.logger.Error("EVENTS", "Failed to publish event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
	}

	if p.mirror == nil {
		return
	}
	if err := p.mirror.Publish(ctx, event); err != nil {
		p.logger.Warn("EVENTS", "Failed to mirror event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
	}
}

func (p *publisherService) publishLocal(event events.Event) error {
	payload, err := json.Marshal(events.BaseEvent{
		Type:       event.EventType(),
		Data:       event.Payload(),
		OccurredAt: event.Timestamp(),
	})
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("type", event.EventType())

	return p.publisher.Publish(p.topic, msg)
}
