package service

import (
	"context"
	"encoding/json"

	"novamind-be/internal/pkg/logger"
	"novamind-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// EventHandler processes one decoded event.
type EventHandler func(ctx context.Context, event events.BaseEvent) error

type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	handler    EventHandler
	logger     logger.ILogger
}

// NewConsumerService subscribes handler to topicName. A nil handler records
// each event in the activity log.
func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	handler EventHandler,
	log logger.ILogger,
) IConsumerService {
	cs := &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		handler:    handler,
		logger:     log,
	}
	if cs.handler == nil {
		cs.handler = cs.logActivity
	}
	return cs
}

// Consume returns once the subscription is set up; messages are handled in
// the background until ctx is done.
func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var event events.BaseEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		cs.logger.Error("EVENTS", "Failed to unmarshal event", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if err := cs.handler(ctx, event); err != nil {
		cs.logger.Error("EVENTS", "Event handler failed", map[string]interface{}{
			"type":  event.Type,
			"error": err.Error(),
		})
		msg.Nack()
		return
	}
	msg.Ack()
}

func (cs *consumerService) logActivity(_ context.Context, event events.BaseEvent) error {
	details := map[string]interface{}{"occurred_at": event.OccurredAt}
	for k, v := range event.Data {
		details[k] = v
	}
	cs.logger.Info("ACTIVITY", event.Type, details)
	return nil
}
