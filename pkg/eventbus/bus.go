package eventbus

import (
	"context"
	"encoding/json"
	"time"

	"givebridge-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Forwarder mirrors locally published events onto an external bus.
// Implemented by the NATS publisher; nil when NATS is not configured.
type Forwarder interface {
	Publish(ctx context.Context, event events.Event) error
}

// Handler processes a single domain event.
type Handler func(ctx context.Context, event events.Event) error

type envelope struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}

// Bus is the in-process domain event bus. Each event code is a watermill
// topic; publishing never blocks the calling workflow.
type Bus struct {
	pubSub    *gochannel.GoChannel
	forwarder Forwarder
	logger    watermill.LoggerAdapter
}

func New(forwarder Forwarder) *Bus {
	wmLogger := watermill.NewStdLogger(false, false)
	return &Bus{
		pubSub:    gochannel.NewGoChannel(gochannel.Config{}, wmLogger),
		forwarder: forwarder,
		logger:    wmLogger,
	}
}

// Publish delivers the event to local subscribers and, when configured,
// forwards it to the external bus. Forwarding failures are logged, not
// returned: the triggering workflow has already committed.
func (b *Bus) Publish(ctx context.Context, event events.Event) error {
	payload, err := json.Marshal(envelope{
		Type:       event.EventType(),
		Data:       event.Payload(),
		OccurredAt: event.Timestamp(),
	})
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := b.pubSub.Publish(event.EventType(), msg); err != nil {
		return err
	}

	if b.forwarder != nil {
		if err := b.forwarder.Publish(ctx, event); err != nil {
			b.logger.Error("failed to forward event", err, watermill.LogFields{"type": event.EventType()})
		}
	}
	return nil
}

// Subscribe registers a handler for one event code. The handler runs on the
// subscriber goroutine; a handler error nacks the message.
func (b *Bus) Subscribe(ctx context.Context, eventType string, handler Handler) error {
	messages, err := b.pubSub.Subscribe(ctx, eventType)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			var env envelope
			if err := json.Unmarshal(msg.Payload, &env); err != nil {
				b.logger.Error("failed to decode event", err, watermill.LogFields{"topic": eventType})
				msg.Ack()
				continue
			}

			event := events.BaseEvent{
				Type:       env.Type,
				Data:       env.Data,
				OccurredAt: env.OccurredAt,
			}

			if err := handler(ctx, event); err != nil {
				b.logger.Error("event handler failed", err, watermill.LogFields{"topic": eventType})
				msg.Nack()
				continue
			}
			msg.Ack()
		}
	}()

	return nil
}

// Close shuts down the underlying pubsub.
func (b *Bus) Close() error {
	return b.pubSub.Close()
}
