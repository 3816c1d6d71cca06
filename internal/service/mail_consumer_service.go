package service

import (
	"context"

	"givebridge-be/internal/pkg/logger"
	"givebridge-be/internal/pkg/mailer"
	"givebridge-be/pkg/eventbus"
	"givebridge-be/pkg/events"
)

// MailConsumer listens for approval events and sends the matching emails.
// It runs off the event bus so approval requests never wait on SMTP.
type MailConsumer struct {
	email  mailer.IEmailService
	bus    *eventbus.Bus
	logger logger.ILogger
}

func NewMailConsumer(email mailer.IEmailService, bus *eventbus.Bus, log logger.ILogger) *MailConsumer {
	return &MailConsumer{email: email, bus: bus, logger: log}
}

// Start registers the consumer's subscriptions. Must be called once during
// bootstrap, before the server starts accepting requests.
func (c *MailConsumer) Start(ctx context.Context) error {
	if err := c.bus.Subscribe(ctx, events.TypeNGOApproved, c.onNGOApproved); err != nil {
		return err
	}
	return c.bus.Subscribe(ctx, events.TypeCampaignApproved, c.onCampaignApproved)
}

func stringField(event events.Event, key string) string {
	v, _ := event.Payload()[key].(string)
	return v
}

func (c *MailConsumer) onNGOApproved(ctx context.Context, event events.Event) error {
	email := stringField(event, "email")
	if email == "" {
		c.logger.Warn("mail_consumer", "ngo approval event without email", map[string]interface{}{
			"user_id": stringField(event, "user_id"),
		})
		return nil
	}

	ngoName := stringField(event, "ngo_name")
	if err := c.email.SendNGOApproval(email, ngoName); err != nil {
		c.logger.Error("mail_consumer", "failed to send ngo approval email", map[string]interface{}{
			"email": email,
			"error": err.Error(),
		})
	}
	// Mail failures are logged, not nacked. Retrying through the bus would
	// resend on every redelivery without ever succeeding against a dead SMTP.
	return nil
}

func (c *MailConsumer) onCampaignApproved(ctx context.Context, event events.Event) error {
	email := stringField(event, "email")
	if email == "" {
		c.logger.Warn("mail_consumer", "campaign approval event without email", map[string]interface{}{
			"campaign_id": stringField(event, "campaign_id"),
		})
		return nil
	}

	title := stringField(event, "title")
	if err := c.email.SendCampaignApproval(email, title); err != nil {
		c.logger.Error("mail_consumer", "failed to send campaign approval email", map[string]interface{}{
			"email": email,
			"error": err.Error(),
		})
	}
	return nil
}
