// Package notifier delivers assignment notifications through one configured transport:
// the application log, an Azure Service Bus queue or a RabbitMQ exchange.
package notifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"shopdelivery/internal/core/ports"

	"github.com/jonboulle/clockwork"
)

const (
	TypeLog        = "log"
	TypeServiceBus = "servicebus"
	TypeRabbitMQ   = "rabbitmq"

	// EventAssigned names the event every message carries.
	EventAssigned = "delivery_package.assigned"
	source        = "shopdelivery"
)

// Message is the wire form of a notification.
type Message struct {
	Event              string    `json:"event"`
	RecipientAccountID string    `json:"recipientAccountId"`
	PackageID          string    `json:"packageId"`
	Title              string    `json:"title"`
	Body               string    `json:"body"`
	SentAt             time.Time `json:"sentAt"`
}

// Provider is a notification transport. Implementations are selected by Type.
type Provider interface {
	Type() string
	Publish(ctx context.Context, message Message) error
	Close() error
}

// Config selects and connects a transport. Only the fields of the chosen Type are read.
type Config struct {
	Type                       string
	ServiceBusConnectionString string
	ServiceBusQueue            string
	RabbitMQURL                string
	RabbitMQExchange           string
}

// NewProvider connects the transport named by cfg.Type.
func NewProvider(cfg Config, logger *slog.Logger) (Provider, error) {
	switch cfg.Type {
	case TypeLog, "":
		return NewLogProvider(logger), nil
	case TypeServiceBus:
		return NewServiceBusProvider(cfg.ServiceBusConnectionString, cfg.ServiceBusQueue)
	case TypeRabbitMQ:
		return NewRabbitMQProvider(cfg.RabbitMQURL, cfg.RabbitMQExchange)
	default:
		return nil, fmt.Errorf("no notification provider registered for type %q", cfg.Type)
	}
}

var _ ports.Notifier = (*Notifier)(nil)

// Notifier turns notifications into Messages stamped with the clock and hands them to
// one Provider.
type Notifier struct {
	provider Provider
	clock    clockwork.Clock
	logger   *slog.Logger
}

func NewNotifier(provider Provider, clock clockwork.Clock, logger *slog.Logger) *Notifier {
	return &Notifier{
		provider: provider,
		clock:    clock,
		logger:   logger.With("component", "notifier", "provider", provider.Type()),
	}
}

// Dispatch publishes every notification even when some fail, and reports the failures
// joined.
func (n *Notifier) Dispatch(ctx context.Context, notifications []ports.Notification) error {
	var failures []error
	for _, notification := range notifications {
		if err := ctx.Err(); err != nil {
			return errors.Join(append(failures, err)...)
		}

		message := Message{
			Event:              EventAssigned,
			RecipientAccountID: notification.RecipientAccountID.String(),
			PackageID:          notification.PackageID.String(),
			Title:              notification.Title,
			Body:               notification.Body,
			SentAt:             n.clock.Now().UTC(),
		}
		if err := n.provider.Publish(ctx, message); err != nil {
			n.logger.ErrorContext(ctx, "failed to publish notification",
				"package_id", message.PackageID,
				"recipient", message.RecipientAccountID,
				"error", err,
			)
			failures = append(failures, fmt.Errorf("notify %s: %w", message.RecipientAccountID, err))
		}
	}

	if len(failures) == 0 {
		n.logger.InfoContext(ctx, "notifications published", "count", len(notifications))
	}
	return errors.Join(failures...)
}

func (n *Notifier) Close() error {
	return n.provider.Close()
}
