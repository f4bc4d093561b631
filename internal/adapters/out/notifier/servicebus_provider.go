package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/messaging/azservicebus"
)

type serviceBusSender interface {
	SendMessage(ctx context.Context, message *azservicebus.Message, options *azservicebus.SendMessageOptions) error
	Close(ctx context.Context) error
}

// ServiceBusProvider sends each notification as one JSON message to a Service Bus queue.
type ServiceBusProvider struct {
	client *azservicebus.Client
	sender serviceBusSender
	queue  string
}

func NewServiceBusProvider(connectionString, queue string) (*ServiceBusProvider, error) {
	if connectionString == "" {
		return nil, fmt.Errorf("service bus connection string is empty")
	}
	if queue == "" {
		return nil, fmt.Errorf("service bus queue name is empty")
	}

	client, err := azservicebus.NewClientFromConnectionString(connectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("create service bus client: %w", err)
	}

	sender, err := client.NewSender(queue, nil)
	if err != nil {
		_ = client.Close(context.Background())
		return nil, fmt.Errorf("create service bus sender for %s: %w", queue, err)
	}

	return &ServiceBusProvider{client: client, sender: sender, queue: queue}, nil
}

func (p *ServiceBusProvider) Type() string {
	return TypeServiceBus
}

func (p *ServiceBusProvider) Publish(ctx context.Context, message Message) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	contentType := "application/json"
	subject := message.Event
	return p.sender.SendMessage(ctx, &azservicebus.Message{
		Body:        body,
		ContentType: &contentType,
		Subject:     &subject,
		ApplicationProperties: map[string]any{
			"source":    source,
			"recipient": message.RecipientAccountID,
			"time":      message.SentAt.Format(time.RFC3339),
		},
	}, nil)
}

func (p *ServiceBusProvider) Close() error {
	ctx := context.Background()
	if p.sender != nil {
		if err := p.sender.Close(ctx); err != nil {
			return err
		}
	}
	if p.client != nil {
		return p.client.Close(ctx)
	}
	return nil
}
