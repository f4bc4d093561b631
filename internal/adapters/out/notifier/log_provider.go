package notifier

import (
	"context"
	"log/slog"
)

// LogProvider writes notifications to the application log. It is the default transport
// for local runs.
type LogProvider struct {
	logger *slog.Logger
}

func NewLogProvider(logger *slog.Logger) *LogProvider {
	return &LogProvider{logger: logger.With("component", "notification_log")}
}

func (p *LogProvider) Type() string {
	return TypeLog
}

func (p *LogProvider) Publish(ctx context.Context, message Message) error {
	p.logger.InfoContext(ctx, message.Title,
		"event", message.Event,
		"recipient", message.RecipientAccountID,
		"package_id", message.PackageID,
		"body", message.Body,
	)
	return nil
}

func (p *LogProvider) Close() error {
	return nil
}
