package events

import (
	"context"
	"fmt"

	"github.com/aceitestapia/fueltrack-backend/pkg/config"
	"github.com/aceitestapia/fueltrack-backend/pkg/logger"
)

type channelPublisher interface {
	Publish(ctx context.Context, channel string, payload any) error
}

// Publisher emits change events on the configured Redis channel. Publishing
// is best effort: the row write already committed, so a pub/sub failure is
// logged and swallowed rather than surfaced to the caller.
type Publisher struct {
	client  channelPublisher
	channel string
	logg    *logger.Logger
}

// NewPublisher wires a change event publisher.
func NewPublisher(client channelPublisher, cfg config.ChangeFeedConfig, logg *logger.Logger) (*Publisher, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	if cfg.Channel == "" {
		return nil, fmt.Errorf("change feed channel is required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &Publisher{client: client, channel: cfg.Channel, logg: logg}, nil
}

// Publish emits a single change event.
func (p *Publisher) Publish(ctx context.Context, event ChangeEvent) {
	payload, err := event.Encode()
	if err != nil {
		p.logg.Error(ctx, "encode change event", err)
		return
	}
	if err := p.client.Publish(ctx, p.channel, payload); err != nil {
		p.logg.Error(ctx, "publish change event", err)
	}
}
