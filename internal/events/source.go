package events

import (
	"context"
	"fmt"

	"github.com/aceitestapia/fueltrack-backend/pkg/config"
	"github.com/aceitestapia/fueltrack-backend/pkg/logger"
	redisclient "github.com/aceitestapia/fueltrack-backend/pkg/redis"
)

// RedisSource subscribes to the change feed channel and exposes decoded
// events as a channel suitable for Hub.Run. The returned channel closes
// when the context is canceled.
func RedisSource(ctx context.Context, client *redisclient.Client, cfg config.ChangeFeedConfig, logg *logger.Logger) (<-chan ChangeEvent, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	if cfg.Channel == "" {
		return nil, fmt.Errorf("change feed channel is required")
	}

	pubsub := client.Subscribe(ctx, cfg.Channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("subscribe change feed: %w", err)
	}

	out := make(chan ChangeEvent)
	go func() {
		defer close(out)
		defer func() { _ = pubsub.Close() }()

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				event, err := Decode(msg.Payload)
				if err != nil {
					logg.Error(ctx, "decode change event", err)
					continue
				}
				select {
				case out <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
