package adapter

import (
	"context"
	"fmt"

	"bible-trivia/internal/environment"
	"bible-trivia/internal/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	// ModeKey persists the current environment mode across restarts.
	ModeKey = "bible_trivia:environment:mode"

	// ModeChannel carries mode-change notifications.
	ModeChannel = "bible_trivia:environment:mode_changed"
)

// RedisModeStore implements environment.ModeStore using a Redis client.
// The mode key has no TTL; change notifications go out over pub/sub so
// other processes can react without polling.
type RedisModeStore struct {
	client *redis.Client
}

// NewRedisModeStore creates a new instance of RedisModeStore.
// It expects a connected *redis.Client.
func NewRedisModeStore(client *redis.Client) environment.ModeStore {
	return &RedisModeStore{client: client}
}

// Current returns the persisted mode. A missing key means the mode was
// never set; live traffic reads production, so that is the default.
func (r *RedisModeStore) Current(ctx context.Context) (environment.Mode, error) {
	val, err := r.client.Get(ctx, ModeKey).Result()
	if err != nil {
		if err == redis.Nil {
			return environment.Production, nil
		}
		return "", fmt.Errorf("failed to read environment mode: %w", err)
	}

	mode, err := environment.ParseMode(val)
	if err != nil {
		// A corrupted value must not wedge the app on an unknown mode.
		logger.Get().Warn("Stored environment mode is invalid, falling back to production",
			zap.String("value", val))
		return environment.Production, nil
	}
	return mode, nil
}

// Set persists a new mode and publishes a change notification.
func (r *RedisModeStore) Set(ctx context.Context, mode environment.Mode) error {
	if !mode.IsValid() {
		return fmt.Errorf("invalid environment mode: %q", mode)
	}

	if err := r.client.Set(ctx, ModeKey, string(mode), 0).Err(); err != nil {
		return fmt.Errorf("failed to persist environment mode: %w", err)
	}
	if err := r.client.Publish(ctx, ModeChannel, string(mode)).Err(); err != nil {
		return fmt.Errorf("failed to publish mode change: %w", err)
	}
	return nil
}

// Subscribe returns a channel receiving each mode change until ctx is
// cancelled.
func (r *RedisModeStore) Subscribe(ctx context.Context) (<-chan environment.Mode, error) {
	pubsub := r.client.Subscribe(ctx, ModeChannel)
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to mode changes: %w", err)
	}

	modes := make(chan environment.Mode)
	go func() {
		defer close(modes)
		defer pubsub.Close()
		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				mode, err := environment.ParseMode(msg.Payload)
				if err != nil {
					logger.Get().Warn("Ignoring invalid mode-change notification",
						zap.String("payload", msg.Payload))
					continue
				}
				select {
				case modes <- mode:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return modes, nil
}
