package realtime

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"
)

// RedisChannel implements Notifier and Subscriber over redis pub/sub, one
// channel per shift.
type RedisChannel struct {
	client *redis.Client
}

// NewRedisChannel creates a redis-backed change channel.
func NewRedisChannel(addr, password string, db int) *RedisChannel {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisChannel{client: client}
}

var _ Notifier = (*RedisChannel)(nil)
var _ Subscriber = (*RedisChannel)(nil)

func channelKey(shiftID string) string {
	return "cash:shift:" + shiftID + ":movements"
}

// Ping verifies the redis connection.
func (c *RedisChannel) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (c *RedisChannel) Close() error {
	return c.client.Close()
}

// MovementChanged publishes a movement event on the shift's channel.
func (c *RedisChannel) MovementChanged(ctx context.Context, shiftID string, event MovementEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return c.client.Publish(ctx, channelKey(shiftID), payload).Err()
}

// Subscribe streams movement events for a shift until stop is called or the
// context is cancelled. Malformed payloads are logged and skipped.
func (c *RedisChannel) Subscribe(ctx context.Context, shiftID string) (<-chan MovementEvent, func(), error) {
	sub := c.client.Subscribe(ctx, channelKey(shiftID))
	// Force the subscription to be established before returning.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, nil, err
	}

	events := make(chan MovementEvent)
	go func() {
		defer close(events)
		for msg := range sub.Channel() {
			var event MovementEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				slog.Warn("Discarding malformed movement event", slog.String("shift_id", shiftID), slog.String("error", err.Error()))
				continue
			}
			select {
			case events <- event:
			case <-ctx.Done():
				return
			}
		}
	}()

	stop := func() { _ = sub.Close() }
	return events, stop, nil
}
