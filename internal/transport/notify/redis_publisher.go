package notify

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/go-redis/redis/v8"
)

const channelPrefix = "notifications:"

// Channel имя redis канала уведомлений юзера.
func Channel(userID int64) string {
	return fmt.Sprintf("%s%d", channelPrefix, userID)
}

// RedisPublisher публикует уведомления в redis pub/sub для подписчиков реального времени.
type RedisPublisher struct {
	client redis.Cmdable
}

func NewRedisPublisher(client redis.Cmdable) *RedisPublisher {
	return &RedisPublisher{client: client}
}

func (r *RedisPublisher) Name() string {
	return "redis"
}

func (r *RedisPublisher) Deliver(ctx context.Context, event domain.NotificationEvent) error {
	payload, err := encode(event)
	if err != nil {
		return err
	}
	if pubErr := r.client.Publish(ctx, Channel(event.UserID), payload).Err(); pubErr != nil {
		return fmt.Errorf("publish notification: %w", pubErr)
	}
	return nil
}
