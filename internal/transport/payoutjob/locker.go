package payoutjob

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	DefaultLockKey = "locks:payout-generation"
	DefaultLockTTL = 10 * time.Minute
)

// unlockScript удаляет ключ только если он все еще принадлежит владельцу токена, иначе можно снять чужую
// блокировку, захваченную после истечения TTL.
const unlockScript = `if redis.call("get", KEYS[1]) == ARGV[1] then return redis.call("del", KEYS[1]) else return 0 end`

// RedisLocker блокировка на SET NX PX.
type RedisLocker struct {
	client   redis.Cmdable
	key      string
	ttl      time.Duration
	newToken func() string
}

func NewRedisLocker(client redis.Cmdable, key string, ttl time.Duration) *RedisLocker {
	return &RedisLocker{
		client:   client,
		key:      key,
		ttl:      ttl,
		newToken: uuid.NewString,
	}
}

func (r *RedisLocker) Lock(ctx context.Context) (func(ctx context.Context) error, error) {
	token := r.newToken()

	ok, err := r.client.SetNX(ctx, r.key, token, r.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", r.key, err)
	}
	if !ok {
		return nil, ErrLocked
	}

	return func(ctx context.Context) error {
		if evalErr := r.client.Eval(ctx, unlockScript, []string{r.key}, token).Err(); evalErr != nil {
			return fmt.Errorf("release lock %s: %w", r.key, evalErr)
		}
		return nil
	}, nil
}
