package app

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// connectRedis подключается к redis. Без адреса или при недоступном сервере возвращает nil, тогда
// приложение работает без pub/sub уведомлений и без распределенной блокировки начислений.
func connectRedis(ctx context.Context, addr string, l *logrus.Logger) *redis.Client {
	if addr == "" {
		l.Info("redis address is not set, continuing without redis")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		l.WithError(err).Warn("redis connection failed, continuing without redis")
		_ = rdb.Close()
		return nil
	}

	l.WithField("addr", addr).Info("redis connection established")
	return rdb
}
