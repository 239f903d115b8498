package payoutjob

import (
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/require"
)

func TestRedisLocker(t *testing.T) {
	const key = "locks:test"
	const token = "token-1"
	ttl := time.Minute

	newLocker := func(t *testing.T) (*RedisLocker, redismock.ClientMock) {
		t.Helper()
		client, mock := redismock.NewClientMock()
		locker := NewRedisLocker(client, key, ttl)
		locker.newToken = func() string { return token }
		return locker, mock
	}

	t.Run("acquire and release", func(t *testing.T) {
		locker, mock := newLocker(t)
		mock.ExpectSetNX(key, token, ttl).SetVal(true)
		mock.ExpectEval(unlockScript, []string{key}, token).SetVal(int64(1))

		unlock, err := locker.Lock(t.Context())
		require.NoError(t, err)
		require.NoError(t, unlock(t.Context()))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already locked", func(t *testing.T) {
		locker, mock := newLocker(t)
		mock.ExpectSetNX(key, token, ttl).SetVal(false)

		_, err := locker.Lock(t.Context())
		require.ErrorIs(t, err, ErrLocked)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis unavailable", func(t *testing.T) {
		locker, mock := newLocker(t)
		redisErr := errors.New("dial tcp: connection refused")
		mock.ExpectSetNX(key, token, ttl).SetErr(redisErr)

		_, err := locker.Lock(t.Context())
		require.ErrorIs(t, err, redisErr)
		require.NotErrorIs(t, err, ErrLocked)
	})
}
