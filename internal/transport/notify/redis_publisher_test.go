package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisPublisher_Deliver(t *testing.T) {
	ev := domain.NotificationEvent{
		UserID:  42,
		Type:    domain.NotificationPayoutCredited,
		Message: "payout credited",
	}
	payload := []byte(`{"userId":42,"type":"payout_credited","message":"payout credited"}`)

	t.Run("published", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectPublish("notifications:42", payload).SetVal(1)

		err := NewRedisPublisher(db).Deliver(context.Background(), ev)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis error", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectPublish("notifications:42", payload).SetErr(errors.New("connection refused"))

		err := NewRedisPublisher(db).Deliver(context.Background(), ev)
		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestChannel(t *testing.T) {
	assert.Equal(t, "notifications:1", Channel(1))
}
