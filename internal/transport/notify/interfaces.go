package notify

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/repository/repoargs"
)

// Sink канал доставки уведомлений.
type Sink interface {
	Name() string
	Deliver(ctx context.Context, event domain.NotificationEvent) error
}

type OutboxRepository interface {
	Create(ctx context.Context, args repoargs.CreateNotification) (*domain.Notification, error)
}
