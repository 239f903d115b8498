package notify

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/repository/repoargs"
	"github.com/fsdevblog/groph-estate/pkg/uow"
)

// OutboxSink сохраняет уведомление в таблицу notifications, откуда его читает юзер.
type OutboxSink struct {
	uow uow.UOW
}

func NewOutboxSink(u uow.UOW) *OutboxSink {
	return &OutboxSink{uow: u}
}

func (o *OutboxSink) Name() string {
	return "outbox"
}

func (o *OutboxSink) Deliver(ctx context.Context, event domain.NotificationEvent) error {
	repo, repoErr := uow.GetRepositoryAs[OutboxRepository](o.uow, uow.RepositoryName(repoargs.NotificationRepoName))
	if repoErr != nil {
		return fmt.Errorf("outbox: %w", repoErr)
	}

	if _, err := repo.Create(ctx, repoargs.CreateNotification{
		UserID:  event.UserID,
		Type:    event.Type,
		Message: event.Message,
	}); err != nil {
		return fmt.Errorf("outbox: %w", err)
	}
	return nil
}
