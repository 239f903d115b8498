package service

import (
	"context"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/repository/repoargs"
	"github.com/fsdevblog/groph-estate/pkg/uow"
)

type NotificationService struct {
	notificationRepo NotificationRepository
}

func NewNotificationService(u uow.UOW) (*NotificationService, error) {
	notificationRepo, err := getRepo[NotificationRepository](u, repoargs.NotificationRepoName)
	if err != nil {
		return nil, err
	}
	return &NotificationService{notificationRepo: notificationRepo}, nil
}

func (n *NotificationService) List(ctx context.Context, actor domain.Actor, page repoargs.Page) ([]domain.Notification, error) {
	notifications, err := n.notificationRepo.GetByUserID(ctx, actor.ID, page)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return notifications, nil
}

// MarkRead отмечает уведомление прочитанным. Чужое уведомление ищется как несуществующее.
func (n *NotificationService) MarkRead(ctx context.Context, actor domain.Actor, id int64) (*domain.Notification, error) {
	notification, err := n.notificationRepo.MarkRead(ctx, id, actor.ID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return notification, nil
}
