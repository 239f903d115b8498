package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/repository/repoargs"
	"github.com/fsdevblog/groph-estate/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const notificationColumns = `id, created_at, user_id, type, message, read`

type NotificationRepository struct {
	conn uow.DBTX
}

func NewNotificationRepository(conn uow.DBTX) *NotificationRepository {
	return &NotificationRepository{conn: conn}
}

func (n *NotificationRepository) Create(
	ctx context.Context,
	args repoargs.CreateNotification,
) (*domain.Notification, error) {
	row := n.conn.QueryRow(ctx,
		`INSERT INTO notifications (user_id, type, message) VALUES ($1, $2, $3) RETURNING `+notificationColumns,
		args.UserID, string(args.Type), args.Message,
	)
	notification, err := scanNotification(row)
	if err != nil {
		return nil, convertErr(err, "creating `%s` notification for user %d", args.Type, args.UserID)
	}
	return notification, nil
}

func (n *NotificationRepository) GetByUserID(
	ctx context.Context,
	userID int64,
	page repoargs.Page,
) ([]domain.Notification, error) {
	limit, offset, pageErr := pageArgs(page.Limit, page.Offset)
	if pageErr != nil {
		return nil, convertErr(pageErr, "converting page args")
	}
	rows, err := n.conn.Query(ctx,
		`SELECT `+notificationColumns+` FROM notifications WHERE user_id = $1 ORDER BY id DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, convertErr(err, "getting notifications by userID %d", userID)
	}
	notifications, collectErr := pgx.CollectRows(rows, func(r pgx.CollectableRow) (domain.Notification, error) {
		notification, scanErr := scanNotification(r)
		if scanErr != nil {
			return domain.Notification{}, scanErr
		}
		return *notification, nil
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "collecting notifications of user %d", userID)
	}
	return notifications, nil
}

// MarkRead отмечает уведомление прочитанным. Чужое или несуществующее уведомление дает domain.ErrRecordNotFound.
func (n *NotificationRepository) MarkRead(ctx context.Context, id, userID int64) (*domain.Notification, error) {
	row := n.conn.QueryRow(ctx,
		`UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id = $2 RETURNING `+notificationColumns,
		id, userID,
	)
	notification, err := scanNotification(row)
	if err != nil {
		return nil, convertErr(err, "marking notification %d as read", id)
	}
	return notification, nil
}

func scanNotification(row pgx.Row) (*domain.Notification, error) {
	var m domain.Notification
	err := row.Scan(&m.ID, &m.CreatedAt, &m.UserID, &m.Type, &m.Message, &m.Read)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &m, nil
}
