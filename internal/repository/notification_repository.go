package repository

import (
	"context"

	"food-ordering-backend/internal/model"

	"github.com/jmoiron/sqlx"
)

const notificationColumns = `id, user_id, title, body, data, read, created_at`

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) Create(ctx context.Context, exec sqlx.ExtContext, n *model.Notification) (*model.Notification, error) {
	query := `
	INSERT INTO notifications (user_id, title, body, data)
	VALUES ($1, $2, $3, $4)
	RETURNING ` + notificationColumns

	var created model.Notification
	if err := sqlx.GetContext(ctx, exec, &created, query, n.UserID, n.Title, n.Body, n.Data); err != nil {
		return nil, mapError("[NotificationRepo] ошибка вставки уведомления", err, nil, nil)
	}
	return &created, nil
}

// ListByUser : страница уведомлений пользователя, новые первыми
func (r *NotificationRepository) ListByUser(ctx context.Context, exec sqlx.ExtContext, userID int64, offset, limit int) ([]model.Notification, int, error) {
	var total int
	if err := sqlx.GetContext(ctx, exec, &total, `SELECT COUNT(*) FROM notifications WHERE user_id = $1`, userID); err != nil {
		return nil, 0, mapError("[NotificationRepo] не удалось посчитать уведомления", err, nil, nil)
	}

	list := []model.Notification{}
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`
	if err := sqlx.SelectContext(ctx, exec, &list, query, userID, limit, offset); err != nil {
		return nil, 0, mapError("[NotificationRepo] не удалось получить уведомления", err, nil, nil)
	}
	return list, total, nil
}

// MarkAsRead : false, если уведомления нет или оно чужое
func (r *NotificationRepository) MarkAsRead(ctx context.Context, exec sqlx.ExtContext, id, userID int64) (bool, error) {
	res, err := exec.ExecContext(ctx, `UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, mapError("[NotificationRepo] не удалось отметить уведомление", err, nil, nil)
	}
	n, err := affected("[NotificationRepo] MarkAsRead", res)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *NotificationRepository) MarkAllAsRead(ctx context.Context, exec sqlx.ExtContext, userID int64) (int64, error) {
	res, err := exec.ExecContext(ctx, `UPDATE notifications SET read = TRUE WHERE user_id = $1 AND read = FALSE`, userID)
	if err != nil {
		return 0, mapError("[NotificationRepo] не удалось отметить уведомления", err, nil, nil)
	}
	return affected("[NotificationRepo] MarkAllAsRead", res)
}

func (r *NotificationRepository) CountUnread(ctx context.Context, exec sqlx.ExtContext, userID int64) (int, error) {
	var count int
	if err := sqlx.GetContext(ctx, exec, &count, `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND read = FALSE`, userID); err != nil {
		return 0, mapError("[NotificationRepo] не удалось посчитать непрочитанные", err, nil, nil)
	}
	return count, nil
}
