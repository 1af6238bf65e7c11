package ports

import (
	"context"

	"food-ordering-backend/internal/model"

	"github.com/jmoiron/sqlx"
)

type NotificationRepository interface {
	Create(ctx context.Context, exec sqlx.ExtContext, notification *model.Notification) (*model.Notification, error)
	ListByUser(ctx context.Context, exec sqlx.ExtContext, userID int64, offset, limit int) ([]model.Notification, int, error)
	MarkAsRead(ctx context.Context, exec sqlx.ExtContext, id, userID int64) (bool, error)
	MarkAllAsRead(ctx context.Context, exec sqlx.ExtContext, userID int64) (int64, error)
	CountUnread(ctx context.Context, exec sqlx.ExtContext, userID int64) (int, error)
}

type NotificationService interface {
	CreateAndEmit(ctx context.Context, userID int64, title, body string, data model.JSONMap) (*model.Notification, error)
	ListForUser(ctx context.Context, userID int64, page, pageSize int) (*model.Page[model.Notification], error)
	MarkAsRead(ctx context.Context, userID, id int64) error
	MarkAllAsRead(ctx context.Context, userID int64) error
	CountUnread(ctx context.Context, userID int64) (int, error)
}

// Notifier : best-effort доставка события всем живым соединениям пользователя
type Notifier interface {
	EmitToUser(userID int64, event string, payload any)
}
