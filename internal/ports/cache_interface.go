package ports

import "context"

// UnreadCountCache : Redis слой для счётчика непрочитанных уведомлений
type UnreadCountCache interface {
	GetUnreadCount(ctx context.Context, userID int64) (int, bool, error)
	SetUnreadCount(ctx context.Context, userID int64, count int) error
	InvalidateUnreadCount(ctx context.Context, userID int64) error
}
