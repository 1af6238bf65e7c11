package service

import (
	"context"

	"food-ordering-backend/config"
	"food-ordering-backend/internal/apperror"
	"food-ordering-backend/internal/model"
	"food-ordering-backend/internal/ports"

	"github.com/sirupsen/logrus"
)

const NotificationsPageSize = 20

// NotificationService : уведомления сначала сохраняются, потом пушатся в realtime канал.
// Всё после сохранения best-effort: ошибки кэша, подсчёта и пуша только логируются.
type NotificationService struct {
	db                     *config.Database
	notificationRepository ports.NotificationRepository
	cache                  ports.UnreadCountCache
	notifier               ports.Notifier
	log                    *logrus.Entry
}

// NewNotificationService : cache может быть nil, тогда счётчик всегда считается в БД
func NewNotificationService(
	db *config.Database,
	notificationRepository ports.NotificationRepository,
	cache ports.UnreadCountCache,
	notifier ports.Notifier,
) *NotificationService {
	return &NotificationService{
		db:                     db,
		notificationRepository: notificationRepository,
		cache:                  cache,
		notifier:               notifier,
		log:                    logrus.WithField("component", "notifications"),
	}
}

func (s *NotificationService) CreateAndEmit(ctx context.Context, userID int64, title, body string, data model.JSONMap) (*model.Notification, error) {
	if data == nil {
		data = model.JSONMap{}
	}

	notification, err := s.notificationRepository.Create(ctx, s.db, &model.Notification{
		UserID: userID,
		Title:  title,
		Body:   body,
		Data:   data,
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, userID)
	s.notifier.EmitToUser(userID, model.EventNewNotification, notification)
	s.emitUnreadCount(ctx, userID)

	return notification, nil
}

func (s *NotificationService) ListForUser(ctx context.Context, userID int64, page, pageSize int) (*model.Page[model.Notification], error) {
	page, pageSize = model.NormalizePage(page, pageSize, NotificationsPageSize, model.MaxPageSize)

	list, total, err := s.notificationRepository.ListByUser(ctx, s.db, userID, model.Offset(page, pageSize), pageSize)
	if err != nil {
		return nil, err
	}

	return &model.Page[model.Notification]{
		Data: list,
		Meta: model.NewPageMeta(page, pageSize, total),
	}, nil
}

// MarkAsRead : чужое уведомление неотличимо от отсутствующего
func (s *NotificationService) MarkAsRead(ctx context.Context, userID, id int64) error {
	marked, err := s.notificationRepository.MarkAsRead(ctx, s.db, id, userID)
	if err != nil {
		return err
	}
	if !marked {
		return apperror.ErrNotificationNotFound
	}

	s.invalidate(ctx, userID)
	s.emitUnreadCount(ctx, userID)
	return nil
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID int64) error {
	if _, err := s.notificationRepository.MarkAllAsRead(ctx, s.db, userID); err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.SetUnreadCount(ctx, userID, 0); err != nil {
			s.log.WithError(err).WithField("user_id", userID).Warn("не удалось обновить счётчик в кэше")
		}
	}
	s.notifier.EmitToUser(userID, model.EventUnreadCount, model.UnreadCountPayload{UnreadCount: 0})
	return nil
}

// CountUnread : read-through через Redis, при недоступности кэша идём в БД
func (s *NotificationService) CountUnread(ctx context.Context, userID int64) (int, error) {
	if s.cache != nil {
		count, ok, err := s.cache.GetUnreadCount(ctx, userID)
		if err != nil {
			s.log.WithError(err).WithField("user_id", userID).Warn("кэш счётчика недоступен")
		} else if ok {
			return count, nil
		}
	}

	count, err := s.notificationRepository.CountUnread(ctx, s.db, userID)
	if err != nil {
		return 0, err
	}

	if s.cache != nil {
		if err := s.cache.SetUnreadCount(ctx, userID, count); err != nil {
			s.log.WithError(err).WithField("user_id", userID).Warn("не удалось сохранить счётчик в кэш")
		}
	}
	return count, nil
}

func (s *NotificationService) emitUnreadCount(ctx context.Context, userID int64) {
	count, err := s.CountUnread(ctx, userID)
	if err != nil {
		s.log.WithError(err).WithField("user_id", userID).Warn("не удалось посчитать непрочитанные")
		return
	}
	s.notifier.EmitToUser(userID, model.EventUnreadCount, model.UnreadCountPayload{UnreadCount: count})
}

func (s *NotificationService) invalidate(ctx context.Context, userID int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateUnreadCount(ctx, userID); err != nil {
		s.log.WithError(err).WithField("user_id", userID).Warn("не удалось сбросить счётчик в кэше")
	}
}
