package handler

import (
	"net/http"

	"food-ordering-backend/internal/model/requestresponse"
	"food-ordering-backend/internal/ports"
)

type NotificationHandler struct {
	ports.NotificationService
}

func NewNotificationHandler(notificationService ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService}
}

// ListNotifications godoc
// @Summary Уведомления текущего пользователя
// @Description Новые сначала, по умолчанию 20 на страницу
// @Tags Notifications
// @Produce json
// @Param page query int false "Страница" default(1)
// @Param pageSize query int false "Размер страницы" default(20) maximum(100)
// @Security ApiKeyAuth
// @Success 200 {object} requestresponse.NotificationPageResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /api/notifications [get]
func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	page, pageSize := pageParams(r)
	notifications, err := h.NotificationService.ListForUser(r.Context(), actor.ID, page, pageSize)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, notifications)
}

// UnreadCount godoc
// @Summary Количество непрочитанных
// @Tags Notifications
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} requestresponse.UnreadCountResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /api/notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	count, err := h.NotificationService.CountUnread(r.Context(), actor.ID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, requestresponse.UnreadCountResponse{UnreadCount: count})
}

// MarkAsRead godoc
// @Summary Отметить уведомление прочитанным
// @Tags Notifications
// @Produce json
// @Param id path int true "ID уведомления"
// @Security ApiKeyAuth
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/notifications/{id}/read [post]
func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	id, err := parseID(r, "id")
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	if err := h.NotificationService.MarkAsRead(r.Context(), actor.ID, id); err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, requestresponse.MessageResponse{Message: "OK"})
}

// MarkAllAsRead godoc
// @Summary Отметить все уведомления прочитанными
// @Tags Notifications
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /api/notifications/read-all [post]
func (h *NotificationHandler) MarkAllAsRead(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.NotificationService.MarkAllAsRead(r.Context(), actor.ID); err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, requestresponse.MessageResponse{Message: "OK"})
}
