package requestresponse

import "food-ordering-backend/internal/model"

type NotificationPageResponse = model.Page[model.Notification]

type UnreadCountResponse struct {
	UnreadCount int `json:"unreadCount" example:"3"`
}
