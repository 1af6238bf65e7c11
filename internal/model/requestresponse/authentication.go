package requestresponse

import "food-ordering-backend/internal/model"

// LoginRequest : тело запроса на аутентификацию
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"teste@gmail.com"`
	Password string `json:"password" validate:"required" example:"123456"`
}

// SessionResponse : ответ на login и refresh, refresh токен уходит в cookie
type SessionResponse struct {
	Message     string      `json:"message" example:"OK"`
	AccessToken string      `json:"accessToken" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User        *model.User `json:"user"`
}

// ProfileResponse : текущий пользователь с адресами
type ProfileResponse struct {
	User *model.User `json:"user"`
}
