package requestresponse

import "food-ordering-backend/internal/model"

// RegisterRequest : тело запроса регистрации
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100" example:"Maria Silva"`
	Email    string `json:"email" validate:"required,email" example:"maria@example.com"`
	Password string `json:"password" validate:"required,min=8,strongpassword" example:"P@ssw0rd!"`
	Phone    string `json:"phone" validate:"omitempty,max=20" example:"11999999999"`
}

// UpdateUserRequest : частичное обновление, пустые поля не меняются
type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=100" example:"Maria S."`
	Email    *string `json:"email" validate:"omitempty,email" example:"maria.s@example.com"`
	Password *string `json:"password" validate:"omitempty,min=8,strongpassword" example:"N3w#Passw0rd"`
	Phone    *string `json:"phone" validate:"omitempty,max=20" example:"11988888888"`
}

// UserResponse : ответ с данными пользователя
type UserResponse struct {
	Message string      `json:"message,omitempty" example:"OK"`
	User    *model.User `json:"user"`
}

// ErrorDetail : детальная информация об ошибке
type ErrorDetail struct {
	Code   int               `json:"code" example:"400"`
	Text   string            `json:"text" example:"invalid request"`
	Fields map[string]string `json:"fields,omitempty"`
}

// ErrorResponse : стандартная структура ошибки
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// MessageResponse : подтверждение действия
type MessageResponse struct {
	Message string `json:"message" example:"OK"`
}
