package handler

import (
	"net/http"

	"food-ordering-backend/internal/model/requestresponse"
	"food-ordering-backend/internal/ports"
)

type UserHandler struct {
	ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService}
}

// RegisterUser godoc
// @Summary Регистрация нового клиента
// @Description Создаёт пользователя с типом CLIENT. Пароль не короче 8 символов, с заглавной, строчной буквой, цифрой и спецсимволом.
// @Tags Users
// @Accept json
// @Produce json
// @Param body body requestresponse.RegisterRequest true "Тело запроса"
// @Success 201 {object} requestresponse.UserResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 409 {object} requestresponse.ErrorResponse "Email уже занят"
// @Failure 429 {object} requestresponse.ErrorResponse "Слишком много запросов"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/users [post]
func (h *UserHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.UserService.Register(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, requestresponse.UserResponse{Message: "Usuário criado com sucesso", User: user})
}

// GetUser godoc
// @Summary Получение пользователя
// @Description Доступно самому пользователю или администратору
// @Tags Users
// @Produce json
// @Param id path int true "ID пользователя"
// @Security ApiKeyAuth
// @Success 200 {object} requestresponse.UserResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/users/{id} [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	id, err := parseID(r, "id")
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	user, err := h.UserService.GetUser(r.Context(), actor, id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, requestresponse.UserResponse{User: user})
}

// GetUserAddresses godoc
// @Summary Пользователь с адресами
// @Description Доступно самому пользователю или администратору
// @Tags Users
// @Produce json
// @Param id path int true "ID пользователя"
// @Security ApiKeyAuth
// @Success 200 {object} requestresponse.UserResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/users/{id}/addresses [get]
func (h *UserHandler) GetUserAddresses(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	id, err := parseID(r, "id")
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	user, err := h.UserService.GetUserWithAddresses(r.Context(), actor, id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, requestresponse.UserResponse{User: user})
}

// UpdateMe godoc
// @Summary Обновление своих данных
// @Description Частичное обновление имени, email, телефона и пароля текущего пользователя
// @Tags Users
// @Accept json
// @Produce json
// @Param body body requestresponse.UpdateUserRequest true "Тело запроса"
// @Security ApiKeyAuth
// @Success 200 {object} requestresponse.UserResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 409 {object} requestresponse.ErrorResponse "Email уже занят"
// @Router /api/users/me [patch]
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req requestresponse.UpdateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.UserService.UpdateUser(r.Context(), actor.ID, req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, requestresponse.UserResponse{Message: "OK", User: user})
}

// DeleteMe godoc
// @Summary Удаление своего аккаунта
// @Tags Users
// @Security ApiKeyAuth
// @Success 204 "Пользователь удалён"
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/users/me [delete]
func (h *UserHandler) DeleteMe(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.UserService.DeleteUser(r.Context(), actor.ID); err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
