package handler

import (
	"net/http"

	"food-ordering-backend/internal/apperror"
	"food-ordering-backend/internal/model/requestresponse"
	"food-ordering-backend/internal/ports"
	"food-ordering-backend/internal/security"
)

type AuthenticationHandler struct {
	ports.AuthenticationService
	cookie *security.RefreshCookie
}

func NewAuthenticationHandler(authenticationService ports.AuthenticationService, cookie *security.RefreshCookie) *AuthenticationHandler {
	return &AuthenticationHandler{authenticationService, cookie}
}

// Login godoc
// @Summary Аутентификация пользователя
// @Description Проверяет email и пароль. Access токен в теле ответа, refresh токен в httpOnly cookie.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.LoginRequest true "Тело запроса"
// @Success 200 {object} requestresponse.SessionResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный JSON или поля"
// @Failure 401 {object} requestresponse.ErrorResponse "Неверный email или пароль"
// @Failure 429 {object} requestresponse.ErrorResponse "Слишком много запросов"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthenticationHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	session, err := h.AuthenticationService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	h.cookie.Set(w, session.RefreshToken, session.RefreshExpiresAt)
	writeJSON(w, r, http.StatusOK, requestresponse.SessionResponse{
		Message:     "OK",
		AccessToken: session.AccessToken,
		User:        session.User,
	})
}

// Refresh godoc
// @Summary Ротация refresh токена
// @Description Принимает refresh токен из cookie, удаляет его и выдаёт новую пару. Повторное использование старого токена даёт 401.
// @Tags Authentication
// @Produce json
// @Success 200 {object} requestresponse.SessionResponse
// @Failure 401 {object} requestresponse.ErrorResponse "Нет cookie, токен невалиден, истёк или уже использован"
// @Failure 429 {object} requestresponse.ErrorResponse "Слишком много запросов"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/auth/refresh [post]
func (h *AuthenticationHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	token, ok := h.cookie.Read(r)
	if !ok {
		handleServiceError(w, r, apperror.ErrMissingToken)
		return
	}

	session, err := h.AuthenticationService.Refresh(r.Context(), token)
	if err != nil {
		if apperror.KindOf(err) == apperror.KindAuthentication {
			h.cookie.Clear(w)
		}
		handleServiceError(w, r, err)
		return
	}

	h.cookie.Set(w, session.RefreshToken, session.RefreshExpiresAt)
	writeJSON(w, r, http.StatusOK, requestresponse.SessionResponse{
		Message:     "OK",
		AccessToken: session.AccessToken,
		User:        session.User,
	})
}

// Logout godoc
// @Summary Завершение сессии
// @Description Удаляет refresh токен из cookie и очищает cookie. Неизвестный токен не ошибка.
// @Tags Authentication
// @Produce json
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Нет cookie с refresh токеном"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/auth/logout [post]
func (h *AuthenticationHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := h.cookie.Read(r)
	if !ok {
		handleServiceError(w, r, apperror.Validation("refresh token is required", nil))
		return
	}

	if err := h.AuthenticationService.Logout(r.Context(), token); err != nil {
		handleServiceError(w, r, err)
		return
	}

	h.cookie.Clear(w)
	writeJSON(w, r, http.StatusOK, requestresponse.MessageResponse{Message: "OK"})
}

// Profile godoc
// @Summary Профиль текущего пользователя
// @Description Возвращает пользователя из access токена вместе с адресами
// @Tags Authentication
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} requestresponse.ProfileResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/auth/profile [get]
func (h *AuthenticationHandler) Profile(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	user, err := h.AuthenticationService.Profile(r.Context(), actor.ID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, requestresponse.ProfileResponse{User: user})
}
