package security

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"food-ordering-backend/internal/apperror"
	"food-ordering-backend/internal/model"
	"food-ordering-backend/internal/model/requestresponse"

	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	ClaimsContextKey contextKey = "claims"
	UserContextKey   contextKey = "user"
)

// UserResolver : находит пользователя по subject токена
type UserResolver interface {
	ResolveUser(ctx context.Context, id int64) (*model.User, error)
}

// BearerToken : достаёт токен из заголовка "Authorization: Bearer <token>"
func BearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

// JWTMiddleware : проверяет access токен, находит пользователя и кладёт claims и пользователя в контекст.
// Любая ошибка даёт 401 до бизнес-логики.
func JWTMiddleware(verifier TokenVerifier, resolver UserResolver) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := BearerToken(r.Header.Get("Authorization"))
			if !ok {
				writeAuthError(w, apperror.ErrMissingToken)
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				logrus.WithError(err).Debug("невалидный access токен")
				writeAuthError(w, err)
				return
			}

			user, err := resolver.ResolveUser(r.Context(), claims.UserID)
			if err != nil {
				if apperror.KindOf(err) == apperror.KindNotFound {
					writeAuthError(w, apperror.ErrInvalidToken)
					return
				}
				logrus.WithError(err).Error("не удалось получить пользователя по токену")
				writeError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
			ctx = context.WithValue(ctx, UserContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin : пропускает только пользователей с типом ADMIN
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := GetUserFromContext(r.Context())
		if err != nil {
			writeAuthError(w, err)
			return
		}
		if !user.IsAdmin() {
			writeError(w, http.StatusForbidden, apperror.ErrForbidden.Message)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func GetClaimsFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(ClaimsContextKey).(*Claims)
	if !ok || claims == nil {
		return nil, apperror.ErrMissingToken
	}
	return claims, nil
}

func GetUserFromContext(ctx context.Context) (*model.User, error) {
	user, ok := ctx.Value(UserContextKey).(*model.User)
	if !ok || user == nil {
		return nil, apperror.ErrMissingToken
	}
	return user, nil
}

// ContextWithUser : кладёт пользователя в контекст; нужно тестам хендлеров
func ContextWithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, UserContextKey, user)
}

func writeAuthError(w http.ResponseWriter, err error) {
	msg := apperror.ErrInvalidToken.Message
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		msg = appErr.Message
	}
	writeError(w, http.StatusUnauthorized, msg)
}

func writeError(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(requestresponse.ErrorResponse{
		Error: requestresponse.ErrorDetail{Code: status, Text: text},
	})
}
