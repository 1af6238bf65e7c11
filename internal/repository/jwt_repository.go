package repository

import (
	"context"
	"time"

	"food-ordering-backend/internal/apperror"
	"food-ordering-backend/internal/model"

	"github.com/jmoiron/sqlx"
)

type RefreshTokenRepository struct{}

func NewRefreshTokenRepository() *RefreshTokenRepository {
	return &RefreshTokenRepository{}
}

// Save : сохраняет refresh токен
func (r *RefreshTokenRepository) Save(ctx context.Context, exec sqlx.ExtContext, token *model.RefreshToken) error {
	query := `INSERT INTO refresh_tokens (token, user_id, expires_at) VALUES ($1, $2, $3)`

	if _, err := exec.ExecContext(ctx, query, token.Token, token.UserID, token.ExpiresAt); err != nil {
		return mapError("[RefreshTokenRepo] ошибка вставки данных в БД", err, nil, nil)
	}
	return nil
}

// FindByToken : ищет сохранённый refresh токен.
// Нет строки: ErrInvalidToken, токен отозван, уже использован или подделан.
func (r *RefreshTokenRepository) FindByToken(ctx context.Context, exec sqlx.ExtContext, token string) (*model.RefreshToken, error) {
	query := `SELECT id, token, user_id, expires_at, created_at FROM refresh_tokens WHERE token = $1`

	var stored model.RefreshToken
	if err := sqlx.GetContext(ctx, exec, &stored, query, token); err != nil {
		return nil, mapError("[RefreshTokenRepo] ошибка при выполнении запроса", err, apperror.ErrInvalidToken, nil)
	}
	return &stored, nil
}

// Delete : удаляет токен, false если его уже нет
func (r *RefreshTokenRepository) Delete(ctx context.Context, exec sqlx.ExtContext, token string) (bool, error) {
	res, err := exec.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE token = $1`, token)
	if err != nil {
		return false, mapError("[RefreshTokenRepo] не удалось удалить токен", err, nil, nil)
	}
	n, err := affected("[RefreshTokenRepo] Delete", res)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// DeleteExpired : чистка просроченных токенов
func (r *RefreshTokenRepository) DeleteExpired(ctx context.Context, exec sqlx.ExtContext, before time.Time) (int64, error) {
	res, err := exec.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE expires_at <= $1`, before)
	if err != nil {
		return 0, mapError("[RefreshTokenRepo] не удалось удалить просроченные токены", err, nil, nil)
	}
	return affected("[RefreshTokenRepo] DeleteExpired", res)
}
