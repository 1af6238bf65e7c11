package ports

import (
	"context"
	"time"

	"food-ordering-backend/internal/model"
	"food-ordering-backend/internal/security"

	"github.com/jmoiron/sqlx"
)

type RefreshTokenRepository interface {
	Save(ctx context.Context, exec sqlx.ExtContext, token *model.RefreshToken) error
	FindByToken(ctx context.Context, exec sqlx.ExtContext, token string) (*model.RefreshToken, error)
	// Delete : false, если строки уже нет
	Delete(ctx context.Context, exec sqlx.ExtContext, token string) (bool, error)
	DeleteExpired(ctx context.Context, exec sqlx.ExtContext, before time.Time) (int64, error)
}

type TokenIssuer interface {
	IssueAccessToken(user *model.User) (string, error)
	IssueRefreshToken(user *model.User) (string, time.Time, error)
	VerifyRefreshToken(token string) (*security.Claims, error)
}
