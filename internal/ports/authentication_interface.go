package ports

import (
	"context"

	"food-ordering-backend/internal/model"
)

type AuthenticationService interface {
	Login(ctx context.Context, email, password string) (*model.Session, error)
	Refresh(ctx context.Context, refreshToken string) (*model.Session, error)
	Logout(ctx context.Context, refreshToken string) error
	Profile(ctx context.Context, userID int64) (*model.User, error)
}
