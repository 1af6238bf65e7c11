package ports

import (
	"context"

	"food-ordering-backend/internal/model"
	"food-ordering-backend/internal/model/requestresponse"

	"github.com/jmoiron/sqlx"
)

type UserRepository interface {
	CreateUser(ctx context.Context, exec sqlx.ExtContext, user *model.User) (*model.User, error)
	FindByID(ctx context.Context, exec sqlx.ExtContext, id int64) (*model.User, error)
	FindByEmail(ctx context.Context, exec sqlx.ExtContext, email string) (*model.User, error)
	UpdateUser(ctx context.Context, exec sqlx.ExtContext, user *model.User) (*model.User, error)
	DeleteUser(ctx context.Context, exec sqlx.ExtContext, id int64) error
	ListAdmins(ctx context.Context, exec sqlx.ExtContext) ([]model.User, error)
}

type UserService interface {
	Register(ctx context.Context, req requestresponse.RegisterRequest) (*model.User, error)
	GetUser(ctx context.Context, actor *model.User, id int64) (*model.User, error)
	GetUserWithAddresses(ctx context.Context, actor *model.User, id int64) (*model.User, error)
	UpdateUser(ctx context.Context, actorID int64, req requestresponse.UpdateUserRequest) (*model.User, error)
	DeleteUser(ctx context.Context, actorID int64) error
}
