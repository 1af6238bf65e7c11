package ports

import (
	"context"

	"food-ordering-backend/internal/model"
	"food-ordering-backend/internal/model/requestresponse"

	"github.com/jmoiron/sqlx"
)

type AddressRepository interface {
	Create(ctx context.Context, exec sqlx.ExtContext, address *model.Address) (*model.Address, error)
	FindByID(ctx context.Context, exec sqlx.ExtContext, id int64) (*model.Address, error)
	ListByUser(ctx context.Context, exec sqlx.ExtContext, userID int64) ([]model.Address, error)
	Update(ctx context.Context, exec sqlx.ExtContext, address *model.Address) (*model.Address, error)
	Delete(ctx context.Context, exec sqlx.ExtContext, id, userID int64) error
}

type AddressService interface {
	Create(ctx context.Context, userID int64, req requestresponse.CreateAddressRequest) (*model.Address, error)
	Update(ctx context.Context, userID, id int64, req requestresponse.UpdateAddressRequest) (*model.Address, error)
	Delete(ctx context.Context, userID, id int64) error
	ListMine(ctx context.Context, userID int64) ([]model.Address, error)
}
