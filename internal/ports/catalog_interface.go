package ports

import (
	"context"

	"food-ordering-backend/internal/model"
	"food-ordering-backend/internal/model/requestresponse"

	"github.com/jmoiron/sqlx"
)

type CategoryRepository interface {
	Create(ctx context.Context, exec sqlx.ExtContext, category *model.Category) (*model.Category, error)
	FindByID(ctx context.Context, exec sqlx.ExtContext, id int64) (*model.Category, error)
	List(ctx context.Context, exec sqlx.ExtContext) ([]model.Category, error)
	Update(ctx context.Context, exec sqlx.ExtContext, category *model.Category) (*model.Category, error)
	Delete(ctx context.Context, exec sqlx.ExtContext, id int64) error
}

type ItemRepository interface {
	Create(ctx context.Context, exec sqlx.ExtContext, item *model.Item) (*model.Item, error)
	FindByID(ctx context.Context, exec sqlx.ExtContext, id int64) (*model.Item, error)
	FindByIDs(ctx context.Context, exec sqlx.ExtContext, ids []int64) (map[int64]model.Item, error)
	List(ctx context.Context, exec sqlx.ExtContext) ([]model.Item, error)
	Update(ctx context.Context, exec sqlx.ExtContext, item *model.Item) (*model.Item, error)
	SetImageKey(ctx context.Context, exec sqlx.ExtContext, id int64, key string) error
	Delete(ctx context.Context, exec sqlx.ExtContext, id int64) error
}

type CategoryService interface {
	Create(ctx context.Context, req requestresponse.CreateCategoryRequest) (*model.Category, error)
	ListAll(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, id int64, req requestresponse.UpdateCategoryRequest) (*model.Category, error)
	Delete(ctx context.Context, id int64) error
}

type ItemService interface {
	Create(ctx context.Context, req requestresponse.CreateItemRequest) (*model.Item, error)
	ListAll(ctx context.Context) ([]model.Item, error)
	GetByID(ctx context.Context, id int64) (*model.Item, error)
	Update(ctx context.Context, id int64, req requestresponse.UpdateItemRequest) (*model.Item, error)
	Delete(ctx context.Context, id int64) error
	CreateImageUploadURL(ctx context.Context, id int64, contentType string) (*requestresponse.ImageUploadResponse, error)
	ConfirmImageUpload(ctx context.Context, id int64, key string) (*model.Item, error)
}
