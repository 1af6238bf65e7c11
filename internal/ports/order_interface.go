package ports

import (
	"context"

	"food-ordering-backend/internal/model"
	"food-ordering-backend/internal/model/requestresponse"

	"github.com/jmoiron/sqlx"
)

type OrderRepository interface {
	Create(ctx context.Context, exec sqlx.ExtContext, order *model.Order) (*model.Order, error)
	FindByID(ctx context.Context, exec sqlx.ExtContext, id int64) (*model.Order, error)
	List(ctx context.Context, exec sqlx.ExtContext, offset, limit int) ([]model.Order, int, error)
	ListByClient(ctx context.Context, exec sqlx.ExtContext, clientID int64, offset, limit int) ([]model.Order, int, error)
	UpdateStatus(ctx context.Context, exec sqlx.ExtContext, id int64, status model.OrderStatus, confirmedBy int64) (*model.Order, error)
	Delete(ctx context.Context, exec sqlx.ExtContext, id int64) error
}

type OrderItemRepository interface {
	Create(ctx context.Context, exec sqlx.ExtContext, item *model.OrderItem) (*model.OrderItem, error)
	ListByOrder(ctx context.Context, exec sqlx.ExtContext, orderID int64) ([]model.OrderItem, error)
}

type OrderService interface {
	Create(ctx context.Context, actor *model.User, req requestresponse.CreateOrderRequest) (*model.Order, error)
	ListAll(ctx context.Context, page, pageSize int) (*model.Page[model.Order], error)
	ListByClient(ctx context.Context, actor *model.User, clientID int64, page, pageSize int) (*model.Page[model.Order], error)
	GetByID(ctx context.Context, actor *model.User, id int64) (*model.Order, error)
	UpdateStatus(ctx context.Context, actor *model.User, id int64, status model.OrderStatus) (*model.Order, error)
	Delete(ctx context.Context, id int64) error
}

// EventPublisher : публикация доменных событий заказов во внешний брокер
type EventPublisher interface {
	Publish(ctx context.Context, event model.OrderEvent) error
	Close()
}
