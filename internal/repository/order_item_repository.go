package repository

import (
	"context"

	"food-ordering-backend/internal/model"

	"github.com/jmoiron/sqlx"
)

const orderItemColumns = `id, order_id, item_id, quantity, unit_price_cents, subtotal_cents, created_at, updated_at`

type OrderItemRepository struct{}

func NewOrderItemRepository() *OrderItemRepository {
	return &OrderItemRepository{}
}

func (r *OrderItemRepository) Create(ctx context.Context, exec sqlx.ExtContext, oi *model.OrderItem) (*model.OrderItem, error) {
	query := `
	INSERT INTO order_items (order_id, item_id, quantity, unit_price_cents, subtotal_cents)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING ` + orderItemColumns

	var created model.OrderItem
	err := sqlx.GetContext(ctx, exec, &created, query, oi.OrderID, oi.ItemID, oi.Quantity, oi.UnitPriceCents, oi.SubtotalCents)
	if err != nil {
		return nil, mapError("[OrderItemRepo] ошибка вставки строки заказа", err, nil, nil)
	}
	return &created, nil
}

func (r *OrderItemRepository) ListByOrder(ctx context.Context, exec sqlx.ExtContext, orderID int64) ([]model.OrderItem, error) {
	items := []model.OrderItem{}
	query := `SELECT ` + orderItemColumns + ` FROM order_items WHERE order_id = $1 ORDER BY id`
	if err := sqlx.SelectContext(ctx, exec, &items, query, orderID); err != nil {
		return nil, mapError("[OrderItemRepo] не удалось получить строки заказа", err, nil, nil)
	}
	return items, nil
}
