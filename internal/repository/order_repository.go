package repository

import (
	"context"

	"food-ordering-backend/internal/apperror"
	"food-ordering-backend/internal/model"

	"github.com/jmoiron/sqlx"
)

const orderColumns = `id, client_id, address_id, confirmed_by_user_id, status, payment_method, total_amount_cents, created_at, updated_at`

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) Create(ctx context.Context, exec sqlx.ExtContext, o *model.Order) (*model.Order, error) {
	query := `
	INSERT INTO orders (client_id, address_id, status, payment_method, total_amount_cents)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING ` + orderColumns

	var created model.Order
	err := sqlx.GetContext(ctx, exec, &created, query, o.ClientID, o.AddressID, o.Status, o.PaymentMethod, o.TotalAmountCents)
	if err != nil {
		return nil, mapError("[OrderRepo] ошибка вставки заказа", err, nil, nil)
	}
	return &created, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, exec sqlx.ExtContext, id int64) (*model.Order, error) {
	var o model.Order
	if err := sqlx.GetContext(ctx, exec, &o, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id); err != nil {
		return nil, mapError("[OrderRepo] не удалось найти заказ", err, apperror.ErrOrderNotFound, nil)
	}
	return &o, nil
}

// List : страница всех заказов, новые первыми, и общее количество
func (r *OrderRepository) List(ctx context.Context, exec sqlx.ExtContext, offset, limit int) ([]model.Order, int, error) {
	var total int
	if err := sqlx.GetContext(ctx, exec, &total, `SELECT COUNT(*) FROM orders`); err != nil {
		return nil, 0, mapError("[OrderRepo] не удалось посчитать заказы", err, nil, nil)
	}

	orders := []model.Order{}
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`
	if err := sqlx.SelectContext(ctx, exec, &orders, query, limit, offset); err != nil {
		return nil, 0, mapError("[OrderRepo] не удалось получить заказы", err, nil, nil)
	}
	return orders, total, nil
}

func (r *OrderRepository) ListByClient(ctx context.Context, exec sqlx.ExtContext, clientID int64, offset, limit int) ([]model.Order, int, error) {
	var total int
	if err := sqlx.GetContext(ctx, exec, &total, `SELECT COUNT(*) FROM orders WHERE client_id = $1`, clientID); err != nil {
		return nil, 0, mapError("[OrderRepo] не удалось посчитать заказы клиента", err, nil, nil)
	}

	orders := []model.Order{}
	query := `SELECT ` + orderColumns + ` FROM orders WHERE client_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`
	if err := sqlx.SelectContext(ctx, exec, &orders, query, clientID, limit, offset); err != nil {
		return nil, 0, mapError("[OrderRepo] не удалось получить заказы клиента", err, nil, nil)
	}
	return orders, total, nil
}

// UpdateStatus : меняет статус и запоминает подтвердившего администратора
func (r *OrderRepository) UpdateStatus(ctx context.Context, exec sqlx.ExtContext, id int64, status model.OrderStatus, confirmedBy int64) (*model.Order, error) {
	query := `
		UPDATE orders SET status = $2, confirmed_by_user_id = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + orderColumns

	var o model.Order
	if err := sqlx.GetContext(ctx, exec, &o, query, id, status, confirmedBy); err != nil {
		return nil, mapError("[OrderRepo] не удалось обновить статус заказа", err, apperror.ErrOrderNotFound, nil)
	}
	return &o, nil
}

// Delete : строки заказа удаляются каскадом
func (r *OrderRepository) Delete(ctx context.Context, exec sqlx.ExtContext, id int64) error {
	res, err := exec.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return mapError("[OrderRepo] не удалось удалить заказ", err, nil, nil)
	}
	n, err := affected("[OrderRepo] Delete", res)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperror.ErrOrderNotFound
	}
	return nil
}
