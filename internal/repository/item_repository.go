package repository

import (
	"context"

	"food-ordering-backend/internal/apperror"
	"food-ordering-backend/internal/model"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const itemColumns = `id, name, description, unit_price_cents, category_id, image_url, image_key, available, created_at, updated_at`

type ItemRepository struct{}

func NewItemRepository() *ItemRepository {
	return &ItemRepository{}
}

func (r *ItemRepository) Create(ctx context.Context, exec sqlx.ExtContext, it *model.Item) (*model.Item, error) {
	query := `
	INSERT INTO items (name, description, unit_price_cents, category_id, image_url, available)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING ` + itemColumns

	var created model.Item
	err := sqlx.GetContext(ctx, exec, &created, query, it.Name, it.Description, it.UnitPriceCents, it.CategoryID, it.ImageURL, it.Available)
	if err != nil {
		return nil, mapError("[ItemRepo] ошибка вставки позиции", err, nil, apperror.ErrItemNameInUse)
	}
	return &created, nil
}

func (r *ItemRepository) FindByID(ctx context.Context, exec sqlx.ExtContext, id int64) (*model.Item, error) {
	var it model.Item
	if err := sqlx.GetContext(ctx, exec, &it, `SELECT `+itemColumns+` FROM items WHERE id = $1`, id); err != nil {
		return nil, mapError("[ItemRepo] не удалось найти позицию", err, apperror.ErrItemNotFound, nil)
	}
	return &it, nil
}

// FindByIDs : позиции заказа одним запросом, отсутствующие id просто не попадут в map
func (r *ItemRepository) FindByIDs(ctx context.Context, exec sqlx.ExtContext, ids []int64) (map[int64]model.Item, error) {
	var items []model.Item
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = ANY($1)`
	if err := sqlx.SelectContext(ctx, exec, &items, query, pq.Array(ids)); err != nil {
		return nil, mapError("[ItemRepo] не удалось получить позиции", err, nil, nil)
	}

	result := make(map[int64]model.Item, len(items))
	for _, it := range items {
		result[it.ID] = it
	}
	return result, nil
}

func (r *ItemRepository) List(ctx context.Context, exec sqlx.ExtContext) ([]model.Item, error) {
	items := []model.Item{}
	if err := sqlx.SelectContext(ctx, exec, &items, `SELECT `+itemColumns+` FROM items ORDER BY id`); err != nil {
		return nil, mapError("[ItemRepo] не удалось получить позиции", err, nil, nil)
	}
	return items, nil
}

func (r *ItemRepository) Update(ctx context.Context, exec sqlx.ExtContext, it *model.Item) (*model.Item, error) {
	query := `
		UPDATE items
		SET name = $2, description = $3, unit_price_cents = $4, category_id = $5, image_url = $6, available = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + itemColumns

	var updated model.Item
	err := sqlx.GetContext(ctx, exec, &updated, query, it.ID, it.Name, it.Description, it.UnitPriceCents, it.CategoryID, it.ImageURL, it.Available)
	if err != nil {
		return nil, mapError("[ItemRepo] не удалось обновить позицию", err, apperror.ErrItemNotFound, apperror.ErrItemNameInUse)
	}
	return &updated, nil
}

func (r *ItemRepository) SetImageKey(ctx context.Context, exec sqlx.ExtContext, id int64, key string) error {
	res, err := exec.ExecContext(ctx, `UPDATE items SET image_key = $2, updated_at = NOW() WHERE id = $1`, id, key)
	if err != nil {
		return mapError("[ItemRepo] не удалось сохранить ключ картинки", err, nil, nil)
	}
	n, err := affected("[ItemRepo] SetImageKey", res)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperror.ErrItemNotFound
	}
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, exec sqlx.ExtContext, id int64) error {
	res, err := exec.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return mapError("[ItemRepo] не удалось удалить позицию", err, nil, nil)
	}
	n, err := affected("[ItemRepo] Delete", res)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperror.ErrItemNotFound
	}
	return nil
}
