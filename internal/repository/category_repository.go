package repository

import (
	"context"

	"food-ordering-backend/internal/apperror"
	"food-ordering-backend/internal/model"

	"github.com/jmoiron/sqlx"
)

const categoryColumns = `id, name, description, created_at, updated_at`

type CategoryRepository struct{}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

func (r *CategoryRepository) Create(ctx context.Context, exec sqlx.ExtContext, c *model.Category) (*model.Category, error) {
	query := `INSERT INTO categories (name, description) VALUES ($1, $2) RETURNING ` + categoryColumns

	var created model.Category
	if err := sqlx.GetContext(ctx, exec, &created, query, c.Name, c.Description); err != nil {
		return nil, mapError("[CategoryRepo] ошибка вставки категории", err, nil, apperror.ErrCategoryNameInUse)
	}
	return &created, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, exec sqlx.ExtContext, id int64) (*model.Category, error) {
	var c model.Category
	if err := sqlx.GetContext(ctx, exec, &c, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id); err != nil {
		return nil, mapError("[CategoryRepo] не удалось найти категорию", err, apperror.ErrCategoryNotFound, nil)
	}
	return &c, nil
}

func (r *CategoryRepository) List(ctx context.Context, exec sqlx.ExtContext) ([]model.Category, error) {
	categories := []model.Category{}
	if err := sqlx.SelectContext(ctx, exec, &categories, `SELECT `+categoryColumns+` FROM categories ORDER BY id`); err != nil {
		return nil, mapError("[CategoryRepo] не удалось получить категории", err, nil, nil)
	}
	return categories, nil
}

func (r *CategoryRepository) Update(ctx context.Context, exec sqlx.ExtContext, c *model.Category) (*model.Category, error) {
	query := `
		UPDATE categories SET name = $2, description = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + categoryColumns

	var updated model.Category
	if err := sqlx.GetContext(ctx, exec, &updated, query, c.ID, c.Name, c.Description); err != nil {
		return nil, mapError("[CategoryRepo] не удалось обновить категорию", err, apperror.ErrCategoryNotFound, apperror.ErrCategoryNameInUse)
	}
	return &updated, nil
}

// Delete : категория с позициями не удаляется, FK вернёт ошибку валидации
func (r *CategoryRepository) Delete(ctx context.Context, exec sqlx.ExtContext, id int64) error {
	res, err := exec.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return mapError("[CategoryRepo] не удалось удалить категорию", err, nil, nil)
	}
	n, err := affected("[CategoryRepo] Delete", res)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperror.ErrCategoryNotFound
	}
	return nil
}
