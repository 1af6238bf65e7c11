package repository

import (
	"context"

	"food-ordering-backend/internal/apperror"
	"food-ordering-backend/internal/model"

	"github.com/jmoiron/sqlx"
)

const addressColumns = `id, user_id, street, number, district, city, state, zip_code, created_at, updated_at`

type AddressRepository struct{}

func NewAddressRepository() *AddressRepository {
	return &AddressRepository{}
}

func (r *AddressRepository) Create(ctx context.Context, exec sqlx.ExtContext, a *model.Address) (*model.Address, error) {
	query := `
	INSERT INTO addresses (user_id, street, number, district, city, state, zip_code)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING ` + addressColumns

	var created model.Address
	err := sqlx.GetContext(ctx, exec, &created, query, a.UserID, a.Street, a.Number, a.District, a.City, a.State, a.ZipCode)
	if err != nil {
		return nil, mapError("[AddressRepo] ошибка вставки адреса", err, nil, nil)
	}
	return &created, nil
}

func (r *AddressRepository) FindByID(ctx context.Context, exec sqlx.ExtContext, id int64) (*model.Address, error) {
	var a model.Address
	if err := sqlx.GetContext(ctx, exec, &a, `SELECT `+addressColumns+` FROM addresses WHERE id = $1`, id); err != nil {
		return nil, mapError("[AddressRepo] не удалось найти адрес", err, apperror.ErrAddressNotFound, nil)
	}
	return &a, nil
}

func (r *AddressRepository) ListByUser(ctx context.Context, exec sqlx.ExtContext, userID int64) ([]model.Address, error) {
	addresses := []model.Address{}
	query := `SELECT ` + addressColumns + ` FROM addresses WHERE user_id = $1 ORDER BY id`
	if err := sqlx.SelectContext(ctx, exec, &addresses, query, userID); err != nil {
		return nil, mapError("[AddressRepo] не удалось получить адреса пользователя", err, nil, nil)
	}
	return addresses, nil
}

// Update : условие по user_id не даёт изменить чужой адрес
func (r *AddressRepository) Update(ctx context.Context, exec sqlx.ExtContext, a *model.Address) (*model.Address, error) {
	query := `
		UPDATE addresses
		SET street = $3, number = $4, district = $5, city = $6, state = $7, zip_code = $8, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + addressColumns

	var updated model.Address
	err := sqlx.GetContext(ctx, exec, &updated, query, a.ID, a.UserID, a.Street, a.Number, a.District, a.City, a.State, a.ZipCode)
	if err != nil {
		return nil, mapError("[AddressRepo] не удалось обновить адрес", err, apperror.ErrAddressNotFound, nil)
	}
	return &updated, nil
}

func (r *AddressRepository) Delete(ctx context.Context, exec sqlx.ExtContext, id, userID int64) error {
	res, err := exec.ExecContext(ctx, `DELETE FROM addresses WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return mapError("[AddressRepo] не удалось удалить адрес", err, nil, nil)
	}
	n, err := affected("[AddressRepo] Delete", res)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperror.ErrAddressNotFound
	}
	return nil
}
