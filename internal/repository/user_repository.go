package repository

import (
	"context"

	"food-ordering-backend/internal/apperror"
	"food-ordering-backend/internal/model"

	"github.com/jmoiron/sqlx"
)

const userColumns = `id, name, email, password_hash, phone, type, created_at, updated_at`

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// CreateUser : сохраняет нового пользователя
func (r *UserRepository) CreateUser(ctx context.Context, exec sqlx.ExtContext, user *model.User) (*model.User, error) {
	query := `
	INSERT INTO users (name, email, password_hash, phone, type)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING ` + userColumns

	var created model.User
	err := sqlx.GetContext(ctx, exec, &created, query, user.Name, user.Email, user.PasswordHash, user.Phone, user.Type)
	if err != nil {
		return nil, mapError("[UserRepo] ошибка вставки данных в БД", err, nil, apperror.ErrEmailInUse)
	}

	return &created, nil
}

// FindByID : ищет пользователя по id
func (r *UserRepository) FindByID(ctx context.Context, exec sqlx.ExtContext, id int64) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	var user model.User
	if err := sqlx.GetContext(ctx, exec, &user, query, id); err != nil {
		return nil, mapError("[UserRepo] не удалось найти пользователя в БД", err, apperror.ErrUserNotFound, nil)
	}
	return &user, nil
}

// FindByEmail : ищет пользователя по email
func (r *UserRepository) FindByEmail(ctx context.Context, exec sqlx.ExtContext, email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	var user model.User
	if err := sqlx.GetContext(ctx, exec, &user, query, email); err != nil {
		return nil, mapError("[UserRepo] не удалось найти пользователя по email", err, apperror.ErrUserNotFound, nil)
	}
	return &user, nil
}

// UpdateUser : перезаписывает изменяемые поля
func (r *UserRepository) UpdateUser(ctx context.Context, exec sqlx.ExtContext, user *model.User) (*model.User, error) {
	query := `
		UPDATE users
		SET name = $2, email = $3, password_hash = $4, phone = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	var updated model.User
	err := sqlx.GetContext(ctx, exec, &updated, query, user.ID, user.Name, user.Email, user.PasswordHash, user.Phone)
	if err != nil {
		return nil, mapError("[UserRepo] не удалось обновить пользователя", err, apperror.ErrUserNotFound, apperror.ErrEmailInUse)
	}
	return &updated, nil
}

// DeleteUser : удаляет пользователя; токены, адреса и уведомления удаляются каскадом
func (r *UserRepository) DeleteUser(ctx context.Context, exec sqlx.ExtContext, id int64) error {
	res, err := exec.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return mapError("[UserRepo] не удалось удалить пользователя", err, nil, nil)
	}
	n, err := affected("[UserRepo] DeleteUser", res)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperror.ErrUserNotFound
	}
	return nil
}

// ListAdmins : все администраторы, получатели уведомлений о новых заказах
func (r *UserRepository) ListAdmins(ctx context.Context, exec sqlx.ExtContext) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE type = 'ADMIN' ORDER BY id`
	var admins []model.User
	if err := sqlx.SelectContext(ctx, exec, &admins, query); err != nil {
		return nil, mapError("[UserRepo] не удалось получить список администраторов", err, nil, nil)
	}
	return admins, nil
}
