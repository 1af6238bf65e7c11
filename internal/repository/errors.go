package repository

import (
	"database/sql"
	"errors"

	"food-ordering-backend/internal/apperror"
	"food-ordering-backend/internal/util"

	"github.com/lib/pq"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// mapError : sql.ErrNoRows -> notFound, unique -> conflict, foreign key -> validation.
// Остальное логируется и возвращается обёрнутым.
func mapError(op string, err error, notFound, conflict *apperror.Error) error {
	if errors.Is(err, sql.ErrNoRows) && notFound != nil {
		return notFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			if conflict != nil {
				return conflict.Wrap(err)
			}
		case pqForeignKeyViolation:
			return apperror.Validation("referenced entity does not exist", map[string]string{
				pqErr.Constraint: "foreign key",
			})
		}
	}

	return util.LogError(op, err)
}

// affected : количество затронутых строк
func affected(op string, res sql.Result) (int64, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, util.LogError(op+": не удалось получить количество строк", err)
	}
	return n, nil
}
