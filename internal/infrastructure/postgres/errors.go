package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oksasatya/go-blog-api/pkg/apperror"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// translate converts driver errors into tagged application errors.
func translate(err error, notFoundMsg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperror.NewNotFound(notFoundMsg, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return apperror.NewConflict("Duplicate field value entered", err)
		case foreignKeyViolation:
			return apperror.NewValidation("author does not exist", err)
		}
	}
	return apperror.NewInternal("database error", err)
}
