package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/oksasatya/go-blog-api/pkg/apperror"
)

func TestTranslate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, translate(nil, "x"))

	nf := translate(fmt.Errorf("scan: %w", pgx.ErrNoRows), "Post not found")
	assert.True(t, apperror.IsNotFound(nf))
	ae, _ := apperror.From(nf)
	assert.Equal(t, "Post not found", ae.Message)

	dup := translate(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}, "x")
	assert.True(t, apperror.IsConflict(dup))

	fk := translate(&pgconn.PgError{Code: "23503", ConstraintName: "posts_author_id_fkey"}, "x")
	assert.True(t, apperror.IsValidation(fk))

	other := translate(errors.New("conn refused"), "x")
	assert.Equal(t, apperror.Internal, apperror.KindOf(other))
}
