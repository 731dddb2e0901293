package repository

import (
	"context"

	"github.com/oksasatya/go-blog-api/internal/domain/entity"
)

// UserRepository defines the interface for principal storage.
// Lookups of unknown users fail with an apperror.NotFound.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
