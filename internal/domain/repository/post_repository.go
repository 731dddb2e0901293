package repository

import (
	"context"

	"github.com/oksasatya/go-blog-api/internal/domain/entity"
)

// PostRepository persists posts keyed by UUID.
// Malformed or unknown ids fail with apperror.NotFound, duplicate unique
// values with apperror.Conflict and anything else with apperror.Internal.
type PostRepository interface {
	// List returns every post with its author populated.
	List(ctx context.Context) ([]entity.Post, error)
	// GetByID returns the post with its author populated.
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	// Search does a case-insensitive substring match on title and content.
	Search(ctx context.Context, q string, limit int) ([]entity.Post, error)
	Create(ctx context.Context, p *entity.Post) error
	Update(ctx context.Context, p *entity.Post) error
	Delete(ctx context.Context, id string) error
}
