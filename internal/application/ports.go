package application

import (
	"context"
	"io"

	"github.com/oksasatya/go-blog-api/internal/domain/entity"
)

// PrincipalCache caches resolved principals. Implementations must not store
// credentials.
type PrincipalCache interface {
	Get(ctx context.Context, id string) (*entity.User, bool, error)
	Set(ctx context.Context, u *entity.User) error
}

// PostIndex is an external full-text index of posts.
type PostIndex interface {
	Index(ctx context.Context, p *entity.Post) error
	Remove(ctx context.Context, id string) error
	Search(ctx context.Context, q string, size int) ([]entity.Post, error)
}

// CoverStorage stores cover images and returns their public URL.
type CoverStorage interface {
	Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
}

// EventPublisher delivers post events to a message broker.
type EventPublisher interface {
	PublishJSON(ctx context.Context, msgType string, body any) error
}
