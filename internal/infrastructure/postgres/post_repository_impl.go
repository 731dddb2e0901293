package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-blog-api/internal/domain/entity"
	"github.com/oksasatya/go-blog-api/internal/domain/repository"
	"github.com/oksasatya/go-blog-api/pkg/apperror"
)

const postNotFound = "Post not found"

const selectPopulated = `
	SELECT p.id, p.title, p.content, p.author_id, p.cover_url, p.created_at, p.updated_at,
	       u.name, u.email
	FROM posts p
	JOIN users u ON u.id = p.author_id
`

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

func scanPopulated(row pgx.Row) (*entity.Post, error) {
	p := &entity.Post{Author: &entity.AuthorSummary{}}
	if err := row.Scan(&p.ID, &p.Title, &p.Content, &p.AuthorID, &p.CoverURL, &p.CreatedAt, &p.UpdatedAt,
		&p.Author.Name, &p.Author.Email); err != nil {
		return nil, err
	}
	p.Author.ID = p.AuthorID
	return p, nil
}

func (r *PostRepository) collect(ctx context.Context, sql string, args ...any) ([]entity.Post, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, translate(err, postNotFound)
	}
	defer rows.Close()

	out := make([]entity.Post, 0)
	for rows.Next() {
		p, err := scanPopulated(rows)
		if err != nil {
			return nil, translate(err, postNotFound)
		}
		out = append(out, *p)
	}
	return out, translate(rows.Err(), postNotFound)
}

func (r *PostRepository) List(ctx context.Context) ([]entity.Post, error) {
	return r.collect(ctx, selectPopulated+` ORDER BY p.created_at, p.id`)
}

func (r *PostRepository) Search(ctx context.Context, q string, limit int) ([]entity.Post, error) {
	pattern := "%" + escapeLike(q) + "%"
	return r.collect(ctx, selectPopulated+`
		WHERE p.title ILIKE $1 OR p.content ILIKE $1
		ORDER BY p.created_at DESC, p.id
		LIMIT $2`, pattern, limit)
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	canonical, ok := entity.CanonicalID(id)
	if !ok {
		return nil, apperror.NewNotFound(postNotFound, nil)
	}
	p, err := scanPopulated(r.pool.QueryRow(ctx, selectPopulated+` WHERE p.id = $1`, canonical))
	if err != nil {
		return nil, translate(err, postNotFound)
	}
	return p, nil
}

func (r *PostRepository) Create(ctx context.Context, p *entity.Post) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO posts (title, content, author_id, cover_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, p.Title, p.Content, p.AuthorID, p.CoverURL)

	return translate(row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt), postNotFound)
}

// Update overwrites the mutable columns. Concurrent writers are last-write-wins.
func (r *PostRepository) Update(ctx context.Context, p *entity.Post) error {
	canonical, ok := entity.CanonicalID(p.ID)
	if !ok {
		return apperror.NewNotFound(postNotFound, nil)
	}
	p.UpdatedAt = time.Now().UTC()

	res, err := r.pool.Exec(ctx, `
		UPDATE posts
		SET title = $1, content = $2, cover_url = $3, updated_at = $4
		WHERE id = $5
	`, p.Title, p.Content, p.CoverURL, p.UpdatedAt, canonical)
	if err != nil {
		return translate(err, postNotFound)
	}
	if res.RowsAffected() == 0 {
		return apperror.NewNotFound(postNotFound, nil)
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	canonical, ok := entity.CanonicalID(id)
	if !ok {
		return apperror.NewNotFound(postNotFound, nil)
	}
	res, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, canonical)
	if err != nil {
		return translate(err, postNotFound)
	}
	if res.RowsAffected() == 0 {
		return apperror.NewNotFound(postNotFound, nil)
	}
	return nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

var _ repository.PostRepository = (*PostRepository)(nil)
