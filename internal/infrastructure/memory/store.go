// Package memory provides in-process implementations of the repository
// ports. It backs STORE_DRIVER=memory and the HTTP tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/oksasatya/go-blog-api/internal/domain/entity"
	"github.com/oksasatya/go-blog-api/internal/domain/repository"
	"github.com/oksasatya/go-blog-api/pkg/apperror"
)

// Store keeps users and posts in maps guarded by a single RWMutex.
type Store struct {
	mu sync.RWMutex

	users   map[string]entity.User
	byEmail map[string]string
	posts   map[string]entity.Post

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		users:   make(map[string]entity.User),
		byEmail: make(map[string]string),
		posts:   make(map[string]entity.Post),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Users returns the store as a UserRepository.
func (s *Store) Users() repository.UserRepository { return userRepo{s} }

// Posts returns the store as a PostRepository.
func (s *Store) Posts() repository.PostRepository { return postRepo{s} }

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, u *entity.User) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(u.Email)
	if id, ok := s.byEmail[email]; ok {
		existing := s.users[id]
		existing.Name = u.Name
		existing.Password = u.Password
		existing.UpdatedAt = s.now()
		s.users[id] = existing
		*u = existing
		return nil
	}
	now := s.now()
	u.ID = entity.NewID()
	u.CreatedAt, u.UpdatedAt = now, now
	s.users[u.ID] = *u
	s.byEmail[email] = u.ID
	return nil
}

func (r userRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	canonical, ok := entity.CanonicalID(id)
	if !ok {
		return nil, apperror.NewNotFound("user not found", nil)
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[canonical]
	if !ok {
		return nil, apperror.NewNotFound("user not found", nil)
	}
	return &u, nil
}

func (r userRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, apperror.NewNotFound("user not found", nil)
	}
	u := r.s.users[id]
	return &u, nil
}

type postRepo struct{ s *Store }

// populate must be called with the lock held.
func (s *Store) populate(p entity.Post) entity.Post {
	if u, ok := s.users[p.AuthorID]; ok {
		p.Author = &entity.AuthorSummary{ID: u.ID, Name: u.Name, Email: u.Email}
	}
	return p
}

func (s *Store) sorted() []entity.Post {
	out := make([]entity.Post, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, s.populate(p))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (r postRepo) List(_ context.Context) ([]entity.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.sorted(), nil
}

func (r postRepo) Search(_ context.Context, q string, limit int) ([]entity.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	q = strings.ToLower(q)
	all := r.s.sorted()
	out := make([]entity.Post, 0)
	for i := len(all) - 1; i >= 0 && len(out) < limit; i-- {
		p := all[i]
		if strings.Contains(strings.ToLower(p.Title), q) || strings.Contains(strings.ToLower(p.Content), q) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r postRepo) GetByID(_ context.Context, id string) (*entity.Post, error) {
	canonical, ok := entity.CanonicalID(id)
	if !ok {
		return nil, apperror.NewNotFound("Post not found", nil)
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.posts[canonical]
	if !ok {
		return nil, apperror.NewNotFound("Post not found", nil)
	}
	p = r.s.populate(p)
	return &p, nil
}

func (r postRepo) Create(_ context.Context, p *entity.Post) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[p.AuthorID]; !ok {
		return apperror.NewValidation("author does not exist", nil)
	}
	now := s.now()
	p.ID = entity.NewID()
	p.CreatedAt, p.UpdatedAt = now, now
	stored := *p
	stored.Author = nil
	s.posts[p.ID] = stored
	return nil
}

func (r postRepo) Update(_ context.Context, p *entity.Post) error {
	canonical, ok := entity.CanonicalID(p.ID)
	if !ok {
		return apperror.NewNotFound("Post not found", nil)
	}
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.posts[canonical]
	if !ok {
		return apperror.NewNotFound("Post not found", nil)
	}
	existing.Title = p.Title
	existing.Content = p.Content
	existing.CoverURL = p.CoverURL
	existing.UpdatedAt = s.now()
	s.posts[canonical] = existing
	p.UpdatedAt = existing.UpdatedAt
	return nil
}

func (r postRepo) Delete(_ context.Context, id string) error {
	canonical, ok := entity.CanonicalID(id)
	if !ok {
		return apperror.NewNotFound("Post not found", nil)
	}
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[canonical]; !ok {
		return apperror.NewNotFound("Post not found", nil)
	}
	delete(s.posts, canonical)
	return nil
}

var (
	_ repository.UserRepository = userRepo{}
	_ repository.PostRepository = postRepo{}
)
