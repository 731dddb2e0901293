package application

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blog-api/internal/domain/entity"
	repo "github.com/oksasatya/go-blog-api/internal/domain/repository"
	"github.com/oksasatya/go-blog-api/pkg/apperror"
	"github.com/oksasatya/go-blog-api/pkg/helpers"
)

const (
	defaultSearchSize = 10
	maxSearchSize     = 50
)

// PostService implements post CRUD. Mutations require an authenticated
// principal and, for existing posts, that the principal owns the post.
// Index, Covers and Events are optional.
type PostService struct {
	Repo   repo.PostRepository
	Index  PostIndex
	Covers CoverStorage
	Events EventPublisher
	Logger *logrus.Logger
}

func NewPostService(r repo.PostRepository, index PostIndex, covers CoverStorage, events EventPublisher, logger *logrus.Logger) *PostService {
	if logger == nil {
		logger = helpers.NopLogger()
	}
	return &PostService{Repo: r, Index: index, Covers: covers, Events: events, Logger: logger}
}

func (s *PostService) List(ctx context.Context) ([]entity.Post, error) {
	return s.Repo.List(ctx)
}

func (s *PostService) Get(ctx context.Context, id string) (*entity.Post, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *PostService) Create(ctx context.Context, principal *entity.User, title, content string) (*entity.Post, error) {
	if title == "" || content == "" {
		return nil, apperror.NewValidation("Please provide title and content", nil)
	}
	authorID, ok := entity.CanonicalID(principal.ID)
	if !ok {
		return nil, apperror.NewUnauthenticated("invalid principal", nil)
	}
	p := &entity.Post{Title: title, Content: content, AuthorID: authorID}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.afterWrite(ctx, PostCreated, p, principal)
	return p, nil
}

// Update applies patch to the post. Omitted or empty fields keep their value.
func (s *PostService) Update(ctx context.Context, principal *entity.User, id string, patch entity.PostPatch) (*entity.Post, error) {
	p, err := s.loadOwned(ctx, principal, id, "Not authorized to update this post")
	if err != nil {
		return nil, err
	}
	patch.Apply(p)
	if err := s.Repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.afterWrite(ctx, PostUpdated, p, principal)
	return p, nil
}

func (s *PostService) Delete(ctx context.Context, principal *entity.User, id string) error {
	p, err := s.loadOwned(ctx, principal, id, "Not authorized to delete this post")
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, p.ID); err != nil {
		return err
	}
	if s.Index != nil {
		if err := s.Index.Remove(ctx, p.ID); err != nil {
			s.Logger.WithError(err).WithField("post_id", p.ID).Warn("search index delete failed")
		}
	}
	s.publish(ctx, PostDeleted, p, principal)
	return nil
}

// Search prefers the external index and falls back to the store.
func (s *PostService) Search(ctx context.Context, q string, size int) ([]entity.Post, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, apperror.NewValidation("Please provide a search query", nil)
	}
	switch {
	case size <= 0:
		size = defaultSearchSize
	case size > maxSearchSize:
		size = maxSearchSize
	}
	if s.Index != nil {
		posts, err := s.Index.Search(ctx, q, size)
		if err == nil {
			return posts, nil
		}
		s.Logger.WithError(err).Warn("search index query failed, falling back to store")
	}
	return s.Repo.Search(ctx, q, size)
}

// UploadCover stores an image for the post and records its URL. Owner only.
func (s *PostService) UploadCover(ctx context.Context, principal *entity.User, id string, r io.Reader, filename, contentType string) (*entity.Post, error) {
	p, err := s.loadOwned(ctx, principal, id, "Not authorized to update this post")
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, apperror.NewValidation("Cover must be an image", nil)
	}
	if s.Covers == nil {
		return nil, apperror.NewInternal("cover storage not configured", nil)
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("covers", p.ID, entity.NewID()+ext))
	url, err := s.Covers.Upload(ctx, objectPath, contentType, r)
	if err != nil {
		return nil, apperror.NewInternal("cover upload failed", err)
	}
	p.CoverURL = url
	if err := s.Repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.afterWrite(ctx, PostUpdated, p, principal)
	return p, nil
}

// loadOwned fetches the post, then checks ownership. A missing post is
// reported before ownership is evaluated.
func (s *PostService) loadOwned(ctx context.Context, principal *entity.User, id, deniedMsg string) (*entity.Post, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := ensureOwner(p, principal, deniedMsg); err != nil {
		return nil, err
	}
	return p, nil
}

func ensureOwner(p *entity.Post, principal *entity.User, deniedMsg string) error {
	owner, ok1 := entity.CanonicalID(p.AuthorID)
	caller, ok2 := entity.CanonicalID(principal.ID)
	if !ok1 || !ok2 || owner != caller {
		return apperror.NewForbidden(deniedMsg, nil)
	}
	return nil
}

// afterWrite indexes and publishes. Failures are logged only; the write already succeeded.
func (s *PostService) afterWrite(ctx context.Context, eventType string, p *entity.Post, principal *entity.User) {
	if s.Index != nil {
		doc := *p
		doc.Author = &entity.AuthorSummary{ID: p.AuthorID, Name: principal.Name, Email: principal.Email}
		if err := s.Index.Index(ctx, &doc); err != nil {
			s.Logger.WithError(err).WithField("post_id", p.ID).Warn("search index write failed")
		}
	}
	s.publish(ctx, eventType, p, principal)
	// responses after a write carry the bare author id
	p.Author = nil
}

func (s *PostService) publish(ctx context.Context, eventType string, p *entity.Post, principal *entity.User) {
	if s.Events == nil {
		return
	}
	evt := PostEvent{
		Type:        eventType,
		PostID:      p.ID,
		Title:       p.Title,
		AuthorID:    p.AuthorID,
		AuthorName:  principal.Name,
		AuthorEmail: principal.Email,
		OccurredAt:  time.Now().UTC(),
	}
	if err := s.Events.PublishJSON(ctx, eventType, evt); err != nil {
		s.Logger.WithError(err).WithFields(logrus.Fields{"post_id": p.ID, "event": eventType}).Warn("publish post event failed")
	}
}
