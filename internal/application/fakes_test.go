package application

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/oksasatya/go-blog-api/internal/domain/entity"
)

type fakeCache struct {
	mu      sync.Mutex
	entries map[string]entity.User
	getErr  error
	sets    int
}

func newFakeCache() *fakeCache { return &fakeCache{entries: map[string]entity.User{}} }

func (c *fakeCache) Get(_ context.Context, id string) (*entity.User, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	u, ok := c.entries[id]
	if !ok {
		return nil, false, nil
	}
	return &u, true, nil
}

func (c *fakeCache) Set(_ context.Context, u *entity.User) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[u.ID] = *u
	c.sets++
	return nil
}

type fakeIndex struct {
	mu        sync.Mutex
	docs      map[string]entity.Post
	searchErr error
	writeErr  error
	hits      []entity.Post
}

func newFakeIndex() *fakeIndex { return &fakeIndex{docs: map[string]entity.Post{}} }

func (f *fakeIndex) Index(_ context.Context, p *entity.Post) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	f.docs[p.ID] = *p
	return nil
}

func (f *fakeIndex) Remove(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.docs, id)
	return nil
}

func (f *fakeIndex) Search(_ context.Context, _ string, _ int) ([]entity.Post, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.hits, nil
}

type fakeCovers struct {
	path        string
	contentType string
	body        string
}

func (f *fakeCovers) Upload(_ context.Context, objectPath, contentType string, r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.path, f.contentType, f.body = objectPath, contentType, string(b)
	return "https://storage.googleapis.com/covers-bucket/" + objectPath, nil
}

type fakeEvents struct {
	mu     sync.Mutex
	events []PostEvent
	err    error
}

func (f *fakeEvents) PublishJSON(_ context.Context, msgType string, body any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	evt, ok := body.(PostEvent)
	if !ok || evt.Type != msgType {
		return errors.New("unexpected event payload")
	}
	f.events = append(f.events, evt)
	return nil
}

func (f *fakeEvents) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.Type)
	}
	return out
}
