package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/oksasatya/go-blog-api/internal/domain/entity"
)

const requestTimeout = 3 * time.Second

// PostIndex stores post documents in Elasticsearch for full-text search.
type PostIndex struct {
	es    *elasticsearch.Client
	index string
}

func NewPostIndex(es *elasticsearch.Client, index string) *PostIndex {
	return &PostIndex{es: es, index: index}
}

type postDocument struct {
	ID        string                `json:"id"`
	Title     string                `json:"title"`
	Content   string                `json:"content"`
	Author    *entity.AuthorSummary `json:"author,omitempty"`
	AuthorID  string                `json:"authorId"`
	CoverURL  string                `json:"coverUrl,omitempty"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
}

func toDocument(p *entity.Post) postDocument {
	return postDocument{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Author:    p.Author,
		AuthorID:  p.AuthorID,
		CoverURL:  p.CoverURL,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (d postDocument) toPost() entity.Post {
	return entity.Post{
		ID:        d.ID,
		Title:     d.Title,
		Content:   d.Content,
		AuthorID:  d.AuthorID,
		Author:    d.Author,
		CoverURL:  d.CoverURL,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (x *PostIndex) Index(ctx context.Context, p *entity.Post) error {
	b, err := json.Marshal(toDocument(p))
	if err != nil {
		return err
	}
	req := esapi.IndexRequest{Index: x.index, DocumentID: p.ID, Body: bytes.NewReader(b), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := req.Do(c, x.es)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("es index %s: %s", p.ID, res.Status())
	}
	return nil
}

func (x *PostIndex) Remove(ctx context.Context, id string) error {
	req := esapi.DeleteRequest{Index: x.index, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := req.Do(c, x.es)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	// 404 means the document was never indexed
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("es delete %s: %s", id, res.Status())
	}
	return nil
}

// Search runs a multi_match on title and content, title boosted.
func (x *PostIndex) Search(ctx context.Context, q string, size int) ([]entity.Post, error) {
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "content"},
			},
		},
		"size": size,
	}
	b, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	res, err := x.es.Search(x.es.Search.WithContext(c), x.es.Search.WithIndex(x.index), x.es.Search.WithBody(bytes.NewReader(b)))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, fmt.Errorf("es search: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source postDocument `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]entity.Post, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source.toPost())
	}
	return out, nil
}
