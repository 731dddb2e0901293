package entity

import "time"

// AuthorSummary is the owner projection embedded when posts are listed.
type AuthorSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Post is owned by the principal that created it. AuthorID never changes.
type Post struct {
	ID        string
	Title     string
	Content   string
	AuthorID  string
	Author    *AuthorSummary // set only when the owner was populated
	CoverURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PostPatch carries a partial update. Nil or empty fields keep their value.
type PostPatch struct {
	Title   *string
	Content *string
}

// Apply merges the patch into p and reports whether anything changed.
func (pp PostPatch) Apply(p *Post) bool {
	changed := false
	if pp.Title != nil && *pp.Title != "" && *pp.Title != p.Title {
		p.Title = *pp.Title
		changed = true
	}
	if pp.Content != nil && *pp.Content != "" && *pp.Content != p.Content {
		p.Content = *pp.Content
		changed = true
	}
	return changed
}
