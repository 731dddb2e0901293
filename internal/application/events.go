package application

import "time"

const (
	PostCreated = "post.created"
	PostUpdated = "post.updated"
	PostDeleted = "post.deleted"
)

// PostEvent is published after every successful post mutation.
type PostEvent struct {
	Type        string    `json:"type"`
	PostID      string    `json:"postId"`
	Title       string    `json:"title"`
	AuthorID    string    `json:"authorId"`
	AuthorName  string    `json:"authorName"`
	AuthorEmail string    `json:"authorEmail"`
	OccurredAt  time.Time `json:"occurredAt"`
}
