package mailer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPostNotice(t *testing.T) {
	t.Parallel()

	msg, err := RenderPostNotice(PostNotice{
		AppName:    "go-blog-api",
		AuthorName: "Alice",
		PostID:     "7c4d8b1e-0000-4000-8000-000000000001",
		Title:      "<b>Hello</b>",
		Action:     "updated",
		OccurredAt: time.Date(2026, 3, 4, 5, 6, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, "[go-blog-api] Your post was updated", msg.Subject)
	assert.Contains(t, msg.Text, `Your post "<b>Hello</b>" was updated on 2026-03-04 05:06 UTC.`)
	assert.Contains(t, msg.HTML, "&lt;b&gt;Hello&lt;/b&gt;")
	assert.NotContains(t, msg.HTML, "<b>Hello</b>")
}

func TestRenderPostNotice_DefaultGreeting(t *testing.T) {
	t.Parallel()

	msg, err := RenderPostNotice(PostNotice{AppName: "blog", Title: "T", Action: "created"})
	require.NoError(t, err)
	assert.Contains(t, msg.Text, "Hi there,")
}
