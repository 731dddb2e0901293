package mailer

import (
	"bytes"
	"fmt"
	htmpl "html/template"
	texttpl "text/template"
	"time"
)

// Message is a rendered email.
type Message struct {
	Subject string
	Text    string
	HTML    string
}

// PostNotice is the data behind a post activity email sent to the author.
type PostNotice struct {
	AppName    string
	AuthorName string
	PostID     string
	Title      string
	Action     string // created, updated or deleted
	OccurredAt time.Time
}

const postNoticeText = `Hi {{.AuthorName}},

Your post "{{.Title}}" was {{.Action}} on {{.OccurredAt.Format "2006-01-02 15:04 MST"}}.
Post ID: {{.PostID}}

-- {{.AppName}}
`

const postNoticeHTML = `<p>Hi {{.AuthorName}},</p>
<p>Your post <strong>{{.Title}}</strong> was {{.Action}} on {{.OccurredAt.Format "2006-01-02 15:04 MST"}}.</p>
<p style="color:#888">Post ID: {{.PostID}}</p>
<p>{{.AppName}}</p>
`

var (
	noticeText = texttpl.Must(texttpl.New("post_notice_text").Parse(postNoticeText))
	noticeHTML = htmpl.Must(htmpl.New("post_notice_html").Parse(postNoticeHTML))
)

// RenderPostNotice renders subject, text and HTML bodies for n.
func RenderPostNotice(n PostNotice) (Message, error) {
	if n.AuthorName == "" {
		n.AuthorName = "there"
	}
	var text, html bytes.Buffer
	if err := noticeText.Execute(&text, n); err != nil {
		return Message{}, fmt.Errorf("render text: %w", err)
	}
	if err := noticeHTML.Execute(&html, n); err != nil {
		return Message{}, fmt.Errorf("render html: %w", err)
	}
	return Message{
		Subject: fmt.Sprintf("[%s] Your post was %s", n.AppName, n.Action),
		Text:    text.String(),
		HTML:    html.String(),
	}, nil
}
