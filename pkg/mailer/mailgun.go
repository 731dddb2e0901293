package mailer

import (
	"context"
	"time"

	mg "github.com/mailgun/mailgun-go/v4"
)

const sendTimeout = 10 * time.Second

// Sender delivers a rendered message.
type Sender interface {
	Send(ctx context.Context, to string, msg Message) error
}

// Mailgun sends mail through the Mailgun API.
type Mailgun struct {
	client *mg.MailgunImpl
	Sender string
}

func NewMailgun(domain, apiKey, sender string) *Mailgun {
	return &Mailgun{client: mg.NewMailgun(domain, apiKey), Sender: sender}
}

// Send sends msg to a single recipient. HTML is optional.
func (m *Mailgun) Send(ctx context.Context, to string, msg Message) error {
	out := m.client.NewMessage(m.Sender, msg.Subject, msg.Text, to)
	if msg.HTML != "" {
		out.SetHtml(msg.HTML)
	}
	c, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()
	_, _, err := m.client.Send(c, out)
	return err
}
