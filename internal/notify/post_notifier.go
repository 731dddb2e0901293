// Package notify turns post events into author notification emails.
package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blog-api/internal/application"
	"github.com/oksasatya/go-blog-api/pkg/mailer"
)

// ErrMalformed marks a message that can never be delivered. It must not be requeued.
var ErrMalformed = errors.New("malformed post event")

var actions = map[string]string{
	application.PostCreated: "created",
	application.PostUpdated: "updated",
	application.PostDeleted: "deleted",
}

type PostNotifier struct {
	Sender  mailer.Sender
	AppName string
	Logger  *logrus.Logger
}

func NewPostNotifier(sender mailer.Sender, appName string, logger *logrus.Logger) *PostNotifier {
	return &PostNotifier{Sender: sender, AppName: appName, Logger: logger}
}

// Handle decodes one queued event and mails its author. Errors wrapping
// ErrMalformed are permanent; any other error may succeed on redelivery.
func (n *PostNotifier) Handle(ctx context.Context, body []byte) error {
	var evt application.PostEvent
	if err := json.Unmarshal(body, &evt); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	action, ok := actions[evt.Type]
	if !ok {
		return fmt.Errorf("%w: unknown type %q", ErrMalformed, evt.Type)
	}
	if !strings.Contains(evt.AuthorEmail, "@") {
		return fmt.Errorf("%w: missing author email", ErrMalformed)
	}

	msg, err := mailer.RenderPostNotice(mailer.PostNotice{
		AppName:    n.AppName,
		AuthorName: evt.AuthorName,
		PostID:     evt.PostID,
		Title:      evt.Title,
		Action:     action,
		OccurredAt: evt.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := n.Sender.Send(ctx, evt.AuthorEmail, msg); err != nil {
		return fmt.Errorf("send %s notice: %w", evt.Type, err)
	}
	n.Logger.WithFields(logrus.Fields{"post_id": evt.PostID, "event": evt.Type}).Info("post notice sent")
	return nil
}
