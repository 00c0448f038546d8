// Package notify renders and sends the late-bedtime penalty email.
package notify

import (
	"context"

	"github.com/brendanm12345/bedtime-bully/internal"
)

// Notifier mails a penalty to the sleeper with the payee's friend copied.
type Notifier struct {
	logger internal.Logger
	mailer Sender
	from   string
	to     string
	cc     string
}

func NewNotifier(mailer Sender, from, to, cc string, logger internal.Logger) *Notifier {
	return &Notifier{logger: logger, mailer: mailer, from: from, to: to, cc: cc}
}

func (n *Notifier) Notify(ctx context.Context, event internal.PenaltyEvent) (string, error) {
	content, err := Render(event)
	if err != nil {
		n.logger.Errorf("notify: failed to render penalty email: %v", err)
		return "", internal.NewAppError(internal.KindMail, "render", err)
	}

	id, err := n.mailer.Send(ctx, Message{
		From:    n.from,
		To:      n.to,
		Cc:      n.cc,
		Subject: content.Subject,
		HTML:    content.HTML,
		Text:    content.Text,
	})
	if err != nil {
		n.logger.Errorf("notify: failed to send penalty email: %v", err)
		return "", internal.NewAppError(internal.KindMail, "send", err)
	}
	return id, nil
}
