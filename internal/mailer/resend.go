package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"comitefd/internal/config"
)

type Message struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	Text    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) (string, error)
}

type ResendMailer struct {
	client *resend.Client
}

func NewResendMailer(cfg *config.Config) *ResendMailer {
	return &ResendMailer{client: resend.NewClient(cfg.Mail.APIKey)}
}

// Send delivers one plain-text email and returns the provider id.
// There is no retry; a provider failure surfaces to the caller.
func (m *ResendMailer) Send(ctx context.Context, msg Message) (string, error) {
	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Text:    msg.Text,
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("could not send email: %w", err)
	}

	return sent.Id, nil
}
