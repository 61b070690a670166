package service

import (
	"context"
	"fmt"
	"strings"

	"comitefd/internal/config"
	"comitefd/internal/mailer"
	"comitefd/internal/models"
)

type ContactService interface {
	Send(ctx context.Context, req models.ContactRequest) (string, error)
}

type contactService struct {
	mail mailer.Mailer
	cfg  *config.Config
}

// NewContactService accepts a nil mailer when the email provider key is
// missing; sends then fail with ErrNotConfigured.
func NewContactService(mail mailer.Mailer, cfg *config.Config) ContactService {
	return &contactService{mail: mail, cfg: cfg}
}

func (s *contactService) Send(ctx context.Context, req models.ContactRequest) (string, error) {
	if s.mail == nil {
		return "", ErrNotConfigured
	}

	name := strings.TrimSpace(strings.TrimSpace(req.FirstName) + " " + strings.TrimSpace(req.LastName))
	if name == "" {
		name = "Visiteur"
	}

	msg := mailer.Message{
		From:    s.cfg.Mail.FromEmail,
		To:      []string{s.cfg.Mail.ToEmail},
		ReplyTo: req.Email,
		Subject: fmt.Sprintf("Contact depuis le site – %s", name),
		Text:    fmt.Sprintf("%s\n\n--\n%s\n%s", strings.TrimSpace(req.Message), name, req.Email),
	}

	id, err := s.mail.Send(ctx, msg)
	if err != nil {
		return "", fmt.Errorf("send failed: %w", err)
	}

	return id, nil
}
