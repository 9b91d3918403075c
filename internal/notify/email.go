package notify

import (
	"context"

	"gopkg.in/gomail.v2"

	"github.com/AtrioImoveis/realty-scheduler/internal/config"
)

type EmailSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailSender(cfg *config.Config) *EmailSender {
	return &EmailSender{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.SMTPUser,
	}
}

func (s *EmailSender) Send(_ context.Context, ev Event) error {
	if ev.RecipientEmail == "" {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", ev.RecipientEmail)
	m.SetHeader("Subject", ev.Subject)
	m.SetBody("text/html", ev.Body)

	return s.dialer.DialAndSend(m)
}

// NoopSender é usado quando o SMTP não está configurado
type NoopSender struct{}

func (NoopSender) Send(context.Context, Event) error {
	return nil
}
