package email

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"skillnet_backend/internal/config"
)

// Provider sends transactional email. Implementations must be safe for
// concurrent use.
type Provider interface {
	Send(to, subject, htmlBody string) error
}

type smtpProvider struct {
	cfg    config.EmailConfig
	dialer *gomail.Dialer
}

// NewSMTPProvider builds a gomail-backed provider from config.
func NewSMTPProvider(cfg config.EmailConfig) Provider {
	return &smtpProvider{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
	}
}

func (p *smtpProvider) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.cfg.FromEmail, p.cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

// NoopProvider discards email. Used in tests and when SMTP is not
// configured.
type NoopProvider struct{}

func (NoopProvider) Send(to, subject, htmlBody string) error { return nil }
