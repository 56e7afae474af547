package mailer

import (
	"fmt"
	"net/smtp"

	"go.uber.org/zap"

	"github.com/gamenighthq/gamenight-api/internal/config"
)

// Mailer delivers outbound mail. Delivery is an external collaborator; the
// contact flow only depends on this interface.
type Mailer interface {
	Send(to, subject, body string) error
}

type SMTPMailer struct {
	conf *config.SMTPConfig
}

func NewSMTPMailer(conf *config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		conf: conf,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	addr := m.conf.Host + ":" + m.conf.Port
	msg := []byte(fmt.Sprintf("From: %v\r\nTo: %v\r\nSubject: %v\r\n\r\n%v\r\n",
		m.conf.From, to, subject, body,
	))

	var auth smtp.Auth
	if m.conf.Username != "" {
		auth = smtp.PlainAuth("", m.conf.Username, m.conf.Password, m.conf.Host)
	}

	if err := smtp.SendMail(addr, auth, m.conf.From, []string{to}, msg); err != nil {
		return fmt.Errorf("smtp.SendMail -> %w", err)
	}

	return nil
}

// NoopMailer is used when no SMTP host is configured. Messages are logged
// and dropped.
type NoopMailer struct{}

func (NoopMailer) Send(to, subject, _ string) error {
	zap.L().Info("mailer not configured, dropping message",
		zap.String("to", to),
		zap.String("subject", subject),
	)

	return nil
}

// FromConfig picks the SMTP implementation when a host is configured and the
// no-op fallback otherwise.
func FromConfig(conf *config.SMTPConfig) Mailer {
	if conf == nil || conf.Host == "" {
		return NoopMailer{}
	}

	return NewSMTPMailer(conf)
}
