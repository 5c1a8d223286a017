// Package mailer sends outbound mail over SMTP.
package mailer

import (
	"fmt"

	"github.com/jaydeepbariya/master-backend-app/internal/config"

	"gopkg.in/gomail.v2"
)

// Mailer delivers a single HTML message.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// SMTPMailer sends mail through a configured SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer builds a mailer from application configuration.
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass),
		from:   cfg.MailUser,
	}
}

// Send dials the relay and delivers one message.
func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("sending mail to %s: %w", to, err)
	}
	return nil
}
