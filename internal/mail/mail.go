package mail

import (
	"fmt"
	"net/smtp"

	"github.com/simpledrinkmaker/sdm-server/internal/config"
)

// Mailer delivers outbound email. Delivery is best-effort: callers are
// expected to swallow failures and report success to the end user regardless.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends mail through a plain-auth SMTP relay
type SMTPMailer struct {
	host     string
	addr     string
	username string
	password string
	sender   string
}

// NewSMTPMailer creates a Mailer from the configured SMTP settings
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		host:     cfg.MailHost,
		addr:     cfg.MailHost + ":" + cfg.MailPort,
		username: cfg.MailUsername,
		password: cfg.MailPassword,
		sender:   cfg.MailSender,
	}
}

// Send delivers a single plain-text message
func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", m.sender, to, subject, body)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	return smtp.SendMail(m.addr, auth, m.sender, []string{to}, []byte(msg))
}

// ResetMessageBody formats the password-reset email around the reset link
func ResetMessageBody(username, resetLink string) string {
	return fmt.Sprintf("Hello %s!\n\n"+
		"We received a request to reset your password."+
		"Please click the link below to reset your password:\n\n"+
		"%s\n\n"+
		"If you did not initiate this request then you do not need to take any action and your password will not be reset.\n\n"+
		"Please do not reply to this e-mail as this mailbox is not monitored.", username, resetLink)
}
