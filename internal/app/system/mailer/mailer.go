// Package mailer delivers transactional email over SMTP. Handlers depend on
// the Sender interface so tests can record messages instead of sending them.
package mailer

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"
)

// Message is one outbound email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Sender delivers a message.
type Sender interface {
	Send(msg Message) error
}

// Mailer sends over plain SMTP, with PLAIN auth when a username is
// configured.
type Mailer struct {
	addr string
	auth smtp.Auth
	from string
}

func New(host string, port int, username, password, from string) *Mailer {
	m := &Mailer{
		addr: fmt.Sprintf("%s:%d", host, port),
		from: from,
	}
	if username != "" {
		m.auth = smtp.PlainAuth("", username, password, host)
	}
	return m
}

func (m *Mailer) Send(msg Message) error {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(msg.Body)

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{msg.To}, []byte(b.String())); err != nil {
		return fmt.Errorf("send mail to %s: %w", msg.To, err)
	}
	return nil
}

// BuildResetEmail renders the password-reset message body.
func BuildResetEmail(resetURL string, expiresIn time.Duration) string {
	return fmt.Sprintf(
		"Forgot your password? Submit a PATCH request with your new password and passwordConfirmed to:\n\n"+
			"  %s\n\n"+
			"This link is valid for %s. If you didn't request a password reset, please ignore this email.\n",
		resetURL, expiresIn,
	)
}
