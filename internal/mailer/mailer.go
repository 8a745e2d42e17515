// internal/mailer/mailer.go
//
// Outbound mail for bug reports. The server only ever sends plain-text
// messages to a fixed maintainer inbox, so the Sender interface is the
// whole contract; SMTPSender is the production implementation.

package mailer

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strings"
)

// ErrNotConfigured is returned when SMTP settings are incomplete. Callers
// surface it as an upstream failure, distinct from input validation.
var ErrNotConfigured = errors.New("mailer not configured")

// Sender delivers one message.
type Sender interface {
	Send(ctx context.Context, subject, body string) error
}

// SMTPSender sends via an authenticated SMTP relay.
type SMTPSender struct {
	Host string
	Port int
	User string
	Pass string
	From string
	To   string
}

// Send delivers a plain-text message to the configured recipient. The
// context covers the dial, and its deadline (if any) bounds the whole
// SMTP session.
func (s *SMTPSender) Send(ctx context.Context, subject, body string) error {
	if s.Host == "" || s.User == "" || s.Pass == "" || s.From == "" || s.To == "" {
		return ErrNotConfigured
	}
	port := s.Port
	if port == 0 {
		port = 587
	}
	addr := fmt.Sprintf("%s:%d", s.Host, port)

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial smtp: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		conn.SetDeadline(deadline)
	}
	c, err := smtp.NewClient(conn, s.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: s.Host}); err != nil {
			return fmt.Errorf("starttls: %w", err)
		}
	}
	if err := c.Auth(smtp.PlainAuth("", s.User, s.Pass, s.Host)); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}
	if err := c.Mail(s.From); err != nil {
		return err
	}
	if err := c.Rcpt(s.To); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write([]byte(buildMessage(s.From, s.To, subject, body))); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return c.Quit()
}

// buildMessage assembles an RFC 5322 plain-text message.
func buildMessage(from, to, subject, body string) string {
	return strings.Join([]string{
		"From: " + from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"",
		body,
	}, "\r\n")
}
