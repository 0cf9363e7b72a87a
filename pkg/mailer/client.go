// Package mailer provides a lightweight SMTP client for Shopfront.
// Uses net/smtp directly (no SDK) to minimize external dependencies.
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

// Message is a single outbound notification email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Client is the outbound mail interface used by the intake service.
// Send delivers one message; there are no delivery receipts beyond the
// returned error.
type Client interface {
	// Verify checks the SMTP connection. Intended to run once at startup;
	// it is not called per-request.
	Verify(ctx context.Context) error
	// Send delivers a single message. A single attempt is made.
	Send(ctx context.Context, msg Message) error
}

// SMTPClient is the SMTP implementation of Client.
type SMTPClient struct {
	host     string
	port     string
	username string
	password string
	from     string
}

// NewClient creates an SMTPClient. An empty host leaves the client
// unconfigured: Verify and Send then return ErrNotConfigured.
func NewClient(host, port, username, password, from string) *SMTPClient {
	if port == "" {
		port = "587"
	}
	if from == "" {
		from = username
	}
	return &SMTPClient{host: host, port: port, username: username, password: password, from: from}
}

// ErrNotConfigured is returned when SMTP credentials are not set.
var ErrNotConfigured = errors.New("mailer: not configured")

// Configured reports whether SMTP credentials were supplied.
func (c *SMTPClient) Configured() bool {
	return c.host != ""
}

// Verify dials the SMTP server and performs the handshake, without sending
// anything.
func (c *SMTPClient) Verify(ctx context.Context) error {
	if !c.Configured() {
		return ErrNotConfigured
	}
	cl, err := c.dial(ctx)
	if err != nil {
		return err
	}
	return cl.Quit()
}

// Send delivers one message over a fresh SMTP session.
func (c *SMTPClient) Send(ctx context.Context, msg Message) error {
	if !c.Configured() {
		return ErrNotConfigured
	}
	if msg.To == "" {
		return errors.New("mailer: empty recipient")
	}

	cl, err := c.dial(ctx)
	if err != nil {
		return err
	}
	defer cl.Close()

	if err := cl.Mail(c.from); err != nil {
		return fmt.Errorf("mailer: MAIL FROM: %w", err)
	}
	if err := cl.Rcpt(msg.To); err != nil {
		return fmt.Errorf("mailer: RCPT TO: %w", err)
	}
	w, err := cl.Data()
	if err != nil {
		return fmt.Errorf("mailer: DATA: %w", err)
	}
	if _, err := w.Write([]byte(formatMessage(c.from, msg))); err != nil {
		return fmt.Errorf("mailer: write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("mailer: close body: %w", err)
	}
	return cl.Quit()
}

// dial opens a connection, upgrades to TLS when offered, and authenticates
// when credentials are present. The context deadline bounds the dial.
func (c *SMTPClient) dial(ctx context.Context) (*smtp.Client, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", net.JoinHostPort(c.host, c.port))
	if err != nil {
		return nil, fmt.Errorf("mailer: dial: %w", err)
	}
	cl, err := smtp.NewClient(conn, c.host)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("mailer: handshake: %w", err)
	}
	if ok, _ := cl.Extension("STARTTLS"); ok {
		if err := cl.StartTLS(&tls.Config{ServerName: c.host}); err != nil {
			cl.Close()
			return nil, fmt.Errorf("mailer: starttls: %w", err)
		}
	}
	if c.username != "" {
		auth := smtp.PlainAuth("", c.username, c.password, c.host)
		if err := cl.Auth(auth); err != nil {
			cl.Close()
			return nil, fmt.Errorf("mailer: auth: %w", err)
		}
	}
	return cl, nil
}

// formatMessage renders the RFC 5322 message with an HTML body.
func formatMessage(from string, msg Message) string {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)
	b.WriteString("\r\n")
	return b.String()
}
