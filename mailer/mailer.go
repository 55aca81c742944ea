// Copyright (c) 2026 Lucas Pereira.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mailer

import (
	"crypto/tls"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/lucaspereira/amigo-chocolate/cliparse"
)

// Sender is the outbound email boundary. Handlers depend on this interface
// so tests can substitute a recording fake.
type Sender interface {
	Send(to, subject, htmlBody string) error
}

// Client sends email over SMTP
type Client struct {
	host      string
	port      int
	user      string
	password  string
	fromName  string
	fromEmail string
}

// NewClient creates an SMTP client from the server configuration
func NewClient(cfg cliparse.Config) (*Client, error) {
	if cfg.SMTPHost == "" {
		return nil, fmt.Errorf("SMTP host not configured")
	}

	return &Client{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		user:      cfg.SMTPUser,
		password:  cfg.SMTPPassword,
		fromName:  cfg.SMTPFromName,
		fromEmail: cfg.SMTPFromEmail,
	}, nil
}

// Send delivers a single HTML email
func (c *Client) Send(to, subject, htmlBody string) error {
	m := mail.NewMsg()

	if err := m.From(fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := m.To(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}
	m.Subject(subject)
	m.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(c.host,
		mail.WithPort(c.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(c.user),
		mail.WithPassword(c.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTLSConfig(&tls.Config{
			ServerName: c.host,
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client (host=%s port=%d): %w", c.host, c.port, err)
	}

	if err := client.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email (host=%s port=%d): %w", c.host, c.port, err)
	}

	return nil
}
