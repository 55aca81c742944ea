// Copyright (c) 2026 Lucas Pereira.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package mailer sends notification emails over SMTP.

Client wraps github.com/wneessen/go-mail with mandatory TLS and PLAIN
auth. Handlers depend on the Sender interface rather than the concrete
client so tests can inject a recording fake:

	type Sender interface {
		Send(to, subject, htmlBody string) error
	}

BuildResultEmail and BuildTestEmail render the HTML bodies; participant
supplied strings are escaped before interpolation.
*/
package mailer
