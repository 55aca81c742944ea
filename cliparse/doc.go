// Copyright (c) 2026 Lucas Pereira.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles server configuration from CLI flags and
environment variables.

CLI flags take precedence over environment variables. Secrets
(ADMIN_PASSWORD, ADMIN_TOKEN_SALT) should come from the environment in
production; the flag forms exist for local development only.

	cfg, err := cliparse.ParseFlags(os.Args[1:])

SMTP settings are environment-only and optional: when SMTP_HOST is unset
the server starts without an email client and the notification endpoints
report every send as failed instead of refusing to start.
*/
package cliparse
