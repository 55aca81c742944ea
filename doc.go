// Copyright (c) 2026 Lucas Pereira.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Amigo Chocolate API server.

Amigo Chocolate is a Secret Santa style gift-exchange service: participants
register, an administrator triggers a randomized draw that assigns every
participant the person they must gift (a derangement — nobody draws
themselves), and each participant retrieves their result through a personal
access link.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... ADMIN_PASSWORD=... ADMIN_TOKEN_SALT=... go run main.go

Or with flags:

	go run main.go -p 8233 -d "postgres://..."

A .env file in the working directory is loaded at startup; real environment
variables take precedence.

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string
  - ADMIN_PASSWORD (--admin-password): shared secret for the admin panel
  - ADMIN_TOKEN_SALT (--admin-salt): secret for admin bearer-token HMAC

Optional settings:

  - PORT (-p): server port (default: 8233)
  - FRONTEND_URL: base URL used in participant result links
  - SMTP_HOST, SMTP_PORT, SMTP_USER, SMTP_PASSWORD, SMTP_FROM_NAME,
    SMTP_FROM_EMAIL: outbound email; without SMTP_HOST notifications
    are disabled

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (participants, draw, admin, notify)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: request/response types
  - auth: token generation and validation
  - mailer: SMTP client and result email template
  - db: schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
