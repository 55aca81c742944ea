// Copyright (c) 2026 Lucas Pereira.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Amigo Chocolate API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - ParticipantHandler: registration and token lookup
  - DrawHandler: draw status, perform, reset
  - AdminHandler: login, participant list, config, CSV export
  - NotifyHandler: result email batch and SMTP test

Handlers are created via constructor functions that accept *sql.DB and Config:

	drawHandler := handlers.NewDrawHandler(db, cfg)

# Participant Flow

	POST /participants          → Register (returns personal access link)
	GET  /participants/{token}  → GetByToken (own record + drawn recipient)

The token acts as the participant's capability; there is no account or
password.

# Draw Lifecycle

	GET  /draw/status       → Status (public)
	POST /admin/draw        → PerformDraw
	POST /admin/draw/reset  → ResetDraw

PerformDraw assigns every currently unmatched participant a recipient via
a random derangement (derangement.go): a permutation of the unmatched set
with no fixed points, so nobody draws themselves. Matching is
one-directional - A drawing B does not make B draw A. All assignments
commit in one transaction with the unmatched rows locked, so concurrent
draws serialize and a failed draw leaves no partial state. Participants
who register after a draw stay unmatched until enough of them accumulate
for another draw over just that subset.

# Admin Operations

Admin routes require the X-Admin-Token header obtained from POST
/admin/login. See the auth package for the token scheme.

	GET /admin/participants                → ListParticipants
	PUT /admin/config/min-participants     → UpdateMinParticipants
	GET /admin/export                      → ExportCSV
	POST /admin/notifications              → SendNotifications
	POST /admin/notifications/test         → SendTestEmail
*/
package handlers
