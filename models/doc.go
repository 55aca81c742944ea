// Copyright (c) 2026 Lucas Pereira.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the request, response and domain types shared by
the handlers.

# Domain Types

Participant mirrors the participant table. Token is the participant's only
credential and is serialized only where they are entitled to see it (their
own registration response, their own lookup, and the admin list); handlers
blank it everywhere else rather than relying on a struct tag, because the
admin list legitimately includes it.

DrawStatus is computed on demand:

	{is_drawn, total_participants, unmatched_participants,
	 min_participants, can_draw}

is_drawn reflects the persisted draw_performed config flag, not the
participant counts, so it stays true when a newcomer registers after a
draw and is still unmatched.

# Error Responses

All error payloads use ErrorResponse with the HTTP status text plus a
human-readable message.
*/
package models
