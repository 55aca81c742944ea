// Copyright (c) 2026 Lucas Pereira.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides token generation and admin authentication.

# Participant Tokens

Participant tokens are random 24-byte (192-bit) secrets:

	token, err := auth.GenerateParticipantToken()

URL-safe base64 without padding. The token is the participant's only
credential: anyone holding it can read that participant's draw result, so
it is generated once at registration and never reassigned.

# Admin Tokens

The admin panel is gated by a shared password. Login verifies the password
in constant time, then hands back a deterministic HMAC-SHA256 bearer
token:

	if err := auth.VerifyAdminPassword(password, cfg.AdminPassword); err != nil { ... }
	token := auth.GenerateAdminToken(cfg.AdminTokenSalt)

Because the token is deterministic from the salt, validation recomputes it
instead of storing sessions:

	err := auth.ValidateAdminToken(r.Header.Get("X-Admin-Token"), cfg.AdminTokenSalt)

Rotating ADMIN_TOKEN_SALT invalidates every outstanding admin token.
*/
package auth
