// Copyright (c) 2026 Lucas Pereira.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Request Logging

WithLogging wraps individual handlers with slog request/completion
logging:

	mux.HandleFunc("GET /draw/status", middleware.WithLogging(h.Status))

# JSON Helpers

JSONResponse and ErrorResponse write JSON bodies with the right
Content-Type; ParseJSONBody decodes request bodies:

	middleware.JSONResponse(w, http.StatusOK, status)
	middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")

# CORS

CORS wraps the whole mux, reflecting the request Origin and answering
OPTIONS preflights, so the browser frontend can call the API directly.
The X-Admin-Token header is whitelisted for the admin panel.
*/
package middleware
