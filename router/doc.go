// Copyright (c) 2026 Lucas Pereira.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires HTTP routes to handlers.

Routes use Go 1.22+ method-and-pattern routing on http.ServeMux:

	mux.HandleFunc("GET /participants/{token}", ...)

NewRouter builds all handlers from the shared *sql.DB, config and mailer,
wraps each route in request logging, and wraps the whole mux in CORS so
the browser frontend can talk to the API from another origin.

One boundary layer serves both public and admin routes; admin handlers
check the X-Admin-Token header themselves via handlers.requireAdmin.
*/
package router
