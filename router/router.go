// Copyright (c) 2026 Lucas Pereira.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/lucaspereira/amigo-chocolate/cliparse"
	"github.com/lucaspereira/amigo-chocolate/handlers"
	"github.com/lucaspereira/amigo-chocolate/mailer"
	"github.com/lucaspereira/amigo-chocolate/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, sender mailer.Sender) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	participantHandler := handlers.NewParticipantHandler(db, cfg)
	drawHandler := handlers.NewDrawHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(db, cfg)
	notifyHandler := handlers.NewNotifyHandler(db, cfg, sender)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Participant operations (public; the token is the capability)
	mux.HandleFunc("POST /participants", middleware.WithLogging(participantHandler.Register))
	mux.HandleFunc("GET /participants/{token}", middleware.WithLogging(participantHandler.GetByToken))

	// Draw status (public)
	mux.HandleFunc("GET /draw/status", middleware.WithLogging(drawHandler.Status))

	// Admin operations (X-Admin-Token required, except login)
	mux.HandleFunc("POST /admin/login", middleware.WithLogging(adminHandler.Login))
	mux.HandleFunc("GET /admin/participants", middleware.WithLogging(adminHandler.ListParticipants))
	mux.HandleFunc("PUT /admin/config/min-participants", middleware.WithLogging(adminHandler.UpdateMinParticipants))
	mux.HandleFunc("POST /admin/draw", middleware.WithLogging(drawHandler.PerformDraw))
	mux.HandleFunc("POST /admin/draw/reset", middleware.WithLogging(drawHandler.ResetDraw))
	mux.HandleFunc("GET /admin/export", middleware.WithLogging(adminHandler.ExportCSV))
	mux.HandleFunc("POST /admin/notifications", middleware.WithLogging(notifyHandler.SendNotifications))
	mux.HandleFunc("POST /admin/notifications/test", middleware.WithLogging(notifyHandler.SendTestEmail))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("amigo-chocolate API v1"))
	})

	return middleware.CORS(mux)
}
