// Copyright (c) 2026 Lucas Pereira.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"

	"github.com/lucaspereira/amigo-chocolate/cliparse"
	"github.com/lucaspereira/amigo-chocolate/mailer"
	"github.com/lucaspereira/amigo-chocolate/middleware"
	"github.com/lucaspereira/amigo-chocolate/models"
)

type NotifyHandler struct {
	db     *sql.DB
	cfg    cliparse.Config
	sender mailer.Sender
}

func NewNotifyHandler(db *sql.DB, cfg cliparse.Config, sender mailer.Sender) *NotifyHandler {
	return &NotifyHandler{db: db, cfg: cfg, sender: sender}
}

// SendNotifications handles POST /admin/notifications
//
// Sends one result email to every matched participant. Sends are
// sequential and isolated: a failure is recorded in the errors list and
// the batch continues. The committed draw is never affected.
func (h *NotifyHandler) SendNotifications(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r, h.cfg) {
		return
	}

	if h.sender == nil {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Email is not configured")
		return
	}

	rows, err := h.db.Query(`
		SELECT p.id, p.name, p.email, p.token,
		       m.name, m.preferred_chocolate, m.dislikes
		FROM participant p
		JOIN participant m ON p.matched_with = m.id
		ORDER BY p.created_at, p.id
	`)
	if err != nil {
		slog.Error("failed to query matched participants", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	type pending struct {
		id, name, email, token string
		recipientName          string
		preferredChocolate     *string
		dislikes               *string
	}

	var batch []pending
	for rows.Next() {
		var p pending
		if err := rows.Scan(
			&p.id, &p.name, &p.email, &p.token,
			&p.recipientName, &p.preferredChocolate, &p.dislikes,
		); err != nil {
			slog.Error("failed to scan matched participant", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		batch = append(batch, p)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read matched participants", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if len(batch) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "No matched participants to notify")
		return
	}

	results := []models.NotificationResult{}
	errors := []models.NotificationError{}

	for _, p := range batch {
		body := mailer.BuildResultEmail(h.cfg.FrontendURL, p.name, p.token, p.recipientName, p.preferredChocolate, p.dislikes)
		if err := h.sender.Send(p.email, mailer.ResultEmailSubject, body); err != nil {
			slog.Warn("notification send failed", "participant_id", p.id, "error", err)
			errors = append(errors, models.NotificationError{
				ParticipantID: p.id,
				Email:         p.email,
				Error:         err.Error(),
			})
			continue
		}
		results = append(results, models.NotificationResult{
			ParticipantID: p.id,
			Email:         p.email,
		})
	}

	slog.Info("notification batch finished", "sent", len(results), "failed", len(errors))

	middleware.JSONResponse(w, http.StatusOK, models.SendNotificationsResponse{
		Results: results,
		Errors:  errors,
	})
}

// SendTestEmail handles POST /admin/notifications/test
// Sends a configuration test email to the given address
func (h *NotifyHandler) SendTestEmail(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r, h.cfg) {
		return
	}

	if h.sender == nil {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Email is not configured")
		return
	}

	var req models.TestEmailRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "email is required")
		return
	}

	body := mailer.BuildTestEmail(h.cfg.FrontendURL)
	if err := h.sender.Send(email, mailer.TestEmailSubject, body); err != nil {
		slog.Error("test email failed", "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Failed to send test email")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]string{
		"message": "Test email sent",
	})
}
