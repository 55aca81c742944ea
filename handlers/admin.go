// Copyright (c) 2026 Lucas Pereira.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/csv"
	"log/slog"
	"net/http"
	"time"

	"github.com/lucaspereira/amigo-chocolate/auth"
	"github.com/lucaspereira/amigo-chocolate/cliparse"
	"github.com/lucaspereira/amigo-chocolate/middleware"
	"github.com/lucaspereira/amigo-chocolate/models"
)

type AdminHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAdminHandler(db *sql.DB, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{db: db, cfg: cfg}
}

// requireAdmin validates the X-Admin-Token header for privileged routes.
// Writes the error response itself and reports whether to continue.
func requireAdmin(w http.ResponseWriter, r *http.Request, cfg cliparse.Config) bool {
	token := r.Header.Get("X-Admin-Token")
	if err := auth.ValidateAdminToken(token, cfg.AdminTokenSalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin token")
		return false
	}
	return true
}

// Login handles POST /admin/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.AdminLoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := auth.VerifyAdminPassword(req.Password, h.cfg.AdminPassword); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Wrong password")
		return
	}

	slog.Info("admin logged in", "remote", r.RemoteAddr)

	middleware.JSONResponse(w, http.StatusOK, models.AdminLoginResponse{
		Token: auth.GenerateAdminToken(h.cfg.AdminTokenSalt),
	})
}

// ListParticipants handles GET /admin/participants
// Returns every participant including tokens and assigned recipient names
func (h *AdminHandler) ListParticipants(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r, h.cfg) {
		return
	}

	participants, err := listParticipants(h.db)
	if err != nil {
		slog.Error("failed to list participants", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListParticipantsResponse{
		Participants: participants,
	})
}

// UpdateMinParticipants handles PUT /admin/config/min-participants
func (h *AdminHandler) UpdateMinParticipants(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r, h.cfg) {
		return
	}

	var req models.UpdateMinParticipantsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// A derangement needs at least 2 elements
	if req.MinParticipants < 2 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "minimum must be at least 2")
		return
	}

	_, err := h.db.Exec(`
		UPDATE config SET value = $1 WHERE key = $2
	`, req.MinParticipants, models.ConfigMinParticipants)
	if err != nil {
		slog.Error("failed to update min_participants", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update configuration")
		return
	}

	slog.Info("min_participants updated", "value", req.MinParticipants)

	middleware.JSONResponse(w, http.StatusOK, map[string]int{
		"min_participants": req.MinParticipants,
	})
}

// ExportCSV handles GET /admin/export
// Streams the participant table as CSV: name, email, token, created_at,
// recipient name
func (h *AdminHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r, h.cfg) {
		return
	}

	participants, err := listParticipants(h.db)
	if err != nil {
		slog.Error("failed to list participants for export", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="participants.csv"`)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"name", "email", "token", "created_at", "recipient_name"})
	for _, p := range participants {
		recipientName := ""
		if p.MatchedWithName != nil {
			recipientName = *p.MatchedWithName
		}
		_ = cw.Write([]string{
			p.Name,
			p.Email,
			p.Token,
			p.CreatedAt.Format(time.RFC3339),
			recipientName,
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		slog.Error("failed to write CSV export", "error", err)
	}
}

// listParticipants returns all participants in registration order with
// their recipient's name joined in
func listParticipants(db *sql.DB) ([]models.Participant, error) {
	rows, err := db.Query(`
		SELECT p.id, p.name, p.email, p.token, p.preferred_chocolate, p.dislikes,
		       p.matched_with, m.name, p.created_at
		FROM participant p
		LEFT JOIN participant m ON p.matched_with = m.id
		ORDER BY p.created_at, p.id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	participants := []models.Participant{}
	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Email, &p.Token, &p.PreferredChocolate, &p.Dislikes,
			&p.MatchedWith, &p.MatchedWithName, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}

	return participants, rows.Err()
}
