// Copyright (c) 2026 Lucas Pereira.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/lucaspereira/amigo-chocolate/auth"
	"github.com/lucaspereira/amigo-chocolate/cliparse"
	"github.com/lucaspereira/amigo-chocolate/middleware"
	"github.com/lucaspereira/amigo-chocolate/models"
)

type ParticipantHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewParticipantHandler(db *sql.DB, cfg cliparse.Config) *ParticipantHandler {
	return &ParticipantHandler{db: db, cfg: cfg}
}

// Register handles POST /participants
func (h *ParticipantHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterParticipantRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	name := strings.TrimSpace(req.Name)
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "email is required")
		return
	}

	// Generate access token
	token, err := auth.GenerateParticipantToken()
	if err != nil {
		slog.Error("failed to generate participant token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register participant")
		return
	}

	id := uuid.NewString()
	createdAt := time.Now()

	preferredChocolate := nullableString(req.PreferredChocolate)
	dislikes := nullableString(req.Dislikes)

	// Insert participant (UNIQUE constraint enforces name uniqueness)
	_, err = h.db.Exec(`
		INSERT INTO participant (id, name, email, token, preferred_chocolate, dislikes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, id, name, email, token, preferredChocolate, dislikes, createdAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			middleware.ErrorResponse(w, http.StatusConflict, "This name is already registered")
			return
		}
		slog.Error("failed to insert participant", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register participant")
		return
	}

	slog.Info("participant registered", "participant_id", id, "name", name)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterParticipantResponse{
		Participant: models.Participant{
			ID:                 id,
			Name:               name,
			Email:              email,
			Token:              token,
			PreferredChocolate: preferredChocolate,
			Dislikes:           dislikes,
			CreatedAt:          createdAt,
		},
		Link: h.cfg.FrontendURL + "/participante/" + token,
	})
}

// GetByToken handles GET /participants/{token}
// The token is the participant's capability: it reveals their own record
// plus the recipient they drew, and nothing about anyone else.
func (h *ParticipantHandler) GetByToken(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	if token == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "token is required")
		return
	}

	var p models.Participant
	err := h.db.QueryRow(`
		SELECT id, name, email, token, preferred_chocolate, dislikes, matched_with, created_at
		FROM participant
		WHERE token = $1
	`, token).Scan(
		&p.ID, &p.Name, &p.Email, &p.Token,
		&p.PreferredChocolate, &p.Dislikes, &p.MatchedWith, &p.CreatedAt,
	)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Participant not found")
		return
	}
	if err != nil {
		slog.Error("failed to query participant", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var recipient *models.Participant
	if p.MatchedWith != nil {
		var rec models.Participant
		err := h.db.QueryRow(`
			SELECT id, name, email, preferred_chocolate, dislikes, created_at
			FROM participant
			WHERE id = $1
		`, *p.MatchedWith).Scan(
			&rec.ID, &rec.Name, &rec.Email,
			&rec.PreferredChocolate, &rec.Dislikes, &rec.CreatedAt,
		)
		if err != nil {
			slog.Error("failed to query recipient", "error", err, "participant_id", p.ID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		// The recipient's token is their capability, never exposed here
		p.MatchedWithName = &rec.Name
		recipient = &rec
	}

	middleware.JSONResponse(w, http.StatusOK, models.ParticipantResponse{
		Participant: p,
		Recipient:   recipient,
	})
}

func nullableString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
