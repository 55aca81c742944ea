// Copyright (c) 2026 Lucas Pereira.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/lucaspereira/amigo-chocolate/cliparse"
	"github.com/lucaspereira/amigo-chocolate/middleware"
	"github.com/lucaspereira/amigo-chocolate/models"
)

type DrawHandler struct {
	db  *sql.DB
	cfg cliparse.Config

	// rand.Rand is not goroutine-safe; mu guards it across concurrent
	// draw requests. Tests replace rng with a seeded source.
	mu  sync.Mutex
	rng *rand.Rand
}

func NewDrawHandler(db *sql.DB, cfg cliparse.Config) *DrawHandler {
	return &DrawHandler{
		db:  db,
		cfg: cfg,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Status handles GET /draw/status
func (h *DrawHandler) Status(w http.ResponseWriter, r *http.Request) {
	status, err := GetDrawStatus(h.db)
	if err != nil {
		slog.Error("failed to compute draw status", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, status)
}

// PerformDraw handles POST /admin/draw
//
// All unmatched participants are assigned a recipient in a single
// transaction. The unmatched rows are locked FOR UPDATE and the
// can-draw precondition is rechecked on the locked set, so a concurrent
// draw either waits and then fails the precondition or commits first -
// never a half-applied or conflicting assignment.
func (h *DrawHandler) PerformDraw(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r, h.cfg) {
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	// Serializes draws against config updates and other draws
	var minParticipants int
	err = tx.QueryRow(`
		SELECT value::int FROM config WHERE key = $1 FOR UPDATE
	`, models.ConfigMinParticipants).Scan(&minParticipants)
	if err != nil {
		slog.Error("failed to read min_participants", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	rows, err := tx.Query(`
		SELECT id FROM participant
		WHERE matched_with IS NULL
		ORDER BY created_at, id
		FOR UPDATE
	`)
	if err != nil {
		slog.Error("failed to lock unmatched participants", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var candidates []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			slog.Error("failed to scan participant", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		candidates = append(candidates, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		slog.Error("failed to read unmatched participants", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Recheck inside the transaction; the pre-request status may be stale
	if len(candidates) < minParticipants {
		middleware.ErrorResponse(w, http.StatusConflict, "Not enough unmatched participants for a draw")
		return
	}

	h.mu.Lock()
	assignment, err := Derange(candidates, h.rng)
	h.mu.Unlock()
	if err == ErrTooFewCandidates {
		// Unreachable while min_participants >= 2
		middleware.ErrorResponse(w, http.StatusConflict, "At least 2 unmatched participants are required")
		return
	}
	if err != nil {
		slog.Error("draw engine failed", "error", err, "candidates", len(candidates))
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to compute assignment")
		return
	}

	for giver, recipient := range assignment {
		if _, err := tx.Exec(`
			UPDATE participant SET matched_with = $1 WHERE id = $2
		`, recipient, giver); err != nil {
			slog.Error("failed to persist assignment", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save draw")
			return
		}
	}

	if _, err := tx.Exec(`
		UPDATE config SET value = 'true' WHERE key = $1
	`, models.ConfigDrawPerformed); err != nil {
		slog.Error("failed to set draw flag", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save draw")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit draw", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save draw")
		return
	}

	slog.Info("draw performed", "matched", len(assignment))

	status, err := GetDrawStatus(h.db)
	if err != nil {
		slog.Error("failed to compute draw status", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PerformDrawResponse{
		Matched: len(assignment),
		Status:  status,
	})
}

// ResetDraw handles POST /admin/draw/reset
// Clears every assignment unconditionally; calling it again is a no-op.
func (h *DrawHandler) ResetDraw(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r, h.cfg) {
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	res, err := tx.Exec(`UPDATE participant SET matched_with = NULL WHERE matched_with IS NOT NULL`)
	if err != nil {
		slog.Error("failed to clear assignments", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to reset draw")
		return
	}
	cleared, _ := res.RowsAffected()

	if _, err := tx.Exec(`
		UPDATE config SET value = 'false' WHERE key = $1
	`, models.ConfigDrawPerformed); err != nil {
		slog.Error("failed to clear draw flag", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to reset draw")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit reset", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to reset draw")
		return
	}

	slog.Info("draw reset", "cleared", cleared)

	status, err := GetDrawStatus(h.db)
	if err != nil {
		slog.Error("failed to compute draw status", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResetDrawResponse{
		Cleared: int(cleared),
		Status:  status,
	})
}

// GetDrawStatus computes the current draw status from participant counts
// and the persisted draw_performed flag
func GetDrawStatus(db *sql.DB) (models.DrawStatus, error) {
	var status models.DrawStatus

	err := db.QueryRow(`
		SELECT
			(SELECT COUNT(*) FROM participant),
			(SELECT COUNT(*) FROM participant WHERE matched_with IS NULL),
			(SELECT value::int FROM config WHERE key = $1),
			(SELECT value = 'true' FROM config WHERE key = $2)
	`, models.ConfigMinParticipants, models.ConfigDrawPerformed).Scan(
		&status.TotalParticipants,
		&status.UnmatchedParticipants,
		&status.MinParticipants,
		&status.IsDrawn,
	)
	if err != nil {
		return models.DrawStatus{}, err
	}

	status.CanDraw = status.UnmatchedParticipants >= status.MinParticipants
	return status, nil
}
