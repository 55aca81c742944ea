// Copyright (c) 2026 Lucas Pereira.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lucaspereira/amigo-chocolate/models"
	"github.com/lucaspereira/amigo-chocolate/testutil"
)

func adminHeaders() map[string]string {
	return map[string]string{"X-Admin-Token": testutil.AdminToken()}
}

func registerN(t *testing.T, db *sql.DB, n int) []string {
	t.Helper()
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i], _ = testutil.CreateTestParticipant(t, db, fmt.Sprintf("Participant%02d", i))
	}
	return ids
}

// assertValidAssignments reads every matched_with from the database and
// checks the stored relation is a derangement over the matched subset
func assertValidAssignments(t *testing.T, db *sql.DB) {
	t.Helper()

	rows, err := db.Query(`SELECT id, matched_with FROM participant WHERE matched_with IS NOT NULL`)
	if err != nil {
		t.Fatal(err)
	}
	defer rows.Close()

	matched := make(map[string]string)
	recipients := make(map[string]int)
	for rows.Next() {
		var id, recipient string
		if err := rows.Scan(&id, &recipient); err != nil {
			t.Fatal(err)
		}
		if id == recipient {
			t.Errorf("Self-match stored for %s", id)
		}
		matched[id] = recipient
		recipients[recipient]++
	}

	for recipient, count := range recipients {
		if count != 1 {
			t.Errorf("Recipient %s assigned to %d givers", recipient, count)
		}
		if _, ok := matched[recipient]; !ok {
			t.Errorf("Recipient %s is not a giver; relation is not a permutation of the matched subset", recipient)
		}
	}
}

func TestStatus_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewDrawHandler(db, testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/draw/status", nil, nil)
	w := httptest.NewRecorder()

	handler.Status(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var status models.DrawStatus
	testutil.AssertJSON(t, w, &status)

	if status.IsDrawn || status.TotalParticipants != 0 || status.UnmatchedParticipants != 0 {
		t.Errorf("Unexpected empty status: %+v", status)
	}
	if status.MinParticipants != 5 {
		t.Errorf("Expected seeded min_participants 5, got %d", status.MinParticipants)
	}
	if status.CanDraw {
		t.Error("Empty pool must not be drawable")
	}
}

func TestStatus_ThresholdGating(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewDrawHandler(db, testutil.GetTestConfig())
	registerN(t, db, 4)

	status := getStatus(t, handler)
	if status.CanDraw {
		t.Error("4 of 5 required participants must not be drawable")
	}

	testutil.CreateTestParticipant(t, db, "Fifth")

	status = getStatus(t, handler)
	if !status.CanDraw {
		t.Error("Reaching the threshold must flip can_draw to true")
	}
}

func getStatus(t *testing.T, handler *DrawHandler) models.DrawStatus {
	t.Helper()
	req := testutil.MakeRequest("GET", "/draw/status", nil, nil)
	w := httptest.NewRecorder()
	handler.Status(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)
	var status models.DrawStatus
	testutil.AssertJSON(t, w, &status)
	return status
}

func TestPerformDraw(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewDrawHandler(db, testutil.GetTestConfig())
	registerN(t, db, 5)

	req := testutil.MakeRequest("POST", "/admin/draw", nil, adminHeaders())
	w := httptest.NewRecorder()

	handler.PerformDraw(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.PerformDrawResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Matched != 5 {
		t.Errorf("Expected 5 matched, got %d", resp.Matched)
	}
	if !resp.Status.IsDrawn {
		t.Error("Status after draw must report is_drawn")
	}
	if resp.Status.UnmatchedParticipants != 0 {
		t.Errorf("Expected 0 unmatched after full draw, got %d", resp.Status.UnmatchedParticipants)
	}

	assertValidAssignments(t, db)
}

func TestPerformDraw_Unauthorized(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewDrawHandler(db, testutil.GetTestConfig())
	registerN(t, db, 5)

	req := testutil.MakeRequest("POST", "/admin/draw", nil, nil)
	w := httptest.NewRecorder()

	handler.PerformDraw(w, req)

	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	var matched int
	if err := db.QueryRow(`SELECT COUNT(*) FROM participant WHERE matched_with IS NOT NULL`).Scan(&matched); err != nil {
		t.Fatal(err)
	}
	if matched != 0 {
		t.Error("Unauthorized draw must not assign anyone")
	}
}

func TestPerformDraw_BelowThreshold(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewDrawHandler(db, testutil.GetTestConfig())
	registerN(t, db, 4)

	req := testutil.MakeRequest("POST", "/admin/draw", nil, adminHeaders())
	w := httptest.NewRecorder()

	handler.PerformDraw(w, req)

	testutil.AssertStatus(t, w, http.StatusConflict)

	status := getStatus(t, NewDrawHandler(db, testutil.GetTestConfig()))
	if status.IsDrawn {
		t.Error("Failed draw must not set the drawn flag")
	}
	var matched int
	if err := db.QueryRow(`SELECT COUNT(*) FROM participant WHERE matched_with IS NOT NULL`).Scan(&matched); err != nil {
		t.Fatal(err)
	}
	if matched != 0 {
		t.Error("Failed draw must leave zero assignments")
	}
}

func TestPerformDraw_TwoParticipantsIsSwap(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewDrawHandler(db, testutil.GetTestConfig())
	testutil.SetMinParticipants(t, db, 2)
	ids := registerN(t, db, 2)

	req := testutil.MakeRequest("POST", "/admin/draw", nil, adminHeaders())
	w := httptest.NewRecorder()

	handler.PerformDraw(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var aRecipient, bRecipient string
	if err := db.QueryRow(`SELECT matched_with FROM participant WHERE id = $1`, ids[0]).Scan(&aRecipient); err != nil {
		t.Fatal(err)
	}
	if err := db.QueryRow(`SELECT matched_with FROM participant WHERE id = $1`, ids[1]).Scan(&bRecipient); err != nil {
		t.Fatal(err)
	}
	if aRecipient != ids[1] || bRecipient != ids[0] {
		t.Errorf("Two participants must swap: got %s->%s, %s->%s", ids[0], aRecipient, ids[1], bRecipient)
	}
}

func TestPerformDraw_LateJoiner(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewDrawHandler(db, testutil.GetTestConfig())
	registerN(t, db, 5)

	// First draw matches everyone
	req := testutil.MakeRequest("POST", "/admin/draw", nil, adminHeaders())
	w := httptest.NewRecorder()
	handler.PerformDraw(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	// A sixth participant registers after the draw
	testutil.CreateTestParticipant(t, db, "Latecomer")

	status := getStatus(t, handler)
	if !status.IsDrawn {
		t.Error("Late joiner must not clear is_drawn")
	}
	if status.UnmatchedParticipants != 1 {
		t.Errorf("Expected 1 unmatched, got %d", status.UnmatchedParticipants)
	}
	if status.CanDraw {
		t.Error("A single unmatched participant must not be drawable")
	}

	// Drawing again must fail and leave the latecomer unmatched
	req = testutil.MakeRequest("POST", "/admin/draw", nil, adminHeaders())
	w = httptest.NewRecorder()
	handler.PerformDraw(w, req)
	testutil.AssertStatus(t, w, http.StatusConflict)

	var matchedWith sql.NullString
	if err := db.QueryRow(`SELECT matched_with FROM participant WHERE name = 'Latecomer'`).Scan(&matchedWith); err != nil {
		t.Fatal(err)
	}
	if matchedWith.Valid {
		t.Error("Failed partial draw must not assign the latecomer")
	}
}

func TestPerformDraw_PartialRedraw(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewDrawHandler(db, testutil.GetTestConfig())
	testutil.SetMinParticipants(t, db, 2)
	ids := registerN(t, db, 3)

	// First draw covers the initial three
	req := testutil.MakeRequest("POST", "/admin/draw", nil, adminHeaders())
	w := httptest.NewRecorder()
	handler.PerformDraw(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	firstRound := make(map[string]string)
	for _, id := range ids {
		var recipient string
		if err := db.QueryRow(`SELECT matched_with FROM participant WHERE id = $1`, id).Scan(&recipient); err != nil {
			t.Fatal(err)
		}
		firstRound[id] = recipient
	}

	// Two latecomers; second draw covers only them
	lateA, _ := testutil.CreateTestParticipant(t, db, "LateA")
	lateB, _ := testutil.CreateTestParticipant(t, db, "LateB")

	req = testutil.MakeRequest("POST", "/admin/draw", nil, adminHeaders())
	w = httptest.NewRecorder()
	handler.PerformDraw(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.PerformDrawResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Matched != 2 {
		t.Errorf("Second draw should cover only the 2 latecomers, matched %d", resp.Matched)
	}

	// Earlier assignments must be untouched
	for id, recipient := range firstRound {
		var now string
		if err := db.QueryRow(`SELECT matched_with FROM participant WHERE id = $1`, id).Scan(&now); err != nil {
			t.Fatal(err)
		}
		if now != recipient {
			t.Errorf("Partial re-draw changed existing assignment of %s", id)
		}
	}

	// Latecomers must have swapped with each other
	var aRecipient, bRecipient string
	if err := db.QueryRow(`SELECT matched_with FROM participant WHERE id = $1`, lateA).Scan(&aRecipient); err != nil {
		t.Fatal(err)
	}
	if err := db.QueryRow(`SELECT matched_with FROM participant WHERE id = $1`, lateB).Scan(&bRecipient); err != nil {
		t.Fatal(err)
	}
	if aRecipient != lateB || bRecipient != lateA {
		t.Errorf("Latecomers must swap, got %s and %s", aRecipient, bRecipient)
	}
}

func TestResetDraw_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewDrawHandler(db, testutil.GetTestConfig())
	registerN(t, db, 5)

	req := testutil.MakeRequest("POST", "/admin/draw", nil, adminHeaders())
	w := httptest.NewRecorder()
	handler.PerformDraw(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	// First reset clears all five
	req = testutil.MakeRequest("POST", "/admin/draw/reset", nil, adminHeaders())
	w = httptest.NewRecorder()
	handler.ResetDraw(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResetDrawResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Cleared != 5 {
		t.Errorf("Expected 5 cleared, got %d", resp.Cleared)
	}
	if resp.Status.IsDrawn {
		t.Error("Reset must clear is_drawn")
	}

	// Second reset is a no-op, not an error
	req = testutil.MakeRequest("POST", "/admin/draw/reset", nil, adminHeaders())
	w = httptest.NewRecorder()
	handler.ResetDraw(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	testutil.AssertJSON(t, w, &resp)
	if resp.Cleared != 0 {
		t.Errorf("Second reset should clear 0, got %d", resp.Cleared)
	}

	var matched int
	if err := db.QueryRow(`SELECT COUNT(*) FROM participant WHERE matched_with IS NOT NULL`).Scan(&matched); err != nil {
		t.Fatal(err)
	}
	if matched != 0 {
		t.Error("All assignments must be cleared after reset")
	}
}
