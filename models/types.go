// Copyright (c) 2026 Lucas Pereira.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Config keys
const (
	ConfigMinParticipants = "min_participants"
	ConfigDrawPerformed   = "draw_performed"
)

// Request types

type RegisterParticipantRequest struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	PreferredChocolate string `json:"preferred_chocolate"`
	Dislikes           string `json:"dislikes"`
}

type AdminLoginRequest struct {
	Password string `json:"password"`
}

type UpdateMinParticipantsRequest struct {
	MinParticipants int `json:"min_participants"`
}

type TestEmailRequest struct {
	Email string `json:"email"`
}

// Response types

type RegisterParticipantResponse struct {
	Participant Participant `json:"participant"`
	Link        string      `json:"link"`
}

type ParticipantResponse struct {
	Participant Participant  `json:"participant"`
	Recipient   *Participant `json:"recipient,omitempty"`
}

type AdminLoginResponse struct {
	Token string `json:"token"`
}

type PerformDrawResponse struct {
	Matched int        `json:"matched"`
	Status  DrawStatus `json:"status"`
}

type ResetDrawResponse struct {
	Cleared int        `json:"cleared"`
	Status  DrawStatus `json:"status"`
}

type ListParticipantsResponse struct {
	Participants []Participant `json:"participants"`
}

// Domain types

type Participant struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Token              string    `json:"token,omitempty"`
	PreferredChocolate *string   `json:"preferred_chocolate,omitempty"`
	Dislikes           *string   `json:"dislikes,omitempty"`
	MatchedWith        *string   `json:"matched_with,omitempty"`
	MatchedWithName    *string   `json:"matched_with_name,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// DrawStatus is derived from participant counts plus the persisted
// draw_performed flag; it is never stored as a row itself.
type DrawStatus struct {
	IsDrawn               bool `json:"is_drawn"`
	TotalParticipants     int  `json:"total_participants"`
	UnmatchedParticipants int  `json:"unmatched_participants"`
	MinParticipants       int  `json:"min_participants"`
	CanDraw               bool `json:"can_draw"`
}

// Notification batch results

type NotificationResult struct {
	ParticipantID string `json:"participant_id"`
	Email         string `json:"email"`
}

type NotificationError struct {
	ParticipantID string `json:"participant_id"`
	Email         string `json:"email"`
	Error         string `json:"error"`
}

type SendNotificationsResponse struct {
	Results []NotificationResult `json:"results"`
	Errors  []NotificationError  `json:"errors"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
