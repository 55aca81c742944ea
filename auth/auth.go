// Copyright (c) 2026 Lucas Pereira.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidAdminToken = errors.New("invalid admin token")
	ErrWrongPassword     = errors.New("wrong admin password")
)

// adminSubject is the fixed HMAC input for the single global admin token.
const adminSubject = "amigo-chocolate-admin"

// GenerateParticipantToken creates the random secret a participant uses to
// retrieve their own draw result
func GenerateParticipantToken() (string, error) {
	b := make([]byte, 24) // 24 bytes = 192 bits of entropy
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate participant token: %w", err)
	}
	// URL-safe base64 without padding
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}

// VerifyAdminPassword checks the supplied password against the configured
// shared secret in constant time
func VerifyAdminPassword(password, configured string) error {
	if subtle.ConstantTimeCompare([]byte(password), []byte(configured)) != 1 {
		return ErrWrongPassword
	}
	return nil
}

// GenerateAdminToken creates the HMAC-based bearer token returned by a
// successful admin login. This is deterministic and verifiable, so nothing
// needs to be stored server-side.
func GenerateAdminToken(salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(adminSubject))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner tokens
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateAdminToken checks if the provided bearer token is the valid admin
// capability
func ValidateAdminToken(token, salt string) error {
	expected := GenerateAdminToken(salt)
	if !hmac.Equal([]byte(token), []byte(expected)) {
		return ErrInvalidAdminToken
	}
	return nil
}
