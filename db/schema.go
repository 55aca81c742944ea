// Copyright (c) 2026 Lucas Pereira.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application and seeds the
// config rows. Safe to call multiple times - uses IF NOT EXISTS / ON CONFLICT.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Participants
CREATE TABLE IF NOT EXISTS participant (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    email TEXT NOT NULL,
    token TEXT NOT NULL UNIQUE,
    preferred_chocolate TEXT,
    dislikes TEXT,
    matched_with TEXT REFERENCES participant(id) CHECK (matched_with <> id),
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_participant_token ON participant(token);
CREATE INDEX IF NOT EXISTS idx_participant_matched_with ON participant(matched_with);

-- Key/value configuration
CREATE TABLE IF NOT EXISTS config (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

INSERT INTO config (key, value) VALUES ('min_participants', '5')
    ON CONFLICT (key) DO NOTHING;
INSERT INTO config (key, value) VALUES ('draw_performed', 'false')
    ON CONFLICT (key) DO NOTHING;
`
