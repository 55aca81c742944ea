// Copyright (c) 2026 Lucas Pereira.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

Two tables back the whole service:

  - participant: one row per registered participant. matched_with points at
    the participant this person must gift; NULL until a draw assigns it.
    A CHECK constraint forbids self-matches at the storage layer.
  - config: key/value rows. min_participants gates the draw,
    draw_performed records whether a draw has run since the last reset
    (kept explicit so a late joiner after a draw does not flip the status
    back to "not drawn").

CreateSchema is idempotent and runs at every startup:

	err := db.CreateSchema(dbConn)

Schema changes are applied by editing the schema constant; there is no
migration framework for a two-table layout.
*/
package db
