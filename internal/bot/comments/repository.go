// Package comments provides the per-user comment log: an append-only store of
// free-text notes keyed by the external user id. Identifier assignment is
// delegated to the database's auto-increment mechanism, so no cross-call
// locking is needed under concurrent writers.
package comments

import (
	"context"
	"time"
)

// Comment is one persisted note. Rows are created once and never updated or
// deleted; readers only ever see snapshots.
type Comment struct {
	ID        int64
	CreatedAt time.Time
	UserID    int64
	Text      string
}

// Repository describes the operations of the comment log.
type Repository interface {
	// Add appends one comment with the current UTC timestamp and returns the
	// store-assigned identifier. Any text is accepted verbatim; only
	// storage-layer failures are returned.
	Add(ctx context.Context, userID int64, text string) (int64, error)

	// ListRecent returns up to limit comments of the given user, newest first
	// (descending id). A user without comments yields an empty slice, not an
	// error. Callers are responsible for clamping limit.
	ListRecent(ctx context.Context, userID int64, limit int) ([]Comment, error)
}
