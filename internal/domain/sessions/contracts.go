package sessions

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no session with the requested id exists.
var ErrNotFound = errors.New("session not found")

// SessionRepository defines the interface for session persistence.
// Implementations must uphold the schema invariants (unique id,
// startTime < endTime) at the storage boundary. Mutations record the acting
// identity in the store's metadata table.
type SessionRepository interface {
	Create(ctx context.Context, session *Session, modifiedBy string) error
	List(ctx context.Context) ([]*Session, error)
	GetByID(ctx context.Context, sessionID string) (*Session, error)
	UpdateByID(ctx context.Context, session *Session, modifiedBy string) error
	DeleteByID(ctx context.Context, sessionID string, modifiedBy string) error
}

// SessionService defines methods for managing the session timetable.
// Invalid proposals are rejected with the complete violation set; a rejected
// session is never partially applied or silently defaulted.
type SessionService interface {
	// List retrieves all sessions in display order.
	List(ctx context.Context) ([]*Session, error)

	// GetByID retrieves a single session by its id.
	GetByID(ctx context.Context, sessionID string) (*Session, error)

	// Create validates and stores a new session.
	Create(ctx context.Context, session *Session, modifiedBy string) error

	// UpdateByID validates and replaces an existing session.
	UpdateByID(ctx context.Context, session *Session, modifiedBy string) error

	// DeleteByID removes a session by its id.
	DeleteByID(ctx context.Context, sessionID string, modifiedBy string) error
}
