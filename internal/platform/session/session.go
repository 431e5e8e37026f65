// Package session implements the identity side of the service: opaque
// server-side sessions held in a store keyed by id, referenced from signed
// bearer tokens. The session carries the user's clinic id, which is what the
// rest of the system scopes every query by.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned by stores when a session id does not exist or has
// expired. Middleware maps it to an authentication failure.
var ErrNotFound = errors.New("session not found")

type Session struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	ClinicID  *uuid.UUID `json:"clinic_id,omitempty"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// Store persists sessions for their lifetime. Implementations must expire
// sessions at ExpiresAt without the caller asking.
type Store interface {
	Put(ctx context.Context, s *Session) error
	Get(ctx context.Context, id uuid.UUID) (*Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// SetClinic binds a clinic to an existing session after onboarding so the
	// user does not have to log in again.
	SetClinic(ctx context.Context, id, clinicID uuid.UUID) error
}

// New builds an unsaved session for a user with the given lifetime.
func New(userID uuid.UUID, clinicID *uuid.UUID, ttl time.Duration) *Session {
	return &Session{
		ID:        uuid.New(),
		UserID:    userID,
		ClinicID:  clinicID,
		ExpiresAt: time.Now().Add(ttl).UTC(),
	}
}
