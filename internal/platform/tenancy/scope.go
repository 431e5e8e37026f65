// Package tenancy carries the resolved clinic scope through a request.
// Every repository operation takes a Scope argument so the clinic filter can
// never be forgotten by an individual entity implementation.
package tenancy

import (
	"context"

	"github.com/google/uuid"

	"github.com/clinicdesk/clinicdesk/internal/platform/apperror"
)

// Scope identifies the clinic acting in the current request.
type Scope struct {
	ClinicID uuid.UUID
	UserID   uuid.UUID
}

type contextKey string

const scopeKey contextKey = "tenancy_scope"

func WithScope(ctx context.Context, s Scope) context.Context {
	return context.WithValue(ctx, scopeKey, s)
}

// FromContext returns the scope placed by the session middleware. It fails
// with NoTenant when the session exists but no clinic has been onboarded yet,
// which callers surface as a redirect to the clinic form.
func FromContext(ctx context.Context) (Scope, error) {
	s, ok := ctx.Value(scopeKey).(Scope)
	if !ok {
		return Scope{}, apperror.Unauthenticated()
	}
	if s.ClinicID == uuid.Nil {
		return Scope{}, apperror.NoTenant()
	}
	return s, nil
}
