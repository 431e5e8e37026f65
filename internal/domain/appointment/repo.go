package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/clinicdesk/clinicdesk/internal/platform/tenancy"
)

type Repository interface {
	Insert(ctx context.Context, a *Appointment) error
	Update(ctx context.Context, scope tenancy.Scope, a *Appointment) (int64, error)
	Delete(ctx context.Context, scope tenancy.Scope, id uuid.UUID) (int64, error)
	// GetByID returns (nil, nil) when no appointment with id exists in the clinic.
	GetByID(ctx context.Context, scope tenancy.Scope, id uuid.UUID) (*Appointment, error)
	// List returns appointments joined with their patient and doctor, ordered
	// by date ascending.
	List(ctx context.Context, scope tenancy.Scope, limit, offset int) ([]*WithRelations, int, error)
}
