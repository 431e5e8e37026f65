package doctor

import (
	"context"

	"github.com/google/uuid"

	"github.com/clinicdesk/clinicdesk/internal/platform/tenancy"
)

// Repository persists doctors with the same clinic-filter contract as the
// patient repository: zero rows affected means absent or foreign.
type Repository interface {
	Insert(ctx context.Context, d *Doctor) error
	Update(ctx context.Context, scope tenancy.Scope, d *Doctor) (int64, error)
	Delete(ctx context.Context, scope tenancy.Scope, id uuid.UUID) (int64, error)
	// GetByID returns (nil, nil) when no doctor with id exists in the clinic.
	GetByID(ctx context.Context, scope tenancy.Scope, id uuid.UUID) (*Doctor, error)
	List(ctx context.Context, scope tenancy.Scope, limit, offset int) ([]*Doctor, int, error)
}
