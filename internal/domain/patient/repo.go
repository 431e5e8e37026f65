package patient

import (
	"context"

	"github.com/google/uuid"

	"github.com/clinicdesk/clinicdesk/internal/platform/tenancy"
)

// Repository persists patients. Every method except Insert filters by the
// scope's clinic id; a zero row count from Update or Delete means the row is
// absent or belongs to another clinic, and callers must not distinguish the
// two cases.
type Repository interface {
	Insert(ctx context.Context, p *Patient) error
	Update(ctx context.Context, scope tenancy.Scope, p *Patient) (int64, error)
	Delete(ctx context.Context, scope tenancy.Scope, id uuid.UUID) (int64, error)
	// GetByID returns (nil, nil) when no patient with id exists in the clinic.
	GetByID(ctx context.Context, scope tenancy.Scope, id uuid.UUID) (*Patient, error)
	List(ctx context.Context, scope tenancy.Scope, limit, offset int) ([]*Patient, int, error)
}
