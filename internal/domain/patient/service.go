package patient

import (
	"context"

	"github.com/google/uuid"

	"github.com/clinicdesk/clinicdesk/internal/platform/apperror"
	"github.com/clinicdesk/clinicdesk/internal/platform/db"
	"github.com/clinicdesk/clinicdesk/internal/platform/tenancy"
	"github.com/clinicdesk/clinicdesk/internal/platform/validation"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Result is the outcome of a mutation: the persisted record, a message for
// the client, and the list path whose cached view is now stale.
type Result struct {
	Patient *Patient
	Message string
	Refresh string
}

// Upsert creates a patient when the input carries no id and updates the
// identified patient otherwise. Updates that match no row in the clinic fail
// as not found, whether the id belongs to another clinic or to nobody.
func (s *Service) Upsert(ctx context.Context, scope tenancy.Scope, in UpsertInput) (*Result, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	p := in.toPatient()

	if in.ID != "" {
		id, err := uuid.Parse(in.ID)
		if err != nil {
			return nil, apperror.ValidationField("id", "must be a valid identifier")
		}
		p.ID = id
		rows, err := s.repo.Update(ctx, scope, p)
		if err != nil {
			return nil, apperror.Persistence(err)
		}
		if rows == 0 {
			return nil, apperror.NotFoundOrForbidden("patient")
		}
		return &Result{Patient: p, Message: "Patient updated successfully.", Refresh: "/patients"}, nil
	}

	p.ClinicID = scope.ClinicID
	if err := s.repo.Insert(ctx, p); err != nil {
		return nil, apperror.Persistence(err)
	}
	return &Result{Patient: p, Message: "Patient created successfully.", Refresh: "/patients"}, nil
}

// Delete removes a patient owned by the clinic in a single scoped statement,
// so a concurrent delete or a foreign id both surface as not found.
func (s *Service) Delete(ctx context.Context, scope tenancy.Scope, id uuid.UUID) (*Result, error) {
	rows, err := s.repo.Delete(ctx, scope, id)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, apperror.Conflict("patient still has appointments; delete those first")
		}
		return nil, apperror.Persistence(err)
	}
	if rows == 0 {
		return nil, apperror.NotFoundOrForbidden("patient")
	}
	return &Result{Message: "Patient deleted successfully.", Refresh: "/patients"}, nil
}

func (s *Service) Get(ctx context.Context, scope tenancy.Scope, id uuid.UUID) (*Patient, error) {
	p, err := s.repo.GetByID(ctx, scope, id)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if p == nil {
		return nil, apperror.NotFoundOrForbidden("patient")
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, scope tenancy.Scope, limit, offset int) ([]*Patient, int, error) {
	items, total, err := s.repo.List(ctx, scope, limit, offset)
	if err != nil {
		return nil, 0, apperror.Persistence(err)
	}
	return items, total, nil
}
