package doctor

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

type Result struct {
	Doctor  *Doctor
	Message string
	Refresh string
}

// Upsert creates or updates a doctor. The availability window is validated
// before any repository call, so an inverted window never reaches storage.
func (s *Service) Upsert(ctx context.Context, scope tenancy.Scope, in UpsertInput) (*Result, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	d := in.toDoctor()

	if in.ID != "" {
		id, err := uuid.Parse(in.ID)
		if err != nil {
			return nil, apperror.ValidationField("id", "must be a valid identifier")
		}
		d.ID = id
		rows, err := s.repo.Update(ctx, scope, d)
		if err != nil {
			return nil, apperror.Persistence(err)
		}
		if rows == 0 {
			return nil, apperror.NotFoundOrForbidden("doctor")
		}
		return &Result{Doctor: d, Message: "Doctor updated successfully.", Refresh: "/doctors"}, nil
	}

	d.ClinicID = scope.ClinicID
	if err := s.repo.Insert(ctx, d); err != nil {
		return nil, apperror.Persistence(err)
	}
	return &Result{Doctor: d, Message: "Doctor created successfully.", Refresh: "/doctors"}, nil
}

func (s *Service) Delete(ctx context.Context, scope tenancy.Scope, id uuid.UUID) (*Result, error) {
	rows, err := s.repo.Delete(ctx, scope, id)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, apperror.Conflict("doctor still has appointments; delete those first")
		}
		return nil, apperror.Persistence(err)
	}
	if rows == 0 {
		return nil, apperror.NotFoundOrForbidden("doctor")
	}
	return &Result{Message: "Doctor deleted successfully.", Refresh: "/doctors"}, nil
}

func (s *Service) Get(ctx context.Context, scope tenancy.Scope, id uuid.UUID) (*Doctor, error) {
	d, err := s.repo.GetByID(ctx, scope, id)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if d == nil {
		return nil, apperror.NotFoundOrForbidden("doctor")
	}
	return d, nil
}

func (s *Service) List(ctx context.Context, scope tenancy.Scope, limit, offset int) ([]*Doctor, int, error) {
	items, total, err := s.repo.List(ctx, scope, limit, offset)
	if err != nil {
		return nil, 0, apperror.Persistence(err)
	}
	return items, total, nil
}
