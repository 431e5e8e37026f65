package clinic

import (
	"context"

	"github.com/google/uuid"

	"github.com/clinicdesk/clinicdesk/internal/platform/apperror"
	"github.com/clinicdesk/clinicdesk/internal/platform/validation"
)

// UserBinder attaches a freshly created clinic to the user who created it.
// The account repository implements it.
type UserBinder interface {
	BindClinic(ctx context.Context, userID, clinicID uuid.UUID) (int64, error)
}

type Service struct {
	repo  Repository
	users UserBinder
}

func NewService(repo Repository, users UserBinder) *Service {
	return &Service{repo: repo, users: users}
}

type Result struct {
	Clinic  *Clinic
	Message string
	Refresh string
}

// Create inserts a clinic without binding it to anyone. The CLI uses it.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Clinic, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	c := &Clinic{Name: in.Name}
	if err := s.repo.Insert(ctx, c); err != nil {
		return nil, apperror.Persistence(err)
	}
	return c, nil
}

// CreateForUser onboards a user: it creates the clinic and binds the user to
// it. The caller still has to refresh the user's session scope.
func (s *Service) CreateForUser(ctx context.Context, userID uuid.UUID, in CreateInput) (*Result, error) {
	c, err := s.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	rows, err := s.users.BindClinic(ctx, userID, c.ID)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if rows == 0 {
		return nil, apperror.Unauthenticated()
	}
	return &Result{Clinic: c, Message: "Clinic created successfully.", Refresh: "/dashboard"}, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Clinic, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if c == nil {
		return nil, apperror.NotFoundOrForbidden("clinic")
	}
	return c, nil
}
