package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/clinicdesk/clinicdesk/internal/domain/doctor"
	"github.com/clinicdesk/clinicdesk/internal/domain/patient"
	"github.com/clinicdesk/clinicdesk/internal/platform/apperror"
	"github.com/clinicdesk/clinicdesk/internal/platform/tenancy"
	"github.com/clinicdesk/clinicdesk/internal/platform/validation"
)

// PatientDirectory and DoctorDirectory are the slices of the patient and
// doctor repositories the booking flow needs to verify references stay inside
// the clinic.
type PatientDirectory interface {
	GetByID(ctx context.Context, scope tenancy.Scope, id uuid.UUID) (*patient.Patient, error)
}

type DoctorDirectory interface {
	GetByID(ctx context.Context, scope tenancy.Scope, id uuid.UUID) (*doctor.Doctor, error)
}

type Service struct {
	repo     Repository
	patients PatientDirectory
	doctors  DoctorDirectory
}

func NewService(repo Repository, patients PatientDirectory, doctors DoctorDirectory) *Service {
	return &Service{repo: repo, patients: patients, doctors: doctors}
}

type Result struct {
	Appointment *Appointment
	Message     string
	Refresh     string
}

// Upsert books or rebooks an appointment. The referenced patient and doctor
// are looked up through the same clinic scope as the write, so an id from
// another clinic fails exactly like an id that does not exist.
func (s *Service) Upsert(ctx context.Context, scope tenancy.Scope, in UpsertInput) (*Result, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	patientID, _ := uuid.Parse(in.PatientID)
	doctorID, _ := uuid.Parse(in.DoctorID)

	p, err := s.patients.GetByID(ctx, scope, patientID)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if p == nil {
		return nil, apperror.NotFoundOrForbidden("patient")
	}
	d, err := s.doctors.GetByID(ctx, scope, doctorID)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if d == nil {
		return nil, apperror.NotFoundOrForbidden("doctor")
	}

	a := &Appointment{
		PatientID:               patientID,
		DoctorID:                doctorID,
		Date:                    combineDateTime(in.Date, in.Time),
		AppointmentPriceInCents: in.AppointmentPriceInCents,
	}

	if in.ID != "" {
		id, err := uuid.Parse(in.ID)
		if err != nil {
			return nil, apperror.ValidationField("id", "must be a valid identifier")
		}
		a.ID = id
		rows, err := s.repo.Update(ctx, scope, a)
		if err != nil {
			return nil, apperror.Persistence(err)
		}
		if rows == 0 {
			return nil, apperror.NotFoundOrForbidden("appointment")
		}
		return &Result{Appointment: a, Message: "Appointment updated successfully.", Refresh: "/appointments"}, nil
	}

	a.ClinicID = scope.ClinicID
	if err := s.repo.Insert(ctx, a); err != nil {
		return nil, apperror.Persistence(err)
	}
	return &Result{Appointment: a, Message: "Appointment created successfully.", Refresh: "/appointments"}, nil
}

func (s *Service) Delete(ctx context.Context, scope tenancy.Scope, id uuid.UUID) (*Result, error) {
	rows, err := s.repo.Delete(ctx, scope, id)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if rows == 0 {
		return nil, apperror.NotFoundOrForbidden("appointment")
	}
	return &Result{Message: "Appointment deleted successfully.", Refresh: "/appointments"}, nil
}

func (s *Service) Get(ctx context.Context, scope tenancy.Scope, id uuid.UUID) (*Appointment, error) {
	a, err := s.repo.GetByID(ctx, scope, id)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if a == nil {
		return nil, apperror.NotFoundOrForbidden("appointment")
	}
	return a, nil
}

func (s *Service) List(ctx context.Context, scope tenancy.Scope, limit, offset int) ([]*WithRelations, int, error) {
	items, total, err := s.repo.List(ctx, scope, limit, offset)
	if err != nil {
		return nil, 0, apperror.Persistence(err)
	}
	return items, total, nil
}
