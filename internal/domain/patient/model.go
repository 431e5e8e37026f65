// Package patient manages the clinic's patient roster. All reads and writes
// are scoped to the clinic carried in the request's tenancy scope.
package patient

import (
	"time"

	"github.com/google/uuid"

	"github.com/clinicdesk/clinicdesk/internal/platform/validation"
)

type Patient struct {
	ID          uuid.UUID `json:"id"`
	ClinicID    uuid.UUID `json:"clinicId"`
	Name        string    `json:"name"`
	Email       *string   `json:"email"`
	PhoneNumber *string   `json:"phoneNumber"`
	Sex         *string   `json:"sex"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// UpsertInput is the single payload for creating and updating a patient: an
// absent id means create, a present id means update that patient.
type UpsertInput struct {
	ID          string `json:"id" validate:"omitempty,uuid"`
	Name        string `json:"name" validate:"required,min=2"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,min=10"`
	Sex         string `json:"sex" validate:"omitempty,oneof=male female"`
}

// toPatient builds the record to persist. Optional fields submitted empty are
// stored as NULL, not as empty strings.
func (in UpsertInput) toPatient() *Patient {
	return &Patient{
		Name:        in.Name,
		Email:       validation.NilIfEmpty(in.Email),
		PhoneNumber: validation.NilIfEmpty(in.PhoneNumber),
		Sex:         validation.NilIfEmpty(in.Sex),
	}
}
