// Package appointment books patients with doctors. An appointment stores the
// price agreed at booking time, so later changes to the doctor's price never
// rewrite history.
package appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/clinicdesk/clinicdesk/internal/domain/doctor"
	"github.com/clinicdesk/clinicdesk/internal/domain/patient"
)

type Appointment struct {
	ID                      uuid.UUID `json:"id"`
	ClinicID                uuid.UUID `json:"clinicId"`
	PatientID               uuid.UUID `json:"patientId"`
	DoctorID                uuid.UUID `json:"doctorId"`
	Date                    time.Time `json:"date"`
	AppointmentPriceInCents int       `json:"appointmentPriceInCents"`
	CreatedAt               time.Time `json:"createdAt"`
	UpdatedAt               time.Time `json:"updatedAt"`
}

// WithRelations is the listing shape: the appointment joined with the
// patient and doctor it references.
type WithRelations struct {
	Appointment
	Patient *patient.Patient `json:"patient"`
	Doctor  *doctor.Doctor   `json:"doctor"`
}

// UpsertInput carries the booking form. Date and Time arrive as separate
// fields and are combined into a single timestamp before persistence.
type UpsertInput struct {
	ID                      string `json:"id" validate:"omitempty,uuid"`
	PatientID               string `json:"patientId" validate:"required,uuid"`
	DoctorID                string `json:"doctorId" validate:"required,uuid"`
	Date                    string `json:"date" validate:"required,datetime=2006-01-02"`
	Time                    string `json:"time" validate:"required,hhmm"`
	AppointmentPriceInCents int    `json:"appointmentPriceInCents" validate:"required,min=1"`
}

// combineDateTime merges the date and HH:MM fields into one UTC timestamp
// with seconds zeroed. Inputs are already validated.
func combineDateTime(date, hhmm string) time.Time {
	d, _ := time.Parse("2006-01-02", date)
	t, _ := time.Parse("15:04", hhmm)
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
}
