// Package doctor manages the clinic's doctors and their weekly availability
// window: a weekday range plus a daily time range, e.g. Monday to Friday,
// 08:00 to 18:00.
package doctor

import (
	"time"

	"github.com/google/uuid"

	"github.com/clinicdesk/clinicdesk/internal/platform/validation"
)

// Weekdays are 0 (Sunday) through 6 (Saturday), matching time.Weekday.
type Doctor struct {
	ID                      uuid.UUID `json:"id"`
	ClinicID                uuid.UUID `json:"clinicId"`
	Name                    string    `json:"name"`
	Specialty               string    `json:"specialty"`
	AvatarImageURL          *string   `json:"avatarImageUrl"`
	AvailableFromWeekDay    int       `json:"availableFromWeekDay"`
	AvailableToWeekDay      int       `json:"availableToWeekDay"`
	AvailableFromTime       string    `json:"availableFromTime"`
	AvailableToTime         string    `json:"availableToTime"`
	AppointmentPriceInCents int       `json:"appointmentPriceInCents"`
	CreatedAt               time.Time `json:"createdAt"`
	UpdatedAt               time.Time `json:"updatedAt"`
}

type UpsertInput struct {
	ID                      string `json:"id" validate:"omitempty,uuid"`
	Name                    string `json:"name" validate:"required,min=2"`
	Specialty               string `json:"specialty" validate:"required,min=2"`
	AvatarImageURL          string `json:"avatarImageUrl" validate:"omitempty,url"`
	AvailableFromWeekDay    int    `json:"availableFromWeekDay" validate:"gte=0,lte=6"`
	AvailableToWeekDay      int    `json:"availableToWeekDay" validate:"gte=0,lte=6"`
	AvailableFromTime       string `json:"availableFromTime" validate:"required,hhmm"`
	AvailableToTime         string `json:"availableToTime" validate:"required,hhmm"`
	AppointmentPriceInCents int    `json:"appointmentPriceInCents" validate:"required,min=1"`
}

// ValidateCross checks the availability window. HH:MM strings order the same
// lexicographically and chronologically, so plain comparison is enough.
func (in UpsertInput) ValidateCross() map[string][]string {
	fields := map[string][]string{}
	if in.AvailableFromTime >= in.AvailableToTime {
		fields["availableFromTime"] = append(fields["availableFromTime"],
			"must be before availableToTime")
	}
	if in.AvailableFromWeekDay > in.AvailableToWeekDay {
		fields["availableFromWeekDay"] = append(fields["availableFromWeekDay"],
			"must not be after availableToWeekDay")
	}
	return fields
}

func (in UpsertInput) toDoctor() *Doctor {
	return &Doctor{
		Name:                    in.Name,
		Specialty:               in.Specialty,
		AvatarImageURL:          validation.NilIfEmpty(in.AvatarImageURL),
		AvailableFromWeekDay:    in.AvailableFromWeekDay,
		AvailableToWeekDay:      in.AvailableToWeekDay,
		AvailableFromTime:       in.AvailableFromTime + ":00",
		AvailableToTime:         in.AvailableToTime + ":00",
		AppointmentPriceInCents: in.AppointmentPriceInCents,
	}
}
