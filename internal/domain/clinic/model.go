// Package clinic handles clinic onboarding. A user without a clinic can do
// nothing but create one; creating it binds the user and unlocks the rest of
// the API for their session.
package clinic

import (
	"time"

	"github.com/google/uuid"
)

type Clinic struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateInput struct {
	Name string `json:"name" validate:"required,min=2"`
}
