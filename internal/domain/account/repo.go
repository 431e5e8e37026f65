package account

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Insert(ctx context.Context, u *User) error
	// GetByEmail returns (nil, nil) when no user has that email.
	GetByEmail(ctx context.Context, email string) (*User, error)
	// GetByID returns (nil, nil) when the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	// BindClinic sets the user's clinic; zero rows means the user is gone.
	BindClinic(ctx context.Context, userID, clinicID uuid.UUID) (int64, error)
}
