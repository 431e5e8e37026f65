package clinic

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Insert(ctx context.Context, c *Clinic) error
	// GetByID returns (nil, nil) when the clinic does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*Clinic, error)
}
