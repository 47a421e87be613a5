package ports

import (
	"context"

	"github.com/PushtoStartCo/safeguards/internal/domain"
)

type DJRepo interface {
	GetByID(ctx context.Context, id string) (*domain.DJ, error)
	List(ctx context.Context) ([]*domain.DJ, error)
	// Suspend deactivates the public profile. Returns false when the
	// profile was already suspended.
	Suspend(ctx context.Context, id, reason string) (bool, error)
	Reactivate(ctx context.Context, id string) error
}
