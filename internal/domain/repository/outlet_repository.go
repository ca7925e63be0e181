package repository

import (
	"context"

	"indocafe/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrOutletNotFound is returned when an outlet does not exist.
var ErrOutletNotFound = errors.New("outlet not found")

// OutletRepository defines the persistence operations of the outlet registry.
type OutletRepository interface {
	// Create persists a new outlet.
	Create(ctx context.Context, outlet *entity.Outlet) error

	// FindAll returns every outlet in insertion order.
	FindAll(ctx context.Context) ([]*entity.Outlet, error)

	// FindByID retrieves a single outlet.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Outlet, error)
}
