// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"indocafe/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrMenuItemNotFound is returned when a catalog item does not exist.
var ErrMenuItemNotFound = errors.New("menu item not found")

// MenuItemRepository defines the persistence operations of the global catalog.
type MenuItemRepository interface {
	// Create persists a new catalog item.
	Create(ctx context.Context, item *entity.MenuItem) error

	// FindAll returns the whole catalog in insertion order.
	FindAll(ctx context.Context) ([]*entity.MenuItem, error)

	// FindByID retrieves a single catalog item.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
}
