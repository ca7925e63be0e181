package repository

import (
	"context"

	"indocafe/internal/domain/entity"

	"github.com/google/uuid"
)

// OutletItemConfigRepository defines the persistence operations of per-outlet overrides.
type OutletItemConfigRepository interface {
	// FindByOutlet returns every override stored for the outlet.
	FindByOutlet(ctx context.Context, outletID uuid.UUID) ([]*entity.OutletItemConfig, error)

	// Upsert atomically creates or updates the override keyed by (outletID, menuItemID).
	// On insert unsupplied fields take their defaults (available, no custom price);
	// on update only the supplied fields change. Concurrent calls for the same pair
	// never produce more than one record.
	Upsert(ctx context.Context, outletID, menuItemID uuid.UUID, patch entity.OutletItemPatch) (*entity.OutletItemConfig, error)
}
