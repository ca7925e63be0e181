package usecase

import (
	"context"

	"indocafe/internal/domain/entity"
	"indocafe/internal/domain/service"
)

// SnapshotUsecase keeps the published menu snapshots in step with catalog and override changes.
type SnapshotUsecase interface {
	// RefreshOutlet recomputes and publishes the snapshot of one outlet.
	RefreshOutlet(ctx context.Context, outletID string) (*entity.MenuSnapshot, error)

	// RefreshAll republishes the snapshot of every active outlet and returns how many were written.
	RefreshAll(ctx context.Context) (int, error)

	// HandleMenuEvent refreshes whatever snapshots the event invalidates.
	HandleMenuEvent(ctx context.Context, event *service.MenuEvent) error
}
