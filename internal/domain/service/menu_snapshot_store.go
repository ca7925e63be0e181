package service

import (
	"context"

	"indocafe/internal/domain/entity"
)

// MenuSnapshotStore persists published menu snapshots, one object per outlet.
type MenuSnapshotStore interface {
	// Put replaces the snapshot of snapshot.OutletID and returns its location.
	Put(ctx context.Context, snapshot *entity.MenuSnapshot) (string, error)
}
