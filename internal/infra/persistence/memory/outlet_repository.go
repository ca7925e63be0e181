package memory

import (
	"context"

	"indocafe/internal/domain/entity"
	domainerrors "indocafe/internal/domain/errors"
	"indocafe/internal/domain/repository"

	"github.com/google/uuid"
)

type outletRepository struct {
	outlets *table[entity.Outlet]
}

// NewOutletRepository returns an in-memory outlet registry.
func NewOutletRepository() repository.OutletRepository {
	return &outletRepository{outlets: newTable[entity.Outlet]()}
}

func (repo *outletRepository) Create(_ context.Context, outlet *entity.Outlet) error {
	if !repo.outlets.insert(outlet.ID, *outlet) {
		return domainerrors.ErrConflict.WithDetails("outlet id already exists")
	}

	return nil
}

func (repo *outletRepository) FindAll(_ context.Context) ([]*entity.Outlet, error) {
	rows := repo.outlets.list(nil)
	outlets := make([]*entity.Outlet, 0, len(rows))
	for i := range rows {
		outlets = append(outlets, &rows[i])
	}

	return outlets, nil
}

func (repo *outletRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Outlet, error) {
	outlet, ok := repo.outlets.get(id)
	if !ok {
		return nil, repository.ErrOutletNotFound
	}

	return &outlet, nil
}
