package memory

import (
	"context"
	"slices"

	"indocafe/internal/domain/entity"
	domainerrors "indocafe/internal/domain/errors"
	"indocafe/internal/domain/repository"

	"github.com/google/uuid"
)

type menuItemRepository struct {
	items *table[entity.MenuItem]
}

// NewMenuItemRepository returns an in-memory catalog.
func NewMenuItemRepository() repository.MenuItemRepository {
	return &menuItemRepository{items: newTable[entity.MenuItem]()}
}

func (repo *menuItemRepository) Create(_ context.Context, item *entity.MenuItem) error {
	row := *item
	row.Tags = slices.Clone(item.Tags)
	if !repo.items.insert(item.ID, row) {
		return domainerrors.ErrConflict.WithDetails("menu item id already exists")
	}

	return nil
}

func (repo *menuItemRepository) FindAll(_ context.Context) ([]*entity.MenuItem, error) {
	rows := repo.items.list(nil)
	items := make([]*entity.MenuItem, 0, len(rows))
	for i := range rows {
		items = append(items, &rows[i])
	}

	return items, nil
}

func (repo *menuItemRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	item, ok := repo.items.get(id)
	if !ok {
		return nil, repository.ErrMenuItemNotFound
	}

	return &item, nil
}
