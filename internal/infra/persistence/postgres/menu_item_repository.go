// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"indocafe/internal/domain/entity"
	domainerrors "indocafe/internal/domain/errors"
	"indocafe/internal/domain/repository"
	"indocafe/internal/infra/persistence/model"
	"indocafe/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// menuItemRepository implements the repository.MenuItemRepository interface using GORM.
type menuItemRepository struct {
	q *query.Query
}

// NewMenuItemRepository is the constructor for menuItemRepository.
func NewMenuItemRepository(db *gorm.DB) repository.MenuItemRepository {
	return &menuItemRepository{
		q: query.Use(db),
	}
}

// Create persists a new catalog item.
func (repo *menuItemRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	itemM := fromMenuItemDomain(item)
	if err := repo.q.MenuItemModel.WithContext(ctx).Create(itemM); err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WithDetails("menu item id already exists")
		}

		return domainerrors.NewStorageUnavailableError(err, "failed to create menu item")
	}

	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// FindAll returns the catalog ordered by creation time. IDs are UUIDv7 so they break ties in insertion order.
func (repo *menuItemRepository) FindAll(ctx context.Context) ([]*entity.MenuItem, error) {
	m := repo.q.MenuItemModel
	itemsM, err := m.WithContext(ctx).Order(m.CreatedAt, m.ID).Find()
	if err != nil {
		return nil, domainerrors.NewStorageUnavailableError(err, "failed to list menu items")
	}

	items := make([]*entity.MenuItem, 0, len(itemsM))
	for _, itemM := range itemsM {
		items = append(items, toMenuItemDomain(itemM))
	}

	return items, nil
}

// FindByID retrieves a single catalog item from the primary, so an override written
// right after the item was created does not miss it on a lagging replica.
func (repo *menuItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	m := repo.q.MenuItemModel
	itemM, err := m.WithContext(ctx).WriteDB().Where(m.ID.Eq(id)).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMenuItemNotFound
		}

		return nil, domainerrors.NewStorageUnavailableError(err, "failed to find menu item by id")
	}

	return toMenuItemDomain(itemM), nil
}

// --- Mapper Functions ---

func toMenuItemDomain(data *model.MenuItemModel) *entity.MenuItem {
	if data == nil {
		return nil
	}

	return &entity.MenuItem{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		BasePrice:   data.BasePrice,
		Category:    entity.Category(data.Category),
		IsVeg:       data.IsVeg,
		Pieces:      data.Pieces,
		Tags:        []string(data.Tags),
		Image:       data.Image,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromMenuItemDomain(data *entity.MenuItem) *model.MenuItemModel {
	if data == nil {
		return nil
	}

	return &model.MenuItemModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		BasePrice:   data.BasePrice,
		Category:    data.Category.String(),
		IsVeg:       data.IsVeg,
		Pieces:      data.Pieces,
		Tags:        data.Tags,
		Image:       data.Image,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
