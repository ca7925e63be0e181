package postgres

import (
	"context"
	"time"

	"indocafe/internal/domain/entity"
	domainerrors "indocafe/internal/domain/errors"
	"indocafe/internal/domain/repository"
	"indocafe/internal/infra/persistence/model"
	"indocafe/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// outletItemConfigRepository implements the repository.OutletItemConfigRepository interface using GORM.
type outletItemConfigRepository struct {
	q   *query.Query
	now func() time.Time
}

// NewOutletItemConfigRepository is the constructor for outletItemConfigRepository.
func NewOutletItemConfigRepository(db *gorm.DB) repository.OutletItemConfigRepository {
	return &outletItemConfigRepository{
		q:   query.Use(db),
		now: time.Now,
	}
}

func (repo *outletItemConfigRepository) FindByOutlet(ctx context.Context, outletID uuid.UUID) ([]*entity.OutletItemConfig, error) {
	c := repo.q.OutletItemConfigModel
	configsM, err := c.WithContext(ctx).Where(c.OutletID.Eq(outletID)).Find()
	if err != nil {
		return nil, domainerrors.NewStorageUnavailableError(err, "failed to list outlet item configs")
	}

	configs := make([]*entity.OutletItemConfig, 0, len(configsM))
	for _, configM := range configsM {
		configs = append(configs, toOutletItemConfigDomain(configM))
	}

	return configs, nil
}

// Upsert issues a single INSERT .. ON CONFLICT (outlet_id, menu_item_id) DO UPDATE statement.
// The insert row carries the defaults merged with the patch, the update sets only the supplied columns.
func (repo *outletItemConfigRepository) Upsert(
	ctx context.Context,
	outletID, menuItemID uuid.UUID,
	patch entity.OutletItemPatch,
) (*entity.OutletItemConfig, error) {
	now := repo.now()
	inserted := fromOutletItemConfigDomain(entity.NewOutletItemConfig(outletID, menuItemID, patch, now))

	assignments := map[string]any{"updated_at": now}
	if patch.IsAvailable != nil {
		assignments["is_available"] = *patch.IsAvailable
	}
	if patch.CustomPrice.Set {
		assignments["custom_price"] = toNullDecimal(patch.CustomPrice.Value)
	}

	c := repo.q.OutletItemConfigModel
	err := c.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "outlet_id"}, {Name: "menu_item_id"}},
			DoUpdates: clause.Assignments(assignments),
		}).
		Create(inserted)
	if err != nil {
		return nil, domainerrors.NewStorageUnavailableError(err, "failed to upsert outlet item config")
	}

	stored, err := c.WithContext(ctx).
		WriteDB().
		Where(c.OutletID.Eq(outletID), c.MenuItemID.Eq(menuItemID)).
		First()
	if err != nil {
		return nil, domainerrors.NewStorageUnavailableError(err, "failed to reload outlet item config")
	}

	return toOutletItemConfigDomain(stored), nil
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}

	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func toOutletItemConfigDomain(data *model.OutletItemConfigModel) *entity.OutletItemConfig {
	if data == nil {
		return nil
	}

	cfg := &entity.OutletItemConfig{
		ID:          data.ID,
		OutletID:    data.OutletID,
		MenuItemID:  data.MenuItemID,
		IsAvailable: data.IsAvailable,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.CustomPrice.Valid {
		price := data.CustomPrice.Decimal
		cfg.CustomPrice = &price
	}

	return cfg
}

func fromOutletItemConfigDomain(data *entity.OutletItemConfig) *model.OutletItemConfigModel {
	if data == nil {
		return nil
	}

	return &model.OutletItemConfigModel{
		ID:          data.ID,
		OutletID:    data.OutletID,
		MenuItemID:  data.MenuItemID,
		IsAvailable: data.IsAvailable,
		CustomPrice: toNullDecimal(data.CustomPrice),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
