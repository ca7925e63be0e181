package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OutletItemConfigModel mirrors the 'outlet_item_configs' table.
// The composite unique index backs the upsert conflict target.
type OutletItemConfigModel struct {
	ID          uuid.UUID           `gorm:"type:uuid;primaryKey"`
	OutletID    uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:idx_outlet_item_configs_outlet_item,priority:1"`
	MenuItemID  uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:idx_outlet_item_configs_outlet_item,priority:2"`
	IsAvailable bool                `gorm:"not null"`
	CustomPrice decimal.NullDecimal `gorm:"type:numeric(10,2)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (OutletItemConfigModel) TableName() string {
	return "outlet_item_configs"
}
