// Package model holds the GORM persistence models. They mirror the database tables and are
// mapped to domain entities by the repositories, never handed to the use cases directly.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// MenuItemModel mirrors the 'menu_items' table.
type MenuItemModel struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Name        string                      `gorm:"type:varchar(150);not null"`
	Description string                      `gorm:"type:text"`
	BasePrice   decimal.Decimal             `gorm:"type:numeric(10,2);not null"`
	Category    string                      `gorm:"type:varchar(50);not null;index"`
	IsVeg       bool                        `gorm:"not null;default:false"`
	Pieces      *int                        `gorm:"type:integer"`
	Tags        datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Image       string                      `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (MenuItemModel) TableName() string {
	return "menu_items"
}
