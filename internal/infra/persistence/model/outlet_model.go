package model

import (
	"time"

	"github.com/google/uuid"
)

// OutletModel mirrors the 'outlets' table.
type OutletModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(150);not null"`
	Address     string    `gorm:"type:text;not null"`
	Type        string    `gorm:"type:varchar(20);not null"`
	PhoneNumber string    `gorm:"type:varchar(30)"`
	Latitude    float64   `gorm:"type:double precision;not null;default:0"`
	Longitude   float64   `gorm:"type:double precision;not null;default:0"`
	IsActive    bool      `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (OutletModel) TableName() string {
	return "outlets"
}
