package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID                uuid.UUID                      `gorm:"type:uuid;primaryKey"`
	Name              string                         `gorm:"type:varchar(100);not null"`
	Email             string                         `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash      string                         `gorm:"type:varchar(255);not null"`
	Role              string                         `gorm:"type:varchar(30);not null;index"`
	PhoneNumber       string                         `gorm:"type:varchar(30)"`
	DefaultOutletID   *uuid.UUID                     `gorm:"type:uuid;index"`
	AssignedOutletIDs datatypes.JSONSlice[uuid.UUID] `gorm:"type:jsonb"`
	IsActive          bool                           `gorm:"not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
