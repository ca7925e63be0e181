package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category groups catalog items on the menu. The set is open: the
// predefined values are what the admin console offers, other non-empty values are kept as-is.
type Category string

const (
	CategoryStarters  Category = "Starters"
	CategoryMains     Category = "Mains"
	CategoryDesserts  Category = "Desserts"
	CategoryBeverages Category = "Beverages"
)

// DefaultCategories returns the categories offered by default.
func DefaultCategories() []Category {
	return []Category{CategoryStarters, CategoryMains, CategoryDesserts, CategoryBeverages}
}

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// MenuItem is a chain-wide catalog entry.
type MenuItem struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	BasePrice   decimal.Decimal `json:"basePrice"`
	Category    Category        `json:"category"`
	IsVeg       bool            `json:"isVeg"`
	Pieces      *int            `json:"pieces,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
	Image       string          `json:"image,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
