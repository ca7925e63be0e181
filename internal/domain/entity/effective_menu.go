package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EffectiveMenuEntry is a catalog item as served by one outlet. It is computed on read and never stored.
type EffectiveMenuEntry struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	BasePrice     decimal.Decimal `json:"basePrice"`
	Category      Category        `json:"category"`
	IsVeg         bool            `json:"isVeg"`
	Pieces        *int            `json:"pieces,omitempty"`
	Tags          []string        `json:"tags,omitempty"`
	Image         string          `json:"image,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	Price         decimal.Decimal `json:"price"`
	IsAvailable   bool            `json:"isAvailable"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
}

// MergeMenu resolves every catalog item against the outlet's overrides.
// The result has exactly one entry per item, in catalog order. Configs belonging to
// items absent from the catalog are ignored.
func MergeMenu(items []*MenuItem, configs []*OutletItemConfig) []*EffectiveMenuEntry {
	byItem := make(map[uuid.UUID]*OutletItemConfig, len(configs))
	for _, cfg := range configs {
		if cfg == nil {
			continue
		}
		byItem[cfg.MenuItemID] = cfg
	}

	merged := make([]*EffectiveMenuEntry, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		merged = append(merged, ResolveMenuEntry(item, byItem[item.ID]))
	}

	return merged
}

// ResolveMenuEntry applies a single override (possibly nil) to an item.
func ResolveMenuEntry(item *MenuItem, cfg *OutletItemConfig) *EffectiveMenuEntry {
	entry := &EffectiveMenuEntry{
		ID:            item.ID,
		Name:          item.Name,
		Description:   item.Description,
		BasePrice:     item.BasePrice,
		Category:      item.Category,
		IsVeg:         item.IsVeg,
		Pieces:        item.Pieces,
		Tags:          item.Tags,
		Image:         item.Image,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
		Price:         item.BasePrice,
		IsAvailable:   true,
		OriginalPrice: item.BasePrice,
	}

	if cfg == nil {
		return entry
	}

	if cfg.CustomPrice != nil {
		entry.Price = *cfg.CustomPrice
	}
	entry.IsAvailable = cfg.IsAvailable

	return entry
}
