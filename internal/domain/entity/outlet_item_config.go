package entity

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OutletItemConfig is the per-outlet override of one catalog item.
// (OutletID, MenuItemID) is unique.
type OutletItemConfig struct {
	ID          uuid.UUID        `json:"id"`
	OutletID    uuid.UUID        `json:"outletId"`
	MenuItemID  uuid.UUID        `json:"menuItemId"`
	IsAvailable bool             `json:"isAvailable"`
	CustomPrice *decimal.Decimal `json:"customPrice"` // nil means the catalog base price applies
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// OptionalPrice distinguishes an absent price from an explicit null and a value.
type OptionalPrice struct {
	Set   bool
	Value *decimal.Decimal
}

// PriceOf returns a set OptionalPrice holding d.
func PriceOf(d decimal.Decimal) OptionalPrice {
	return OptionalPrice{Set: true, Value: &d}
}

// NullPrice returns a set OptionalPrice that clears the custom price.
func NullPrice() OptionalPrice {
	return OptionalPrice{Set: true}
}

// UnmarshalJSON is only invoked when the key is present, so any call marks the price as set.
func (p *OptionalPrice) UnmarshalJSON(data []byte) error {
	p.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		p.Value = nil

		return nil
	}

	var d decimal.Decimal
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	p.Value = &d

	return nil
}

// MarshalJSON renders the value or null.
func (p OptionalPrice) MarshalJSON() ([]byte, error) {
	if p.Value == nil {
		return []byte("null"), nil
	}

	return json.Marshal(p.Value)
}

// OutletItemPatch carries the fields supplied to an override write.
// Unsupplied fields keep their stored value, or take the insert default on first write.
type OutletItemPatch struct {
	IsAvailable *bool
	CustomPrice OptionalPrice
}

// NewOutletItemConfig builds the record inserted on the first write for a pair.
func NewOutletItemConfig(outletID, menuItemID uuid.UUID, patch OutletItemPatch, now time.Time) *OutletItemConfig {
	cfg := &OutletItemConfig{
		ID:          uuid.New(),
		OutletID:    outletID,
		MenuItemID:  menuItemID,
		IsAvailable: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	cfg.Apply(patch, now)

	return cfg
}

// Apply sets the supplied fields of patch on the config.
func (c *OutletItemConfig) Apply(patch OutletItemPatch, now time.Time) {
	if patch.IsAvailable != nil {
		c.IsAvailable = *patch.IsAvailable
	}
	if patch.CustomPrice.Set {
		if patch.CustomPrice.Value == nil {
			c.CustomPrice = nil
		} else {
			price := *patch.CustomPrice.Value
			c.CustomPrice = &price
		}
	}
	c.UpdatedAt = now
}
