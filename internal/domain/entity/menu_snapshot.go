package entity

import (
	"time"

	"github.com/google/uuid"
)

// MenuSnapshot is the effective menu of one outlet frozen at GeneratedAt, published for
// consumers that read menus without calling the API.
type MenuSnapshot struct {
	OutletID    uuid.UUID             `json:"outletId"`
	OutletName  string                `json:"outletName"`
	GeneratedAt time.Time             `json:"generatedAt"`
	Items       []*EffectiveMenuEntry `json:"items"`
}

// AvailableCount returns how many items the outlet currently serves.
func (s *MenuSnapshot) AvailableCount() int {
	count := 0
	for _, item := range s.Items {
		if item.IsAvailable {
			count++
		}
	}

	return count
}
