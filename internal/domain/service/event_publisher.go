package service

import (
	"context"
	"time"
)

// MenuEventType names a change to the catalog or to an outlet override.
type MenuEventType string

const (
	MenuEventItemCreated   MenuEventType = "menu_item.created"
	MenuEventConfigUpdated MenuEventType = "outlet_item_config.updated"
)

// MenuEvent is published after a successful catalog or override write so that
// downstream consumers (POS terminals, caches) can refresh an outlet's menu.
type MenuEvent struct {
	RequestID  string        `json:"request_id,omitempty"` // For distributed tracing
	Type       MenuEventType `json:"type"`
	OutletID   string        `json:"outlet_id,omitempty"` // Empty for chain-wide catalog changes
	MenuItemID string        `json:"menu_item_id"`
	ActorID    string        `json:"actor_id,omitempty"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMenuEvent publishes a menu change event
	PublishMenuEvent(ctx context.Context, event *MenuEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
