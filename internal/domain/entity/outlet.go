package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// OutletType describes how an outlet serves customers.
type OutletType string

const (
	OutletTypeDineIn       OutletType = "dine_in"
	OutletTypeCloudKitchen OutletType = "cloud_kitchen"
	OutletTypeHybrid       OutletType = "hybrid"
)

// IsValid checks if the OutletType is a valid value.
func (t OutletType) IsValid() bool {
	switch t {
	case OutletTypeDineIn, OutletTypeCloudKitchen, OutletTypeHybrid:
		return true
	default:
		return false
	}
}

// Outlet is a physical restaurant location.
type Outlet struct {
	ID          uuid.UUID
	Name        string
	Address     string
	Type        OutletType
	PhoneNumber string
	Location    orb.Point // [longitude, latitude]
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Latitude returns the outlet latitude.
func (o *Outlet) Latitude() float64 {
	return o.Location.Lat()
}

// Longitude returns the outlet longitude.
func (o *Outlet) Longitude() float64 {
	return o.Location.Lon()
}

type outletJSON struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Address     string            `json:"address"`
	Type        OutletType        `json:"type"`
	PhoneNumber string            `json:"phoneNumber"`
	Location    *geojson.Geometry `json:"location"`
	IsActive    bool              `json:"isActive"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// MarshalJSON renders the location as a GeoJSON Point.
func (o Outlet) MarshalJSON() ([]byte, error) {
	return json.Marshal(outletJSON{
		ID:          o.ID,
		Name:        o.Name,
		Address:     o.Address,
		Type:        o.Type,
		PhoneNumber: o.PhoneNumber,
		Location:    geojson.NewGeometry(o.Location),
		IsActive:    o.IsActive,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	})
}

// OutletSummary is the reduced projection used by listing views.
type OutletSummary struct {
	ID       uuid.UUID  `json:"id"`
	Name     string     `json:"name"`
	Type     OutletType `json:"type"`
	IsActive bool       `json:"isActive"`
}

// Summary projects the outlet to its listing fields.
func (o *Outlet) Summary() *OutletSummary {
	return &OutletSummary{
		ID:       o.ID,
		Name:     o.Name,
		Type:     o.Type,
		IsActive: o.IsActive,
	}
}

// NearbyOutlet pairs an outlet with its distance from a query point.
type NearbyOutlet struct {
	Outlet     *Outlet `json:"outlet"`
	DistanceKm float64 `json:"distanceKm"`
}
