package client

import (
	"time"

	"indocafe/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/shopspring/decimal"
)

// LoginResult is returned by Login.
type LoginResult struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
	User        *User     `json:"user"`
}

// Credential returns the credential carried by the login result.
func (r *LoginResult) Credential() Credential {
	return Bearer(r.AccessToken)
}

// User is a staff account as returned by the API.
type User struct {
	ID                uuid.UUID   `json:"id"`
	Name              string      `json:"name"`
	Email             string      `json:"email"`
	Role              entity.Role `json:"role"`
	PhoneNumber       string      `json:"phoneNumber,omitempty"`
	DefaultOutletID   *uuid.UUID  `json:"defaultOutletId"`
	AssignedOutletIDs []uuid.UUID `json:"assignedOutletIds"`
	IsActive          bool        `json:"isActive"`
	CreatedAt         time.Time   `json:"createdAt"`
}

// Outlet is an outlet as returned by the API. Location is a GeoJSON Point.
type Outlet struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Address     string            `json:"address"`
	Type        entity.OutletType `json:"type"`
	PhoneNumber string            `json:"phoneNumber"`
	Location    *geojson.Geometry `json:"location"`
	IsActive    bool              `json:"isActive"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// Point returns the outlet location, or the zero point when absent.
func (o *Outlet) Point() orb.Point {
	if o.Location == nil {
		return orb.Point{}
	}
	point, _ := o.Location.Geometry().(orb.Point)

	return point
}

// NearbyOutlet is one result of a radius search.
type NearbyOutlet struct {
	Outlet     *Outlet `json:"outlet"`
	DistanceKm float64 `json:"distanceKm"`
}

// CreateMenuItemRequest registers a catalog item.
type CreateMenuItemRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	BasePrice   decimal.Decimal `json:"basePrice"`
	Category    string          `json:"category"`
	IsVeg       bool            `json:"isVeg"`
	Pieces      *int            `json:"pieces,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
	Image       string          `json:"image,omitempty"`
}

// UpdateItemStatusRequest writes an outlet override. Nil fields are left untouched;
// a non-nil CustomPrice holding no value clears the custom price.
type UpdateItemStatusRequest struct {
	OutletID    string                `json:"outletId,omitempty"`
	IsAvailable *bool                 `json:"isAvailable,omitempty"`
	CustomPrice *entity.OptionalPrice `json:"customPrice,omitempty"`
}

// CreateOutletRequest registers an outlet.
type CreateOutletRequest struct {
	Name        string            `json:"name"`
	Address     string            `json:"address"`
	Type        entity.OutletType `json:"type"`
	PhoneNumber string            `json:"phoneNumber"`
	Location    *geojson.Geometry `json:"location"`
	IsActive    *bool             `json:"isActive,omitempty"`
}

// PointAt returns a GeoJSON Point for the given coordinates.
func PointAt(latitude, longitude float64) *geojson.Geometry {
	return geojson.NewGeometry(orb.Point{longitude, latitude})
}

// CreateUserRequest provisions a staff account.
type CreateUserRequest struct {
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Password          string   `json:"password"`
	Role              string   `json:"role"`
	PhoneNumber       string   `json:"phoneNumber,omitempty"`
	OutletID          string   `json:"outletId,omitempty"`
	AssignedOutletIDs []string `json:"assignedOutletIds,omitempty"`
}
