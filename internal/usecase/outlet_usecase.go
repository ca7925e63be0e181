package usecase

import (
	"context"

	"indocafe/internal/domain/entity"
)

// CreateOutletInput defines the data required to register an outlet.
type CreateOutletInput struct {
	Name        string
	Address     string
	Type        entity.OutletType
	PhoneNumber string
	Latitude    float64
	Longitude   float64
	IsActive    *bool
}

// NearbyOutletsInput is a radius query around a point.
type NearbyOutletsInput struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
}

// OutletUsecase defines the outlet registry operations.
type OutletUsecase interface {
	CreateOutlet(ctx context.Context, input *CreateOutletInput) (*entity.Outlet, error)
	ListOutlets(ctx context.Context) ([]*entity.OutletSummary, error)
	FindNearbyOutlets(ctx context.Context, input *NearbyOutletsInput) ([]*entity.NearbyOutlet, error)
	// GenerateMenuQRCode renders a PNG QR code linking to the outlet's public menu.
	GenerateMenuQRCode(ctx context.Context, outletID string) ([]byte, error)
}
