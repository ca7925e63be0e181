package handler

import (
	"log/slog"
	"net/http"

	"indocafe/internal/delivery/http/response"
	"indocafe/internal/domain/entity"
	"indocafe/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/fx"
)

const defaultNearbyRadiusKm = 5.0

// OutletHandlerParams holds dependencies for OutletHandler, injected by Fx.
type OutletHandlerParams struct {
	fx.In

	OutletUC usecase.OutletUsecase
	Logger   *slog.Logger
}

// OutletHandler serves the outlet registry endpoints.
type OutletHandler struct {
	outletUC usecase.OutletUsecase
	logger   *slog.Logger
}

// NewOutletHandler is the constructor for OutletHandler
func NewOutletHandler(params OutletHandlerParams) *OutletHandler {
	return &OutletHandler{
		outletUC: params.OutletUC,
		logger:   params.Logger,
	}
}

// CreateOutletRequest represents the request body for registering an outlet.
// Location is a GeoJSON Point with coordinates [longitude, latitude].
type CreateOutletRequest struct {
	Name        string            `json:"name" validate:"required"`
	Address     string            `json:"address" validate:"required"`
	Type        string            `json:"type" validate:"required,oneof=dine_in cloud_kitchen hybrid"`
	PhoneNumber string            `json:"phoneNumber" validate:"required"`
	Location    *geojson.Geometry `json:"location" validate:"required"`
	IsActive    *bool             `json:"isActive"`
}

// NearbyOutletsQuery holds the query parameters of a radius search.
type NearbyOutletsQuery struct {
	Latitude  *float64 `query:"lat" json:"lat" validate:"required"`
	Longitude *float64 `query:"lng" json:"lng" validate:"required"`
	RadiusKm  float64  `query:"radiusKm" json:"radiusKm"`
}

// CreateOutlet registers an outlet.
func (h *OutletHandler) CreateOutlet(c echo.Context) error {
	var req CreateOutletRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid outlet input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	point, ok := req.Location.Geometry().(orb.Point)
	if !ok {
		return response.BadRequest(c, "VALIDATION_FAILED", "location must be a GeoJSON Point")
	}

	outlet, err := h.outletUC.CreateOutlet(c.Request().Context(), &usecase.CreateOutletInput{
		Name:        req.Name,
		Address:     req.Address,
		Type:        entity.OutletType(req.Type),
		PhoneNumber: req.PhoneNumber,
		Latitude:    point.Lat(),
		Longitude:   point.Lon(),
		IsActive:    req.IsActive,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, outlet, "Outlet created successfully")
}

// ListOutlets returns the listing projection of every outlet.
func (h *OutletHandler) ListOutlets(c echo.Context) error {
	outlets, err := h.outletUC.ListOutlets(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, outlets, "Outlets retrieved successfully")
}

// FindNearbyOutlets returns active outlets around a point.
func (h *OutletHandler) FindNearbyOutlets(c echo.Context) error {
	var query NearbyOutletsQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "Invalid nearby query")
	}

	if err := c.Validate(&query); err != nil {
		return response.HandleAppError(c, err)
	}

	radius := query.RadiusKm
	if radius == 0 {
		radius = defaultNearbyRadiusKm
	}

	nearby, err := h.outletUC.FindNearbyOutlets(c.Request().Context(), &usecase.NearbyOutletsInput{
		Latitude:  *query.Latitude,
		Longitude: *query.Longitude,
		RadiusKm:  radius,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nearby, "Nearby outlets retrieved successfully")
}

// GetMenuQRCode renders the PNG QR code that opens the outlet's public menu.
func (h *OutletHandler) GetMenuQRCode(c echo.Context) error {
	png, err := h.outletUC.GenerateMenuQRCode(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "no-store")

	return c.Blob(http.StatusOK, "image/png", png)
}
