// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"indocafe/internal/delivery/http/middleware"
	"indocafe/internal/delivery/http/router/handler"
	"indocafe/internal/domain/constants"
	"indocafe/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	MenuHandler    *handler.MenuHandler
	OutletHandler  *handler.OutletHandler
	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	menuHandler    *handler.MenuHandler
	outletHandler  *handler.OutletHandler
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		menuHandler:    params.MenuHandler,
		outletHandler:  params.OutletHandler,
		userHandler:    params.UserHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Uploaded menu images, for deployments whose bucket is not served by a CDN
	e.GET(constants.ImageRoutePath+"/*", r.menuHandler.GetMenuImage)

	api := e.Group("/api")

	// Public routes, used by customer-facing menus and QR code scans
	publicGroup := api.Group("/public")
	{
		publicGroup.GET("/menu/:outletId", r.menuHandler.GetEffectiveMenu)
		publicGroup.GET("/outlets/nearby", r.outletHandler.FindNearbyOutlets)
	}

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.GET("/me", r.userHandler.GetProfile, r.authMiddleware.Authenticate)
	}

	// Outlet manager routes. Chain administrators may act on any outlet.
	managerGroup := api.Group("/manager")
	managerGroup.Use(r.authMiddleware.Authenticate)
	managerGroup.Use(r.authMiddleware.RequireRole(entity.RoleOutletManager, entity.RoleSuperAdmin))
	{
		managerGroup.PUT("/menu/:itemId/status", r.menuHandler.UpdateItemStatus)
	}

	// Chain administration routes
	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleSuperAdmin))
	{
		adminGroup.GET("/menu", r.menuHandler.ListCatalog)
		adminGroup.POST("/menu", r.menuHandler.CreateMenuItem)
		adminGroup.POST("/menu/image", r.menuHandler.UploadMenuImage)

		adminGroup.GET("/outlets", r.outletHandler.ListOutlets)
		adminGroup.POST("/outlets", r.outletHandler.CreateOutlet)
		adminGroup.GET("/outlets/:id/qr", r.outletHandler.GetMenuQRCode)

		adminGroup.POST("/users", r.userHandler.CreateUser)
	}
}
