// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"indocafe/internal/delivery/http/middleware"
	"indocafe/internal/delivery/http/response"
	"indocafe/internal/domain/entity"
	"indocafe/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for staff account and authentication handlers.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateUserRequest represents the request body for provisioning a staff account
type CreateUserRequest struct {
	Name              string   `json:"name" validate:"required"`
	Email             string   `json:"email" validate:"required,email"`
	Password          string   `json:"password" validate:"required,min=8"`
	Role              string   `json:"role" validate:"required"`
	PhoneNumber       string   `json:"phoneNumber"`
	OutletID          string   `json:"outletId"`
	AssignedOutletIDs []string `json:"assignedOutletIds"`
}

// UserResponse is the public view of a staff account. The password hash is never rendered.
type UserResponse struct {
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

// LoginResponse carries the issued access token.
type LoginResponse struct {
	AccessToken string        `json:"accessToken"`
	TokenType   string        `json:"tokenType"`
	ExpiresAt   time.Time     `json:"expiresAt"`
	User        *UserResponse `json:"user"`
}

func newUserResponse(user *entity.User) *UserResponse {
	assigned := user.AssignedOutletIDs
	if assigned == nil {
		assigned = []uuid.UUID{}
	}

	return &UserResponse{
		ID:                user.ID,
		Name:              user.Name,
		Email:             user.Email,
		Role:              user.Role,
		PhoneNumber:       user.PhoneNumber,
		DefaultOutletID:   user.DefaultOutletID,
		AssignedOutletIDs: assigned,
		IsActive:          user.IsActive,
		CreatedAt:         user.CreatedAt,
	}
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &LoginResponse{
		AccessToken: output.AccessToken,
		TokenType:   "Bearer",
		ExpiresAt:   output.ExpiresAt,
		User:        newUserResponse(output.User),
	}, "Login successful")
}

// GetProfile returns the authenticated caller's account.
func (h *UserHandler) GetProfile(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), principal)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user), "Profile retrieved successfully")
}

// CreateUser provisions a manager or staff account.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid user input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.CreateStaffUser(c.Request().Context(), &usecase.CreateStaffUserInput{
		Name:              req.Name,
		Email:             req.Email,
		Password:          req.Password,
		Role:              entity.Role(req.Role),
		PhoneNumber:       req.PhoneNumber,
		OutletID:          req.OutletID,
		AssignedOutletIDs: req.AssignedOutletIDs,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newUserResponse(user), "User created successfully")
}
