// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"indocafe/internal/domain/entity"
)

// --- Input DTOs ---

// CreateStaffUserInput defines the data required to provision a staff account.
type CreateStaffUserInput struct {
	Name              string
	Email             string
	Password          string
	Role              entity.Role
	PhoneNumber       string
	OutletID          string
	AssignedOutletIDs []string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the generated access token after a successful login.
type LoginOutput struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *entity.User
}

// UserUsecase defines the interface for staff account operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	CreateStaffUser(ctx context.Context, input *CreateStaffUserInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetProfile(ctx context.Context, principal *entity.Principal) (*entity.User, error)
	// EnsureBootstrapAdmin creates the configured chain administrator when it does not exist yet.
	EnsureBootstrapAdmin(ctx context.Context) error
}
