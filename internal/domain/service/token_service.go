package service

import (
	"time"

	"indocafe/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the access token.
type Claims struct {
	UserID            uuid.UUID   `json:"uid"`
	Role              entity.Role `json:"role"`
	OutletID          *uuid.UUID  `json:"outlet_id,omitempty"`
	AssignedOutletIDs []uuid.UUID `json:"assigned_outlets,omitempty"`
	jwt.RegisteredClaims
}

// Principal converts the claims to the caller identity seen by the use cases.
func (c *Claims) Principal() *entity.Principal {
	return &entity.Principal{
		UserID:            c.UserID,
		Role:              c.Role,
		PrimaryOutletID:   c.OutletID,
		AssignedOutletIDs: c.AssignedOutletIDs,
	}
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for the user.
	GenerateAccessToken(user *entity.User) (token string, expiresAt time.Time, err error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
