// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// User is a staff account of the restaurant chain.
type User struct {
	ID                uuid.UUID   // The Global Unique Identifier (GUID) for the user.
	Name              string      // Display name.
	Email             string      // Login identifier, unique across the chain.
	PasswordHash      string      // bcrypt hash, never serialized to clients.
	Role              Role        // The single role held by the account.
	PhoneNumber       string      // Optional contact number.
	DefaultOutletID   *uuid.UUID  // Primary outlet assignment, nil for chain administrators.
	AssignedOutletIDs []uuid.UUID // Additional outlet assignments.
	IsActive          bool        // Inactive accounts cannot log in.
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Principal builds the authenticated view of this user.
func (u *User) Principal() *Principal {
	return &Principal{
		UserID:            u.ID,
		Role:              u.Role,
		PrimaryOutletID:   u.DefaultOutletID,
		AssignedOutletIDs: slices.Clone(u.AssignedOutletIDs),
	}
}
