package entity

import (
	"slices"

	"github.com/google/uuid"
)

// Principal is the authenticated caller as seen by the use cases.
type Principal struct {
	UserID            uuid.UUID
	Role              Role
	PrimaryOutletID   *uuid.UUID
	AssignedOutletIDs []uuid.UUID
}

// IsChainAdmin reports whether the principal administers the whole chain.
func (p *Principal) IsChainAdmin() bool {
	return p != nil && p.Role == RoleSuperAdmin
}

// HasOutletAssignment reports whether outletID is the primary or one of the additional assignments.
func (p *Principal) HasOutletAssignment(outletID uuid.UUID) bool {
	if p == nil {
		return false
	}
	if p.PrimaryOutletID != nil && *p.PrimaryOutletID == outletID {
		return true
	}

	return slices.Contains(p.AssignedOutletIDs, outletID)
}

// CanManageOutlet is the single authorization rule for outlet-scoped writes.
// Chain administrators may target any outlet, outlet managers only their assignments,
// every other role is denied.
func (p *Principal) CanManageOutlet(outletID uuid.UUID) bool {
	if p == nil {
		return false
	}

	switch p.Role {
	case RoleSuperAdmin:
		return true
	case RoleOutletManager:
		return p.HasOutletAssignment(outletID)
	default:
		return false
	}
}

// DefaultOutlet returns the outlet the principal acts on when none is given explicitly.
func (p *Principal) DefaultOutlet() (uuid.UUID, bool) {
	if p == nil || p.PrimaryOutletID == nil || *p.PrimaryOutletID == uuid.Nil {
		return uuid.Nil, false
	}

	return *p.PrimaryOutletID, true
}
