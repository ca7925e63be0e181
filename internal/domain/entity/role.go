// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the role a staff account holds in the chain.
type Role string

const (
	// RoleSuperAdmin is the chain-wide administrator.
	RoleSuperAdmin Role = "SUPER_ADMIN"
	// RoleOutletManager manages one or more outlets.
	RoleOutletManager Role = "OUTLET_MANAGER"
	// RoleCashier is an operational role bound to an outlet.
	RoleCashier Role = "CASHIER"
	// RoleKitchen is an operational role bound to an outlet.
	RoleKitchen Role = "KITCHEN"
	// RoleWaiter is an operational role bound to an outlet.
	RoleWaiter Role = "WAITER"
	// RoleDispatcher is an operational role bound to an outlet.
	RoleDispatcher Role = "DISPATCHER"
	// RoleRider is an operational role bound to an outlet.
	RoleRider Role = "RIDER"
)

// allRoles lists every role the system knows about.
var allRoles = Roles{
	RoleSuperAdmin,
	RoleOutletManager,
	RoleCashier,
	RoleKitchen,
	RoleWaiter,
	RoleDispatcher,
	RoleRider,
}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	return allRoles.Contains(r)
}

// RequiresOutlet reports whether accounts with this role must be assigned to an outlet.
// Every role except the chain administrator is operational.
func (r Role) RequiresOutlet() bool {
	return r.IsValid() && r != RoleSuperAdmin
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// AllRoles returns a copy of every known role.
func AllRoles() Roles {
	return slices.Clone(allRoles)
}
