// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleAdmin has full access to every capability, including user management.
	RoleAdmin Role = "Admin"
	// RoleAgent works deals, leads and commissions.
	RoleAgent Role = "Agent"
	// RoleViewer has a read-only view of the dashboard and properties.
	RoleViewer Role = "Viewer"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleAgent, RoleViewer:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
