// Copyright (c) 2026 Code2Lead. All rights reserved.

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
type UserRole string

const (
	// Unrestricted system access, manages accounts
	RoleAdmin UserRole = "admin"

	// Can author courses and manage their own content
	RoleTrainer UserRole = "trainer"

	// Default role for standard registered learners
	RoleUser UserRole = "user"
)

// Valid reports whether r is one of the enumerated roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleTrainer, RoleUser:
		return true
	default:
		return false
	}
}

// In reports whether r is a member of roles.
func (r UserRole) In(roles ...UserRole) bool {
	for _, candidate := range roles {
		if r == candidate {
			return true
		}
	}
	return false
}

// String implements [fmt.Stringer].
func (r UserRole) String() string { return string(r) }
