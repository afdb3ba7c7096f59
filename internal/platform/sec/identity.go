// Copyright (c) 2026 Code2Lead. All rights reserved.

package sec

// Identity is the authenticated caller carried inside a session token and on the
// request context.
//
// It is reconstructed from the token alone. Role or activation changes made after
// issuance are therefore not visible until the caller logs in again.
type Identity struct {
	ID       string   `json:"id"`
	Role     UserRole `json:"role"`
	Email    string   `json:"email"`
	Username string   `json:"username"`
}
