// Copyright (c) 2026 Code2Lead. All rights reserved.

package auth

import "github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/apperr"

// # Identity Constraints

const (
	NameMinLength     = 2
	NameMaxLength     = 100
	UsernameMinLength = 3
	UsernameMaxLength = 30
	PasswordMinLength = 6
)

// # Response Messages

const (
	MessageAdminCreated    = "Admin user created successfully"
	MessageLoginSuccessful = "Login successful"
	MessageLoggedOut       = "Logged out successfully"
	MessageUserCreated     = "User created successfully"
	MessageUserDeactivated = "User deactivated successfully"
	MessageUserActivated   = "User activated successfully"
)

// # Domain Errors

var (
	ErrEmailExists        = apperr.Conflict("EMAIL_EXISTS", "User with this email already exists")
	ErrUsernameExists     = apperr.Conflict("USERNAME_EXISTS", "Username is already taken")
	ErrInvalidCredentials = apperr.Unauthorized("INVALID_CREDENTIALS", "Invalid email or password")
	ErrAccountLocked      = apperr.Locked("ACCOUNT_LOCKED", "Account is temporarily locked due to too many failed login attempts")
	ErrAccountDeactivated = apperr.AccountState("ACCOUNT_DEACTIVATED", "Account has been deactivated")
	ErrUserNotFound       = apperr.NotFound("USER_NOT_FOUND", "User not found")
)
