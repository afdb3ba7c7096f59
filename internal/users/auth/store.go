// Copyright (c) 2026 Code2Lead. All rights reserved.

package auth

import (
	"context"
	"time"

	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/sec"
	"github.com/Abdulmajid-Alhaj/Code2Lead/pkg/pagination"
)

// # User Data Access

// UserFilter narrows a user listing.
type UserFilter struct {
	// Role limits the listing to one role when non-empty.
	Role sec.UserRole
	pagination.Params
}

// UserRepository defines the data access contract for user accounts.
//
// Uniqueness of email and username is enforced by the storage itself: Create
// returns [ErrEmailExists] or [ErrUsernameExists] when a constraint trips.
type UserRepository interface {

	/*
		Create persists a brand-new user account to the storage.

		Parameters:
		  - context: context.Context
		  - user: *User (timestamps are filled in)

		Returns:
		  - error: ErrEmailExists, ErrUsernameExists or persistence failures
	*/
	Create(context context.Context, user *User) error

	/*
		FindByID returns the account with the given ID.

		Returns:
		  - *User: Hydrated entity
		  - error: ErrUserNotFound or database retrieval failures
	*/
	FindByID(context context.Context, id string) (*User, error)

	/*
		FindByEmail returns the account with the given (normalized) email.

		Returns:
		  - *User: Hydrated entity
		  - error: ErrUserNotFound or database retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*User, error)

	/*
		FindByUsername returns the account with the given (normalized) username.

		Returns:
		  - *User: Hydrated entity
		  - error: ErrUserNotFound or database retrieval failures
	*/
	FindByUsername(context context.Context, username string) (*User, error)

	/*
		SetActive flips the activation flag in a single statement and returns the
		updated account. Setting the current value again is not an error.

		Returns:
		  - *User: Updated entity
		  - error: ErrUserNotFound or persistence failures
	*/
	SetActive(context context.Context, id string, active bool) (*User, error)

	/*
		TouchLastLogin stamps the last successful login time.
	*/
	TouchLastLogin(context context.Context, id string, at time.Time) error

	/*
		List returns one page of accounts, newest first, plus the total match count.
	*/
	List(context context.Context, filter UserFilter) ([]*User, int, error)
}

// # Volatile Data Access

// AttemptTracker counts failed logins and locks accounts that exceed the limit.
//
// Keys are user IDs. Implementations expire both counters and locks on their own.
type AttemptTracker interface {

	// IsLocked reports whether logins for key are currently refused.
	IsLocked(context context.Context, key string) (bool, error)

	// RecordFailure counts one failed attempt and reports whether the key is now locked.
	RecordFailure(context context.Context, key string) (bool, error)

	// Reset clears the failure counter after a successful login.
	Reset(context context.Context, key string) error
}
