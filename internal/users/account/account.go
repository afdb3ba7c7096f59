// Copyright (c) 2026 Code2Lead. All rights reserved.

/*
Package account handles the profile side of a user account.

It lets the signed-in user read and edit their own profile, and lets anyone read
the public profile of an account that opted in.

# Architecture

  - Entities: the account itself is [auth.User]; this package only adds the
    [ProfileChanges] delta.
  - Domain: This package depends on the auth package for the User entity, its
    projections and its errors.
  - Storage: [ProfileRepository] is declared here, next to its only consumer.
*/
package account

import (
	"context"

	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/users/auth"
)

// # Domain Entities

// ProfileChanges is the allow-listed delta applied by a profile update.
//
// A nil field is left untouched. A non-nil empty Studies slice clears the list.
type ProfileChanges struct {
	Name          *string
	Bio           *string
	Avatar        *string
	PublicProfile *bool
	Social        *auth.Social
	Studies       []auth.Study
}

// Empty reports whether the delta changes nothing.
func (changes ProfileChanges) Empty() bool {
	return changes.Name == nil &&
		changes.Bio == nil &&
		changes.Avatar == nil &&
		changes.PublicProfile == nil &&
		changes.Social == nil &&
		changes.Studies == nil
}

// # Repository Contracts

// ProfileRepository defines the persistence contract for profile reads and writes.
type ProfileRepository interface {
	/*
		FindByID retrieves a user record by their unique ID.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *auth.User: Loaded account entity
		  - error: auth.ErrUserNotFound or storage failures
	*/
	FindByID(context context.Context, id string) (*auth.User, error)

	/*
		FindByUsername retrieves a user record by their normalized username.

		Returns:
		  - *auth.User: Loaded account entity
		  - error: auth.ErrUserNotFound or storage failures
	*/
	FindByUsername(context context.Context, username string) (*auth.User, error)

	/*
		UpdateProfile applies changes in a single statement and returns the updated row.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)
		  - changes: ProfileChanges (must not be empty)

		Returns:
		  - *auth.User: The updated account
		  - error: auth.ErrUserNotFound or storage failures
	*/
	UpdateProfile(context context.Context, id string, changes ProfileChanges) (*auth.User, error)
}
