// Copyright (c) 2026 Code2Lead. All rights reserved.

package authtest

import (
	"context"

	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/users/account"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/users/auth"
)

// # Profiles

// ProfileStore adds profile writes to [UserStore] so it satisfies
// [account.ProfileRepository]. Updates counts the writes that reached storage.
type ProfileStore struct {
	*UserStore
	Updates int
}

// NewProfileStore wraps users, or a fresh [UserStore] when users is nil.
func NewProfileStore(users *UserStore) *ProfileStore {
	if users == nil {
		users = NewUserStore()
	}
	return &ProfileStore{UserStore: users}
}

// UpdateProfile applies every non-nil field of changes, as the COALESCE update does.
func (store *ProfileStore) UpdateProfile(_ context.Context, id string, changes account.ProfileChanges) (*auth.User, error) {
	store.Updates++
	return store.Mutate(id, func(user *auth.User) {
		if changes.Name != nil {
			user.Name = *changes.Name
		}
		if changes.Bio != nil {
			user.Bio = *changes.Bio
		}
		if changes.Avatar != nil {
			user.Avatar = *changes.Avatar
		}
		if changes.PublicProfile != nil {
			user.PublicProfile = *changes.PublicProfile
		}
		if changes.Social != nil {
			user.Social = *changes.Social
		}
		if changes.Studies != nil {
			user.Studies = changes.Studies
		}
	})
}
