// Copyright (c) 2026 Code2Lead. All rights reserved.

// Package authtest provides in-memory stand-ins for the auth and profile repositories,
// shared by the auth, account and api test suites.
package authtest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/users/auth"
)

// # Users

// UserStore is an in-memory [auth.UserRepository] that enforces the same unique
// constraints as the database (email first, then username).
type UserStore struct {
	mu    sync.Mutex
	users map[string]*auth.User
}

// NewUserStore returns an empty store.
func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]*auth.User)}
}

func clone(user *auth.User) *auth.User {
	copied := *user
	copied.Studies = append([]auth.Study(nil), user.Studies...)
	return &copied
}

// Create implements [auth.UserRepository].
func (store *UserStore) Create(_ context.Context, user *auth.User) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	for _, existing := range store.users {
		if existing.Email == user.Email {
			return auth.ErrEmailExists
		}
	}
	for _, existing := range store.users {
		if existing.Username == user.Username {
			return auth.ErrUsernameExists
		}
	}

	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	store.users[user.ID] = clone(user)
	return nil
}

// Put stores user as-is, bypassing uniqueness checks. Test setup only.
func (store *UserStore) Put(user *auth.User) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.users[user.ID] = clone(user)
}

// Get returns the stored copy of the account, or nil.
func (store *UserStore) Get(id string) *auth.User {
	store.mu.Lock()
	defer store.mu.Unlock()
	if user, ok := store.users[id]; ok {
		return clone(user)
	}
	return nil
}

// FindByID implements [auth.UserRepository].
func (store *UserStore) FindByID(_ context.Context, id string) (*auth.User, error) {
	return store.find(func(user *auth.User) bool { return user.ID == id })
}

// FindByEmail implements [auth.UserRepository].
func (store *UserStore) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	return store.find(func(user *auth.User) bool { return user.Email == email })
}

// FindByUsername implements [auth.UserRepository].
func (store *UserStore) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	return store.find(func(user *auth.User) bool { return user.Username == username })
}

func (store *UserStore) find(match func(*auth.User) bool) (*auth.User, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	for _, user := range store.users {
		if match(user) {
			return clone(user), nil
		}
	}
	return nil, auth.ErrUserNotFound
}

// SetActive implements [auth.UserRepository].
func (store *UserStore) SetActive(_ context.Context, id string, active bool) (*auth.User, error) {
	return store.Mutate(id, func(user *auth.User) { user.IsActive = active })
}

// Mutate applies change to the stored account and returns the updated copy.
func (store *UserStore) Mutate(id string, change func(*auth.User)) (*auth.User, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	user, ok := store.users[id]
	if !ok {
		return nil, auth.ErrUserNotFound
	}
	change(user)
	user.UpdatedAt = time.Now().UTC()
	return clone(user), nil
}

// TouchLastLogin implements [auth.UserRepository].
func (store *UserStore) TouchLastLogin(_ context.Context, id string, at time.Time) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	user, ok := store.users[id]
	if !ok {
		return auth.ErrUserNotFound
	}
	user.LastLogin = &at
	return nil
}

// List implements [auth.UserRepository].
func (store *UserStore) List(_ context.Context, filter auth.UserFilter) ([]*auth.User, int, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	matched := make([]*auth.User, 0, len(store.users))
	for _, user := range store.users {
		if filter.Role == "" || user.Role == filter.Role {
			matched = append(matched, clone(user))
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID > matched[j].ID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	params := filter.Params.Normalize()
	start := min(params.Offset(), len(matched))
	end := min(start+params.Limit, len(matched))
	return matched[start:end], len(matched), nil
}

// # Attempts

// AttemptTracker is an in-memory [auth.AttemptTracker] without expiry.
type AttemptTracker struct {
	mu          sync.Mutex
	MaxAttempts int
	failures    map[string]int
	locked      map[string]bool
}

// NewAttemptTracker returns a tracker that locks after maxAttempts failures.
func NewAttemptTracker(maxAttempts int) *AttemptTracker {
	return &AttemptTracker{
		MaxAttempts: maxAttempts,
		failures:    make(map[string]int),
		locked:      make(map[string]bool),
	}
}

// IsLocked implements [auth.AttemptTracker].
func (tracker *AttemptTracker) IsLocked(_ context.Context, key string) (bool, error) {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	return tracker.locked[key], nil
}

// RecordFailure implements [auth.AttemptTracker].
func (tracker *AttemptTracker) RecordFailure(_ context.Context, key string) (bool, error) {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	tracker.failures[key]++
	if tracker.failures[key] >= tracker.MaxAttempts {
		tracker.locked[key] = true
		delete(tracker.failures, key)
		return true, nil
	}
	return false, nil
}

// Reset implements [auth.AttemptTracker].
func (tracker *AttemptTracker) Reset(_ context.Context, key string) error {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	delete(tracker.failures, key)
	return nil
}

// Failures returns the current failure count for key.
func (tracker *AttemptTracker) Failures(key string) int {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	return tracker.failures[key]
}

// Unlock simulates the lock expiring.
func (tracker *AttemptTracker) Unlock(key string) {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	delete(tracker.locked, key)
}
