// Copyright (c) 2026 Code2Lead. All rights reserved.

package sec

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

// PasswordHasher hashes and verifies passwords with bcrypt.
//
// # Concurrency
//
// bcrypt is deliberately CPU-expensive. A weighted semaphore caps the number of
// hash/compare operations running at once so that a burst of logins cannot
// starve the rest of the server. Callers waiting for a slot give up as soon as
// their context ends.
type PasswordHasher struct {
	cost  int
	slots *semaphore.Weighted
}

// NewPasswordHasher creates a hasher with the given bcrypt cost and concurrency cap.
// Out-of-range costs fall back to [bcrypt.DefaultCost]; a non-positive cap becomes 1.
func NewPasswordHasher(cost, concurrency int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	if concurrency < 1 {
		concurrency = 1
	}
	return &PasswordHasher{
		cost:  cost,
		slots: semaphore.NewWeighted(int64(concurrency)),
	}
}

// Hash returns the salted bcrypt hash of plain.
func (hasher *PasswordHasher) Hash(context context.Context, plain string) (string, error) {
	if err := hasher.slots.Acquire(context, 1); err != nil {
		return "", fmt.Errorf("sec: hash slot unavailable: %w", err)
	}
	defer hasher.slots.Release(1)

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plain), hasher.cost)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// Verify reports whether plain matches hash.
//
// A mismatch, or a hash that is not bcrypt at all, yields false with a nil error.
// An error is only returned when the context ends before a slot frees up.
func (hasher *PasswordHasher) Verify(context context.Context, plain, hash string) (bool, error) {
	if err := hasher.slots.Acquire(context, 1); err != nil {
		return false, fmt.Errorf("sec: verify slot unavailable: %w", err)
	}
	defer hasher.slots.Release(1)

	// Mismatches and unparsable hashes both read as "wrong password"
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	return err == nil, nil
}
