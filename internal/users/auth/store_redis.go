// Copyright (c) 2026 Code2Lead. All rights reserved.

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/constants"
)

// # Failed Login Tracking

// RedisAttemptTracker implements [AttemptTracker] with two keys per account:
//
//   - auth:login_attempts:<id> counts failures and expires after the lock window.
//   - auth:login_lock:<id> exists while the account is locked.
type RedisAttemptTracker struct {
	client       redis.Cmdable
	maxAttempts  int64
	lockDuration time.Duration
}

// NewRedisAttemptTracker creates a tracker that locks an account for lockDuration
// once maxAttempts failures accumulate within the same window.
func NewRedisAttemptTracker(client redis.Cmdable, maxAttempts int, lockDuration time.Duration) *RedisAttemptTracker {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &RedisAttemptTracker{
		client:       client,
		maxAttempts:  int64(maxAttempts),
		lockDuration: lockDuration,
	}
}

/*
IsLocked reports whether the lock key for the account exists.

Parameters:
  - context: context.Context
  - key: string (user ID)

Returns:
  - bool: true while the lock has not expired
  - error: Redis connectivity failures
*/
func (tracker *RedisAttemptTracker) IsLocked(context context.Context, key string) (bool, error) {
	count, err := tracker.client.Exists(context, constants.RedisPrefixLoginLock+key).Result()
	if err != nil {
		return false, fmt.Errorf("redis_attempt_tracker_is_locked_failed: %w", err)
	}
	return count > 0, nil
}

/*
RecordFailure increments the failure counter and places the lock once the
limit is reached. The counter is cleared when the lock is placed so that the
next window starts from zero after the lock expires.

Parameters:
  - context: context.Context
  - key: string (user ID)

Returns:
  - bool: true if this failure locked the account
  - error: Redis connectivity failures
*/
func (tracker *RedisAttemptTracker) RecordFailure(context context.Context, key string) (bool, error) {
	attemptsKey := constants.RedisPrefixLoginAttempts + key

	pipeline := tracker.client.TxPipeline()
	increment := pipeline.Incr(context, attemptsKey)
	pipeline.ExpireNX(context, attemptsKey, tracker.lockDuration)
	if _, err := pipeline.Exec(context); err != nil {
		return false, fmt.Errorf("redis_attempt_tracker_record_failed: %w", err)
	}

	if increment.Val() < tracker.maxAttempts {
		return false, nil
	}

	pipeline = tracker.client.TxPipeline()
	pipeline.Set(context, constants.RedisPrefixLoginLock+key, increment.Val(), tracker.lockDuration)
	pipeline.Del(context, attemptsKey)
	if _, err := pipeline.Exec(context); err != nil {
		return false, fmt.Errorf("redis_attempt_tracker_lock_failed: %w", err)
	}

	return true, nil
}

// Reset deletes the failure counter for the account.
func (tracker *RedisAttemptTracker) Reset(context context.Context, key string) error {
	err := tracker.client.Del(context, constants.RedisPrefixLoginAttempts+key).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("redis_attempt_tracker_reset_failed: %w", err)
	}
	return nil
}
