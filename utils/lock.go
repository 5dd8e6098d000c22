// File: utils/lock.go
package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const tutorLockPrefix = "lock:tutor:"

// ErrLockTimeout is returned when a lock could not be taken before the wait deadline.
var ErrLockTimeout = errors.New("timed out waiting for scheduling lock")

// releaseScript deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// RedisTutorLocker serializes scheduling writes per tutor across every API instance.
type RedisTutorLocker struct {
	Client *redis.Client
	TTL    time.Duration
	Wait   time.Duration
	Retry  time.Duration
}

func NewRedisTutorLocker(client *redis.Client, ttl, wait time.Duration) *RedisTutorLocker {
	return &RedisTutorLocker{Client: client, TTL: ttl, Wait: wait, Retry: 50 * time.Millisecond}
}

// TutorLockKey returns the Redis key guarding a tutor's schedule.
func TutorLockKey(tutorID string) string {
	return tutorLockPrefix + tutorID
}

// Lock blocks until the tutor's lock is held, the wait deadline passes or ctx is done.
// The returned func releases the lock and is safe to call once.
func (l *RedisTutorLocker) Lock(ctx context.Context, tutorID string) (func(), error) {
	key := TutorLockKey(tutorID)
	token := uuid.New().String()
	deadline := time.Now().Add(l.Wait)

	for {
		ok, err := l.Client.SetNX(ctx, key, token, l.TTL).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire lock %s: %w", key, err)
		}
		if ok {
			return func() { l.release(key, token) }, nil
		}
		if time.Now().After(deadline) {
			return nil, ErrLockTimeout
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(l.Retry):
		}
	}
}

func (l *RedisTutorLocker) release(key, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := releaseScript.Run(ctx, l.Client, []string{key}, token).Err(); err != nil && err != redis.Nil {
		GetLogger().Warn("failed to release scheduling lock", zap.String("key", key), zap.Error(err))
	}
}
