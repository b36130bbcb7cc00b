// Package lock serializes commands per account. Every purchase, draw or
// wallet mutation acquires the account's lock for the duration of its
// read-modify-write cycle, so no two operations ever interleave against the
// same account document.
package lock

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// ErrNotAcquired is returned when the lock could not be obtained in time.
var ErrNotAcquired = errors.New("lock not acquired")

// Manager hands out per-key locks. Acquire blocks until the lock is held or
// the context is done, and returns a release function.
type Manager interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// MemoryManager is an in-process Manager suitable for a single API instance
// and for tests.
type MemoryManager struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewMemoryManager creates an empty MemoryManager.
func NewMemoryManager() *MemoryManager {
	return &MemoryManager{locks: make(map[string]*sync.Mutex)}
}

// Acquire locks the mutex for the given key, creating it on first use.
func (m *MemoryManager) Acquire(_ context.Context, key string) (func(), error) {
	m.mu.Lock()
	l, ok := m.locks[key]
	if !ok {
		l = &sync.Mutex{}
		m.locks[key] = l
	}
	m.mu.Unlock()

	l.Lock()
	return l.Unlock, nil
}

// RedisManager implements Manager with Redis SET NX locks so multiple API
// instances can serialize on the same account.
type RedisManager struct {
	client     *redis.Client
	expiration time.Duration
	retryEvery time.Duration
	maxRetries int
}

// NewRedisManager creates a RedisManager with a 30s lock TTL.
func NewRedisManager(client *redis.Client) *RedisManager {
	return &RedisManager{
		client:     client,
		expiration: 30 * time.Second,
		retryEvery: 50 * time.Millisecond,
		maxRetries: 100,
	}
}

// unlockScript deletes the key only if it still holds our token, so an
// expired lock taken over by another instance is never released by us.
const unlockScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
else
	return 0
end
`

// Acquire takes the lock with SET NX, retrying until it succeeds or the
// context is cancelled.
func (m *RedisManager) Acquire(ctx context.Context, key string) (func(), error) {
	token, err := gonanoid.New()
	if err != nil {
		return nil, err
	}

	lockKey := "lock:account:" + key
	for i := 0; i < m.maxRetries; i++ {
		ok, err := m.client.SetNX(ctx, lockKey, token, m.expiration).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			release := func() {
				_, _ = m.client.Eval(context.Background(), unlockScript, []string{lockKey}, token).Result()
			}
			return release, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(m.retryEvery):
		}
	}
	return nil, ErrNotAcquired
}
