package concurrency

import (
	"sort"
	"sync"
)

// LockManager hands out named locks. Settlement uses one lock per user so
// balance and streak mutations for the same user never interleave while
// different users proceed in parallel.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns a mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// WithLock runs fn while holding the lock for key.
func (lm *LockManager) WithLock(key string, fn func() error) error {
	mu := lm.GetLock(key)
	mu.Lock()
	defer mu.Unlock()
	return fn()
}

// WithLocks runs fn while holding the locks for all keys. Keys are acquired
// in sorted order so two transfers between the same pair of users cannot
// deadlock.
func (lm *LockManager) WithLocks(keys []string, fn func() error) error {
	sorted := make([]string, len(keys))
	copy(sorted, keys)
	sort.Strings(sorted)

	acquired := make([]*sync.Mutex, 0, len(sorted))
	for i, key := range sorted {
		if i > 0 && key == sorted[i-1] {
			continue // duplicate key, already held
		}
		mu := lm.GetLock(key)
		mu.Lock()
		acquired = append(acquired, mu)
	}
	defer func() {
		for i := len(acquired) - 1; i >= 0; i-- {
			acquired[i].Unlock()
		}
	}()
	return fn()
}
