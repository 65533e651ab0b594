package runlock

import "sync"

// Registry hands out named try-locks. A sync pass acquires the lock for its
// content type before touching the store, so a manual trigger cannot overlap
// a scheduled run of the same type.
type Registry struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewRegistry creates an empty lock registry.
func NewRegistry() *Registry {
	return &Registry{held: make(map[string]struct{})}
}

// TryLock attempts to acquire the lock for key without blocking.
// It reports whether the lock was acquired.
func (r *Registry) TryLock(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, busy := r.held[key]; busy {
		return false
	}
	r.held[key] = struct{}{}
	return true
}

// Unlock releases the lock for key. Releasing a lock that is not held is a
// no-op.
func (r *Registry) Unlock(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.held, key)
}
