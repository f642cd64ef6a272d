// Package status holds named runtime counters reported in debug logs
package status

import (
	"iter"
	"log"
	"sort"
	"sync"
	"sync/atomic"
)

// Registry is a set of named counters
// Registration takes the mutex; callers cache the returned pointer and update it lock-free
type Registry struct {
	mu    sync.RWMutex
	items map[string]*atomic.Int64
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{items: make(map[string]*atomic.Int64)}
}

// Counter returns the counter for key, creating it at zero if absent
func (r *Registry) Counter(key string) *atomic.Int64 {
	r.mu.RLock()
	if c, ok := r.items[key]; ok {
		r.mu.RUnlock()
		return c
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check after acquiring write lock
	if c, ok := r.items[key]; ok {
		return c
	}
	c := new(atomic.Int64)
	r.items[key] = c
	return c
}

// Has reports whether key was registered
func (r *Registry) Has(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.items[key]
	return ok
}

// Count returns the number of registered counters
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// All yields counters in sorted key order with their current values
func (r *Registry) All() iter.Seq2[string, int64] {
	return func(yield func(string, int64) bool) {
		r.mu.RLock()
		keys := make([]string, 0, len(r.items))
		for k := range r.items {
			keys = append(keys, k)
		}
		r.mu.RUnlock()
		sort.Strings(keys)

		for _, k := range keys {
			if !yield(k, r.Counter(k).Load()) {
				return
			}
		}
	}
}

// Report logs every counter as key=value
func (r *Registry) Report(logger *log.Logger) {
	for k, v := range r.All() {
		logger.Printf("status: %s=%d", k, v)
	}
}
