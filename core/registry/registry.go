package registry

import (
	"sync"
)

// Registry backs the extension points (cmd, cron, api, graphql) with a
// lockable key-value store. Each key can be sealed once startup wiring is
// done, after which writes panic: registration is an init-time activity.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

type entry struct {
	value  interface{}
	sealed bool
}

// GlobalRegistry is the process-wide registry instance.
var GlobalRegistry = NewRegistry()

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*entry)}
}

// GetGlobal returns the value stored under key.
func (r *Registry) GetGlobal(key string) (interface{}, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[key]
	if !ok {
		return nil, false
	}
	return e.value, true
}

// SetGlobal stores a value under key. Panics if the key has been sealed.
func (r *Registry) SetGlobal(key string, value interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[key]
	if !ok {
		r.entries[key] = &entry{value: value}
		return
	}
	if e.sealed {
		panic("core/registry: write to locked key " + key)
	}
	e.value = value
}

// Lock seals a key against further writes.
func (r *Registry) Lock(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[key]; ok {
		e.sealed = true
		return
	}
	r.entries[key] = &entry{sealed: true}
}

// IsLocked reports whether a key has been sealed.
func (r *Registry) IsLocked(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[key]
	return ok && e.sealed
}

// UnlockForTesting reopens a sealed key. Tests only.
func (r *Registry) UnlockForTesting(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[key]; ok {
		e.sealed = false
	}
}
