package engine

import (
	"reflect"
	"sync"
)

// ResourceStore is a thread-safe container for process-wide resources
// It allows systems to access shared data (registry, config) without
// coupling to whoever created it
type ResourceStore struct {
	mu        sync.RWMutex
	resources map[reflect.Type]any
}

// NewResourceStore creates a new empty resource store
func NewResourceStore() *ResourceStore {
	return &ResourceStore{
		resources: make(map[reflect.Type]any),
	}
}

// AddResource registers or replaces a resource keyed by its dynamic type
// Pointer types are recommended so every reader shares one instance
func AddResource[T any](rs *ResourceStore, resource T) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.resources[reflect.TypeOf(resource)] = resource
}

// GetResource retrieves a resource of type T from the store
// Returns the zero value of T and false if not found
func GetResource[T any](rs *ResourceStore) (T, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	// TypeOf a nil interface is nil, so resolve T through a pointer
	t := reflect.TypeOf((*T)(nil)).Elem()

	val, ok := rs.resources[t]
	if !ok {
		var target T
		return target, false
	}
	return val.(T), true
}

// MustGetResource retrieves a resource or panics if missing
// For resources whose absence means startup ran out of order
func MustGetResource[T any](rs *ResourceStore) T {
	res, ok := GetResource[T](rs)
	if !ok {
		panic("required resource not found: " + reflect.TypeOf((*T)(nil)).Elem().String())
	}
	return res
}

// RemoveResource drops a resource of type T, no-op if absent
func RemoveResource[T any](rs *ResourceStore) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	delete(rs.resources, reflect.TypeOf((*T)(nil)).Elem())
}
