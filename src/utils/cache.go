package utils

import (
	"sync"
	"time"
)

// Cache holds a single immutable value with an expiration time.
type Cache[T any] struct {
	value   T
	set     bool
	expires time.Time
	mutex   sync.RWMutex
}

// NewCache initializes a new cache with an empty value.
func NewCache[T any]() *Cache[T] {
	return &Cache[T]{}
}

// Set stores a value that expires after duration.
func (c *Cache[T]) Set(value T, duration time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.value = value
	c.set = true
	c.expires = time.Now().Add(duration)
}

// Get returns the cached value, or false if nothing was set or it expired.
func (c *Cache[T]) Get() (T, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	if !c.set || time.Now().After(c.expires) {
		var zero T
		return zero, false
	}
	return c.value, true
}
