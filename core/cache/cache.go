package cache

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"meditrack/core/logger"
)

// Standard TTL tiers so call sites express intent instead of durations.
const (
	TTLShort  = 1 * time.Minute  // volatile data: activity logs
	TTLMedium = 5 * time.Minute  // occasionally changing lists: inventory, users
	TTLLong   = 30 * time.Minute // near-static reference data
)

type entry struct {
	value     any
	expiresAt time.Time
}

// Cache is an in-process TTL cache keyed by (namespace, operation, params).
// Values are immutable once stored; a duplicate concurrent miss may compute
// twice, which is acceptable for read-only producers.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	logger  logger.Logger
}

// New creates an empty cache
func New(log logger.Logger) *Cache {
	return &Cache{
		entries: make(map[string]entry),
		logger:  log,
	}
}

// Key builds the canonical cache key for a namespace/operation/params triple.
// Params are serialized as JSON; map keys serialize in sorted order, so two
// logically equal parameter sets always produce the same key.
func Key(namespace, operation string, params any) string {
	encoded, err := json.Marshal(params)
	if err != nil {
		encoded = []byte(fmt.Sprintf("%v", params))
	}
	return namespace + ":" + operation + ":" + string(encoded)
}

// Do returns the cached value for the triple if a live entry exists,
// otherwise invokes produce, stores the result for ttl, and returns it.
// A produce error propagates and nothing is cached.
func Do[T any](c *Cache, namespace, operation string, params any, ttl time.Duration, produce func() (T, error)) (T, error) {
	key := Key(namespace, operation, params)

	if value, ok := c.get(key); ok {
		if typed, ok := value.(T); ok {
			return typed, nil
		}
		// A type mismatch means two call sites share a key; treat as a miss.
		c.logger.Warn("cache entry type mismatch", logger.String("key", key))
	}

	value, err := produce()
	if err != nil {
		var zero T
		return zero, err
	}

	c.set(key, value, ttl)
	return value, nil
}

func (c *Cache) get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

func (c *Cache) set(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, expiresAt: time.Now().Add(ttl)}
}

// ClearByPattern removes every entry whose key starts with the given prefix
func (c *Cache) ClearByPattern(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}

// Flush removes all entries
func (c *Cache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// Sweep removes expired entries and returns how many were removed.
// Expiry is otherwise lazy; the scheduler calls this to bound memory.
func (c *Cache) Sweep() int {
	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of entries currently stored, expired or not
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
