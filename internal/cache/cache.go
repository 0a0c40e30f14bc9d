// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

package cache

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/felixamado/cageography/internal/metrics"
)

// metricsLabel identifies this cache in the Prometheus cache_* metrics.
const metricsLabel = "analytics"

// cleanupInterval is how often the background sweep removes expired entries.
const cleanupInterval = 5 * time.Minute

// Entry is a cached value with its expiration time.
type Entry struct {
	Data      interface{}
	ExpiresAt time.Time
}

// Stats is a point-in-time snapshot of cache counters.
type Stats struct {
	Hits        int64
	Misses      int64
	Evictions   int64
	TotalKeys   int64
	LastCleanup time.Time
}

// Cache is a thread-safe in-memory TTL cache sitting in front of the
// analytics queries. The dataset only changes on reload, so a short TTL
// plus an explicit Clear on reload keeps responses fresh.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Entry
	ttl     time.Duration
	stats   Stats
	stop    chan struct{}
}

// New creates a cache with the given default TTL and starts the background
// cleanup goroutine. Call Close to stop it.
func New(ttl time.Duration) *Cache {
	c := &Cache{
		entries: make(map[string]Entry),
		ttl:     ttl,
		stats:   Stats{LastCleanup: time.Now()},
		stop:    make(chan struct{}),
	}
	go c.cleanupLoop()
	return c
}

// Get returns the cached value for key if present and unexpired.
// Expired entries are removed on access and counted as misses.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		c.recordMiss()
		return nil, false
	}

	if time.Now().After(entry.ExpiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.stats.Evictions++
		c.mu.Unlock()
		c.recordMiss()
		return nil, false
	}

	c.recordHit()
	return entry.Data, true
}

// Set stores a value with the default TTL.
func (c *Cache) Set(key string, value interface{}) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores a value with a custom TTL.
func (c *Cache) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = Entry{
		Data:      value,
		ExpiresAt: time.Now().Add(ttl),
	}
	size := int64(len(c.entries))
	c.stats.TotalKeys = size
	c.mu.Unlock()

	metrics.CacheSize.WithLabelValues(metricsLabel).Set(float64(size))
}

// Delete removes a single entry. Safe to call for absent keys.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.stats.Evictions++
	c.stats.TotalKeys = int64(len(c.entries))
	c.mu.Unlock()

	metrics.CacheEvictions.WithLabelValues(metricsLabel).Inc()
}

// Clear drops every entry. Called after a dataset reload so clients never
// see pre-reload aggregates.
func (c *Cache) Clear() {
	c.mu.Lock()
	evicted := int64(len(c.entries))
	c.entries = make(map[string]Entry)
	c.stats.Evictions += evicted
	c.stats.TotalKeys = 0
	c.mu.Unlock()

	metrics.CacheEvictions.WithLabelValues(metricsLabel).Add(float64(evicted))
	metrics.CacheSize.WithLabelValues(metricsLabel).Set(0)
}

// GetStats returns a copy of the current counters.
func (c *Cache) GetStats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

// HitRate returns the hit percentage since startup.
func (c *Cache) HitRate() float64 {
	stats := c.GetStats()
	total := stats.Hits + stats.Misses
	if total == 0 {
		return 0.0
	}
	return float64(stats.Hits) / float64(total) * 100.0
}

// Close stops the background cleanup goroutine.
func (c *Cache) Close() {
	close(c.stop)
}

func (c *Cache) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stop:
			return
		}
	}
}

func (c *Cache) cleanup() {
	now := time.Now()
	c.mu.Lock()
	evicted := int64(0)
	for key, entry := range c.entries {
		if now.After(entry.ExpiresAt) {
			delete(c.entries, key)
			evicted++
		}
	}
	size := int64(len(c.entries))
	c.stats.Evictions += evicted
	c.stats.TotalKeys = size
	c.stats.LastCleanup = now
	c.mu.Unlock()

	if evicted > 0 {
		metrics.CacheEvictions.WithLabelValues(metricsLabel).Add(float64(evicted))
	}
	metrics.CacheSize.WithLabelValues(metricsLabel).Set(float64(size))
}

func (c *Cache) recordHit() {
	c.mu.Lock()
	c.stats.Hits++
	c.mu.Unlock()
	metrics.RecordCacheHit(metricsLabel)
}

func (c *Cache) recordMiss() {
	c.mu.Lock()
	c.stats.Misses++
	c.mu.Unlock()
	metrics.RecordCacheMiss(metricsLabel)
}

// GenerateKey builds a cache key from a method name and its parameters by
// hashing the JSON-encoded parameters.
func GenerateKey(method string, params interface{}) string {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Sprintf("%s:%v", method, params)
	}
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", method, hash[:16])
}
