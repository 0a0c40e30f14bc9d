// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheSetGet(t *testing.T) {
	c := New(time.Minute)
	defer c.Close()

	c.Set("genres", []string{"Action", "Comedy"})

	val, ok := c.Get("genres")
	require.True(t, ok)
	assert.Equal(t, []string{"Action", "Comedy"}, val)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestCacheExpiry(t *testing.T) {
	c := New(time.Minute)
	defer c.Close()

	c.SetWithTTL("short", "value", 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get("short")
	assert.False(t, ok)

	stats := c.GetStats()
	assert.Equal(t, int64(1), stats.Evictions)
}

func TestCacheClear(t *testing.T) {
	c := New(time.Minute)
	defer c.Close()

	c.Set("a", 1)
	c.Set("b", 2)
	c.Clear()

	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, int64(0), c.GetStats().TotalKeys)
}

func TestCacheDelete(t *testing.T) {
	c := New(time.Minute)
	defer c.Close()

	c.Set("a", 1)
	c.Delete("a")

	_, ok := c.Get("a")
	assert.False(t, ok)

	// Deleting an absent key is a no-op.
	c.Delete("never-set")
}

func TestCacheStats(t *testing.T) {
	c := New(time.Minute)
	defer c.Close()

	c.Set("k", "v")
	c.Get("k")    // hit
	c.Get("miss") // miss

	stats := c.GetStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.InDelta(t, 50.0, c.HitRate(), 0.01)
}

func TestGenerateKey(t *testing.T) {
	type params struct {
		Limit  int
		Offset int
	}

	k1 := GenerateKey("top-rated", params{Limit: 10})
	k2 := GenerateKey("top-rated", params{Limit: 10})
	k3 := GenerateKey("top-rated", params{Limit: 25})

	assert.Equal(t, k1, k2, "same params produce the same key")
	assert.NotEqual(t, k1, k3, "different params produce different keys")
	assert.Contains(t, k1, "top-rated:")
}
