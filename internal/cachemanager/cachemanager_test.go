package cachemanager

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInMemory_GetSet(t *testing.T) {
	c := NewInMemory[int](DefaultExpiration, DefaultCleanupInterval)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("answer", 42, time.Minute)

	got, ok := c.Get("answer")
	assert.True(t, ok)
	assert.Equal(t, 42, got)
}

func TestInMemory_Flush(t *testing.T) {
	c := NewInMemory[string](DefaultExpiration, DefaultCleanupInterval)
	c.Set("k", "v", time.Minute)

	c.Flush()

	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestMemoize(t *testing.T) {
	c := NewInMemory[int](DefaultExpiration, DefaultCleanupInterval)
	calls := 0
	compute := func() int {
		calls++
		return 7
	}

	assert.Equal(t, 7, Memoize[int](c, "k", time.Minute, compute))
	assert.Equal(t, 7, Memoize[int](c, "k", time.Minute, compute))
	assert.Equal(t, 1, calls, "second call should hit the cache")
}
