package datasource

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheSetGet(t *testing.T) {
	c := newCache(time.Minute)

	_, ok := c.get("key")
	assert.False(t, ok)

	c.set("key", Result{Content: "cached", OK: true})

	got, ok := c.get("key")
	require.True(t, ok)
	assert.Equal(t, "cached", got.Content)
	assert.True(t, got.OK)
}

func TestCacheExpiry(t *testing.T) {
	c := newCache(10 * time.Millisecond)
	c.set("key", Result{Content: "cached", OK: true})

	time.Sleep(25 * time.Millisecond)

	_, ok := c.get("key")
	assert.False(t, ok)
}

func TestCacheOverwrite(t *testing.T) {
	c := newCache(time.Minute)
	c.set("key", Result{Content: "old"})
	c.set("key", Result{Content: "new"})

	got, ok := c.get("key")
	require.True(t, ok)
	assert.Equal(t, "new", got.Content)
}
