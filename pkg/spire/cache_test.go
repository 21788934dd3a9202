package spire_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spirekit/spire-client/pkg/spire"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	t.Parallel()

	cache := spire.NewMemoryCache(10)
	ctx := context.Background()

	entry := &spire.CacheEntry{
		Data:      []byte(`{"id": 1}`),
		ExpiresAt: time.Now().Add(time.Minute),
		ETag:      `"abc"`,
	}

	require.NoError(t, cache.Set(ctx, "spire:customers:1", entry))

	got, err := cache.Get(ctx, "spire:customers:1")
	require.NoError(t, err)
	assert.Equal(t, entry.Data, got.Data)
	assert.Equal(t, `"abc"`, got.ETag)
}

func TestMemoryCache_Miss(t *testing.T) {
	t.Parallel()

	cache := spire.NewMemoryCache(10)

	_, err := cache.Get(context.Background(), "nope")
	require.ErrorIs(t, err, spire.ErrCacheMiss)
}

func TestMemoryCache_Expiry(t *testing.T) {
	t.Parallel()

	cache := spire.NewMemoryCache(10)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", &spire.CacheEntry{
		Data:      []byte("v"),
		ExpiresAt: time.Now().Add(-time.Second),
	}))

	_, err := cache.Get(ctx, "k")
	require.ErrorIs(t, err, spire.ErrCacheEntryExpired)

	// The expired entry is gone; a second read is a plain miss.
	_, err = cache.Get(ctx, "k")
	require.ErrorIs(t, err, spire.ErrCacheMiss)
}

func TestMemoryCache_ZeroExpiryNeverExpires(t *testing.T) {
	t.Parallel()

	cache := spire.NewMemoryCache(10)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", &spire.CacheEntry{Data: []byte("v")}))

	got, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got.Data)
}

func TestMemoryCache_EvictsWhenFull(t *testing.T) {
	t.Parallel()

	cache := spire.NewMemoryCache(2)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, cache.Set(ctx, fmt.Sprintf("key-%d", i), &spire.CacheEntry{
			Data: []byte("v"),
		}))
	}

	live := 0

	for i := 0; i < 3; i++ {
		if cache.Has(ctx, fmt.Sprintf("key-%d", i)) {
			live++
		}
	}

	assert.Equal(t, 2, live)
}

func TestMemoryCache_OverwriteDoesNotEvict(t *testing.T) {
	t.Parallel()

	cache := spire.NewMemoryCache(2)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "a", &spire.CacheEntry{Data: []byte("1")}))
	require.NoError(t, cache.Set(ctx, "b", &spire.CacheEntry{Data: []byte("2")}))
	require.NoError(t, cache.Set(ctx, "a", &spire.CacheEntry{Data: []byte("3")}))

	assert.True(t, cache.Has(ctx, "b"))

	got, err := cache.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("3"), got.Data)
}

func TestMemoryCache_DeleteAndClear(t *testing.T) {
	t.Parallel()

	cache := spire.NewMemoryCache(10)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "a", &spire.CacheEntry{Data: []byte("1")}))
	require.NoError(t, cache.Set(ctx, "b", &spire.CacheEntry{Data: []byte("2")}))

	require.NoError(t, cache.Delete(ctx, "a"))
	assert.False(t, cache.Has(ctx, "a"))
	assert.True(t, cache.Has(ctx, "b"))

	require.NoError(t, cache.Clear(ctx))
	assert.False(t, cache.Has(ctx, "b"))
}

func TestNoOpCache(t *testing.T) {
	t.Parallel()

	cache := spire.NewNoOpCache()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", &spire.CacheEntry{Data: []byte("v")}))

	_, err := cache.Get(ctx, "k")
	require.ErrorIs(t, err, spire.ErrCacheDisabled)
	assert.False(t, cache.Has(ctx, "k"))
	require.NoError(t, cache.Delete(ctx, "k"))
	require.NoError(t, cache.Clear(ctx))
}

func TestNewCacheFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("nil config defaults to memory", func(t *testing.T) {
		t.Parallel()

		cache, err := spire.NewCacheFromConfig(nil)
		require.NoError(t, err)
		assert.IsType(t, &spire.MemoryCache{}, cache)
	})

	t.Run("none", func(t *testing.T) {
		t.Parallel()

		cache, err := spire.NewCacheFromConfig(&spire.CacheConfig{Type: spire.CacheTypeNone})
		require.NoError(t, err)
		assert.IsType(t, &spire.NoOpCache{}, cache)
	})

	t.Run("nats without config", func(t *testing.T) {
		t.Parallel()

		_, err := spire.NewCacheFromConfig(&spire.CacheConfig{Type: spire.CacheTypeNATS})
		require.ErrorIs(t, err, spire.ErrNATSConfigRequired)
	})

	t.Run("unsupported type", func(t *testing.T) {
		t.Parallel()

		_, err := spire.NewCacheFromConfig(&spire.CacheConfig{Type: "redis"})
		require.ErrorIs(t, err, spire.ErrUnsupportedCacheType)
	})
}
