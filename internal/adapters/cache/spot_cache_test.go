package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSpotCache_SetAndGet(t *testing.T) {
	c, err := NewSpotCache(64)
	require.NoError(t, err)
	defer c.Close()

	c.Set("usdt-krw", 1391.5, time.Minute)
	c.cache.Wait()

	got, ok := c.Get("usdt-krw")
	require.True(t, ok)
	require.Equal(t, 1391.5, got)
}

func TestSpotCache_GetMissWhenEmpty(t *testing.T) {
	c, err := NewSpotCache(64)
	require.NoError(t, err)
	defer c.Close()

	got, ok := c.Get("naver-usd-krw")
	require.False(t, ok)
	require.Equal(t, 0.0, got)
}

func TestSpotCache_EntryExpiresAfterTTL(t *testing.T) {
	c, err := NewSpotCache(64)
	require.NoError(t, err)
	defer c.Close()

	c.Set("usdt-krw", 1391.5, 20*time.Millisecond)
	c.cache.Wait()

	_, ok := c.Get("usdt-krw")
	require.True(t, ok)

	time.Sleep(50 * time.Millisecond)
	_, ok = c.Get("usdt-krw")
	require.False(t, ok)
}

func TestSpotCache_KeysAreIndependent(t *testing.T) {
	c, err := NewSpotCache(64)
	require.NoError(t, err)
	defer c.Close()

	c.Set("usdt-krw", 1391.5, time.Minute)
	c.Set("investing-jpy-krw", 9.42, time.Minute)
	c.cache.Wait()

	got, ok := c.Get("investing-jpy-krw")
	require.True(t, ok)
	require.Equal(t, 9.42, got)
}
