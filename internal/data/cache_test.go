package data

import (
	"testing"
	"time"
)

func TestCache_SetGet(t *testing.T) {
	c := NewCache(time.Minute)
	defer c.Close()

	bars := GenerateBars(100, 10)
	key := CacheKey("SPY", "1h")

	if _, ok := c.Get(key); ok {
		t.Fatal("expected miss on empty cache")
	}

	c.Set(key, bars)
	got, ok := c.Get(key)
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if len(got) != len(bars) {
		t.Errorf("got %d bars, want %d", len(got), len(bars))
	}
}

func TestCache_Expiry(t *testing.T) {
	c := NewCache(20 * time.Millisecond)
	defer c.Close()

	key := CacheKey("SPY", "1h")
	c.Set(key, GenerateBars(100, 5))

	if _, ok := c.Get(key); !ok {
		t.Fatal("expected hit before expiry")
	}

	time.Sleep(40 * time.Millisecond)
	if _, ok := c.Get(key); ok {
		t.Error("expected miss after TTL elapsed")
	}
}

func TestCache_Clear(t *testing.T) {
	c := NewCache(time.Minute)
	defer c.Close()

	c.Set(CacheKey("SPY", "1h"), GenerateBars(100, 5))
	c.Clear()
	if _, ok := c.Get(CacheKey("SPY", "1h")); ok {
		t.Error("expected miss after Clear")
	}
}

func TestCacheKey(t *testing.T) {
	a := CacheKey("SPY", "1h")
	b := CacheKey("SPY", "1h")
	if a != b {
		t.Error("same inputs must produce the same key")
	}

	if CacheKey("SPY", "1h") == CacheKey("SPY", "1d") {
		t.Error("different timeframes must produce different keys")
	}
	if CacheKey("SPY", "1h") == CacheKey("QQQ", "1h") {
		t.Error("different tickers must produce different keys")
	}
}
