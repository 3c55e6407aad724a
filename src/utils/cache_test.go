package utils_test

import (
	"testing"
	"time"

	"portfolio-api/src/utils"
)

func TestCacheSetGet(t *testing.T) {
	cache := utils.NewCache[string]()

	if _, ok := cache.Get(); ok {
		t.Fatalf("expected an empty cache to miss")
	}

	cache.Set("value", time.Hour)
	value, ok := cache.Get()
	if !ok || value != "value" {
		t.Fatalf("expected a cache hit with %q; got %q, %v", "value", value, ok)
	}
}

func TestCacheExpiry(t *testing.T) {
	cache := utils.NewCache[int]()

	cache.Set(42, -time.Second)
	if _, ok := cache.Get(); ok {
		t.Fatalf("expected an expired entry to miss")
	}
}
