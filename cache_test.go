package main

import (
	"fmt"
	"testing"
)

func stubArt(marker string) StyledArt {
	return StyledArt{Rows: []string{marker}, Scheme: ColorNone, Animation: AnimNone}
}

func TestCacheKeyNoCollisions(t *testing.T) {
	tests := []struct {
		name  string
		left  []string
		right []string
	}{
		{
			// The delimiter-in-text case: naive "a|b"+"|"+"c|d" would equal
			// "a"+"|"+"b|c|d".
			name:  "delimiter inside text",
			left:  []string{"a|b", "c|d", "none", "none"},
			right: []string{"a", "b|c|d", "none", "none"},
		},
		{
			name:  "boundary shifts between fields",
			left:  []string{"ab", "c", "none", "none"},
			right: []string{"a", "bc", "none", "none"},
		},
		{
			name:  "digits bleeding into length prefix",
			left:  []string{"1", "1a", "none", "none"},
			right: []string{"11", "a", "none", "none"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left := cacheKey(tt.left...)
			right := cacheKey(tt.right...)
			if left == right {
				t.Errorf("cacheKey(%v) == cacheKey(%v) = %q, want distinct keys",
					tt.left, tt.right, left)
			}
		})
	}
}

func TestCacheGetPut(t *testing.T) {
	cache := NewRenderCache(10)

	if _, ok := cache.Get("missing"); ok {
		t.Error("Get on empty cache reported a hit")
	}

	cache.Put("k", stubArt("v"))
	art, ok := cache.Get("k")
	if !ok {
		t.Fatal("Get after Put reported a miss")
	}
	if art.Rows[0] != "v" {
		t.Errorf("cached value = %q, want %q", art.Rows[0], "v")
	}
}

func TestCacheFIFOEviction(t *testing.T) {
	cache := NewRenderCache(3)

	for i := 1; i <= 3; i++ {
		cache.Put(fmt.Sprintf("k%d", i), stubArt(fmt.Sprintf("v%d", i)))
	}

	// Reading k1 must NOT protect it: eviction is by insertion, not access.
	if _, ok := cache.Get("k1"); !ok {
		t.Fatal("k1 missing before eviction")
	}

	cache.Put("k4", stubArt("v4"))

	if _, ok := cache.Get("k1"); ok {
		t.Error("k1 still cached, want first-inserted entry evicted")
	}
	for i := 2; i <= 4; i++ {
		if _, ok := cache.Get(fmt.Sprintf("k%d", i)); !ok {
			t.Errorf("k%d missing, only the oldest entry should be evicted", i)
		}
	}
	if cache.Len() != 3 {
		t.Errorf("Len() = %d, want 3", cache.Len())
	}
}

func TestCachePutExistingKey(t *testing.T) {
	cache := NewRenderCache(2)

	cache.Put("k", stubArt("old"))
	cache.Put("k", stubArt("new"))

	if cache.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (at most one entry per key)", cache.Len())
	}
	art, _ := cache.Get("k")
	if art.Rows[0] != "new" {
		t.Errorf("cached value = %q, want overwrite to %q", art.Rows[0], "new")
	}
}
