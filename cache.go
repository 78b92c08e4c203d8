package main

import (
	"strconv"
	"strings"
	"sync"
)

// RenderCache memoizes styled output per normalized request key. Eviction is
// strict FIFO by insertion: when full, the entry with the smallest insertion
// sequence number goes first. Access order never matters.
//
// A single mutex guards lookups and inserts so the at-most-one-entry-per-key
// invariant holds when identical requests race.
type RenderCache struct {
	mu       sync.Mutex
	capacity int
	seq      uint64
	entries  map[string]*cacheEntry
}

type cacheEntry struct {
	art StyledArt
	seq uint64 // monotonic insertion counter, not a timestamp
}

// NewRenderCache returns a cache bounded to capacity entries.
func NewRenderCache(capacity int) *RenderCache {
	if capacity < 1 {
		capacity = 1
	}
	return &RenderCache{
		capacity: capacity,
		entries:  make(map[string]*cacheEntry, capacity),
	}
}

// Get returns the cached art for key, if present.
func (c *RenderCache) Get(key string) (StyledArt, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok {
		return StyledArt{}, false
	}
	return entry.art, true
}

// Put stores art under key. An existing key is overwritten in place (keeping
// its insertion slot); a new key evicts the oldest-inserted entry first when
// the cache is full.
func (c *RenderCache) Put(key string, art StyledArt) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[key]; ok {
		entry.art = art
		return
	}

	if len(c.entries) >= c.capacity {
		c.evictOldestLocked()
	}

	c.seq++
	c.entries[key] = &cacheEntry{art: art, seq: c.seq}
}

// evictOldestLocked removes the entry with the smallest insertion sequence.
// Linear scan; capacities are small (default 50).
func (c *RenderCache) evictOldestLocked() {
	var oldestKey string
	var oldestSeq uint64
	first := true
	for key, entry := range c.entries {
		if first || entry.seq < oldestSeq {
			oldestKey = key
			oldestSeq = entry.seq
			first = false
		}
	}
	if !first {
		delete(c.entries, oldestKey)
	}
}

// Len returns the current entry count.
func (c *RenderCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Capacity returns the configured bound.
func (c *RenderCache) Capacity() int {
	return c.capacity
}

// cacheKey builds an unambiguous composite key by length-prefixing every
// field. Unlike naive delimiter joins, a delimiter character inside the text
// cannot collide with field boundaries: ("a|b","c") and ("a","b|c") encode
// differently.
func cacheKey(parts ...string) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(strconv.Itoa(len(p)))
		b.WriteByte(':')
		b.WriteString(p)
	}
	return b.String()
}

// normalizeText trims surrounding whitespace and, when the fold rule is
// case-insensitive, lowercases the text. The dispatcher keys the cache on the
// normalized text AND composes from it, so one key always maps to one output.
func normalizeText(text, caseFolding string) string {
	text = strings.TrimSpace(text)
	if caseFolding == FoldUpper {
		text = strings.ToLower(text)
	}
	return text
}
