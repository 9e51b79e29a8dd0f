// ============================================================================
// Polytope - Problem description language toolkit
// ============================================================================
//
// Package:     cache
// Description: Parsed program cache keyed by a digest of the source text
// Author:      msto63
// Created:     2025-10-18
// License:     MIT
// ============================================================================

package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru"

	"github.com/msto63/polytope/foundation/polytope/ast"
)

// Entry represents a cached program with expiration
type Entry struct {
	Program    *ast.Program
	Expiration time.Time
}

// IsExpired checks if the entry has expired at now
func (e *Entry) IsExpired(now time.Time) bool {
	if e.Expiration.IsZero() {
		return false // Never expires
	}
	return now.After(e.Expiration)
}

// Cache is a thread-safe program cache with adaptive replacement and
// optional TTL. It satisfies polytope.ProgramCache.
type Cache struct {
	items *lru.ARCCache
	ttl   time.Duration
	now   func() time.Time

	// Metrics
	mu     sync.Mutex
	hits   int64
	misses int64
}

// Config holds cache configuration
type Config struct {
	MaxItems int
	TTL      time.Duration // 0 keeps entries until evicted
}

// DefaultConfig returns default cache configuration
func DefaultConfig() Config {
	return Config{
		MaxItems: 256,
		TTL:      10 * time.Minute,
	}
}

// New creates a new cache instance
func New(cfg Config) (*Cache, error) {
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = DefaultConfig().MaxItems
	}
	items, err := lru.NewARC(cfg.MaxItems)
	if err != nil {
		return nil, err
	}
	return &Cache{
		items: items,
		ttl:   cfg.TTL,
		now:   time.Now,
	}, nil
}

// Key returns the digest a source is stored under
func Key(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}

// Get retrieves the program parsed from source
func (c *Cache) Get(source string) (*ast.Program, bool) {
	key := Key(source)
	value, ok := c.items.Get(key)
	if ok {
		entry := value.(*Entry)
		if !entry.IsExpired(c.now()) {
			c.record(true)
			return entry.Program, true
		}
		c.items.Remove(key)
	}
	c.record(false)
	return nil, false
}

// Add stores the program parsed from source with the configured TTL
func (c *Cache) Add(source string, prog *ast.Program) {
	entry := &Entry{Program: prog}
	if c.ttl > 0 {
		entry.Expiration = c.now().Add(c.ttl)
	}
	c.items.Add(Key(source), entry)
}

// Len returns the number of cached programs, expired ones included
func (c *Cache) Len() int {
	return c.items.Len()
}

// Purge removes all entries
func (c *Cache) Purge() {
	c.items.Purge()
}

// Stats returns cache statistics
func (c *Cache) Stats() (hits, misses int64, hitRate float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	hits = c.hits
	misses = c.misses
	total := hits + misses
	if total > 0 {
		hitRate = float64(hits) / float64(total) * 100
	}
	return
}

func (c *Cache) record(hit bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if hit {
		c.hits++
	} else {
		c.misses++
	}
}
