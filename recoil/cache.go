// recoil/cache.go
// Copyright(c) 2022-2025 weaponlab contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package recoil

import (
	"time"

	"github.com/brunoga/deep"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/r5v/weaponlab/kv"
	"github.com/r5v/weaponlab/log"
)

// CacheKey identifies a simulation: every input that affects its result.
type CacheKey struct {
	Params   Params
	Pattern  string
	Mode     ViewMode
	Airborne bool
	Variants int
}

func makeCacheKey(p Params, pattern string, mode ViewMode, airborne bool, variants int) CacheKey {
	return CacheKey{
		Params:   p,
		Pattern:  pattern,
		Mode:     mode.canonical(),
		Airborne: airborne,
		Variants: ClampVariants(variants),
	}
}

type CacheEntry struct {
	Key    CacheKey
	Result Result
}

// Cache memoizes simulation results. Results returned from it are
// copies and may be modified freely. It is safe for concurrent use.
type Cache struct {
	lib *Library
	lru *expirable.LRU[CacheKey, Result]
	lg  *log.Logger
}

// NewCache returns a cache of up to size results from lib, each kept for
// at most ttl; a zero ttl keeps entries until they are evicted. lg may
// be nil.
func NewCache(lib *Library, size int, ttl time.Duration, lg *log.Logger) *Cache {
	return &Cache{
		lib: lib,
		lru: expirable.NewLRU[CacheKey, Result](size, nil, ttl),
		lg:  lg,
	}
}

func (c *Cache) Simulate(doc *kv.Document, pattern string, mode ViewMode, airborne bool, variants int) Result {
	return c.SimulateParams(ReadParams(doc), pattern, mode, airborne, variants)
}

func (c *Cache) SimulateParams(p Params, pattern string, mode ViewMode, airborne bool, variants int) Result {
	key := makeCacheKey(p, pattern, mode, airborne, variants)
	if r, ok := c.lru.Get(key); ok {
		c.lg.Debug("recoil cache hit", "pattern", pattern, "mode", key.Mode)
		return deep.MustCopy(r)
	}

	r := c.lib.SimulateParams(p, pattern, key.Mode, airborne, key.Variants)
	c.lru.Add(key, deep.MustCopy(r))
	c.lg.Debug("recoil cache miss", "pattern", pattern, "mode", key.Mode, "entries", c.lru.Len())
	return r
}

func (c *Cache) Len() int {
	return c.lru.Len()
}

func (c *Cache) Purge() {
	c.lru.Purge()
}

// Entries returns the cache contents, least recently used first.
func (c *Cache) Entries() []CacheEntry {
	var entries []CacheEntry
	for _, k := range c.lru.Keys() {
		if r, ok := c.lru.Peek(k); ok {
			entries = append(entries, CacheEntry{Key: k, Result: deep.MustCopy(r)})
		}
	}
	return entries
}

// Restore adds previously saved entries to the cache, in order.
func (c *Cache) Restore(entries []CacheEntry) {
	for _, e := range entries {
		c.lru.Add(e.Key, deep.MustCopy(e.Result))
	}
	c.lg.Debugf("restored %d recoil cache entries", len(entries))
}
