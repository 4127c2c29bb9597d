// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cache

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/H0llyW00dzZ/certificate-info/src/certinfo"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// Fetcher obtains the record of a hostname's certificate.
type Fetcher interface {
	Fetch(ctx context.Context, hostname string) (certinfo.Record, error)
}

// Entry is a cached record with its insertion time.
type Entry struct {
	Record     certinfo.Record
	InsertedAt time.Time
}

// Config holds configuration for the cache.
type Config struct {
	MaxEntries int           // Maximum number of hostnames (0 = unlimited)
	TTL        time.Duration // Entry lifetime (0 = process lifetime)
}

// Cache is a single-flight, success-only record cache.
//
// Thread Safety: Safe for concurrent use.
type Cache struct {
	fetcher Fetcher
	config  Config
	entries *expirable.LRU[string, Entry]
	group   singleflight.Group
	now     func() time.Time

	hits     atomic.Int64
	misses   atomic.Int64
	fetches  atomic.Int64
	failures atomic.Int64
	shared   atomic.Int64
}

// New creates a cache in front of fetcher.
func New(fetcher Fetcher, config Config) *Cache {
	if config.MaxEntries < 0 {
		config.MaxEntries = 0
	}
	if config.TTL < 0 {
		config.TTL = 0
	}

	return &Cache{
		fetcher: fetcher,
		config:  config,
		entries: expirable.NewLRU[string, Entry](config.MaxEntries, nil, config.TTL),
		now:     time.Now,
	}
}

// GetOrFetch returns the record for hostname, fetching it on a miss.
//
// hostname is normalized with [certinfo.NormalizeHostname] first. The
// returned record is classified and owned by the caller. Cancelling ctx
// releases this caller but does not abort a fetch other callers are waiting
// on; the fetch is bounded by the fetcher's own timeout.
func (c *Cache) GetOrFetch(ctx context.Context, hostname string) (certinfo.Record, error) {
	key, err := certinfo.NormalizeHostname(hostname)
	if err != nil {
		return certinfo.Record{}, err
	}

	if entry, ok := c.entries.Get(key); ok {
		c.hits.Add(1)
		cacheLookups.WithLabelValues("hit").Inc()
		return entry.Record.Clone(), nil
	}
	c.misses.Add(1)
	cacheLookups.WithLabelValues("miss").Inc()

	fetchCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		// A flight that finished between our miss and this call already stored it.
		if entry, ok := c.entries.Get(key); ok {
			return entry.Record, nil
		}
		return c.fetch(fetchCtx, key)
	})

	select {
	case res := <-ch:
		if res.Shared {
			c.shared.Add(1)
		}
		if res.Err != nil {
			return certinfo.Record{}, res.Err
		}
		return res.Val.(certinfo.Record).Clone(), nil
	case <-ctx.Done():
		return certinfo.Record{}, ctx.Err()
	}
}

// fetch performs the underlying fetch and stores successes.
func (c *Cache) fetch(ctx context.Context, key string) (certinfo.Record, error) {
	c.fetches.Add(1)
	start := c.now()

	rec, err := c.fetcher.Fetch(ctx, key)
	fetchDuration.Observe(c.now().Sub(start).Seconds())
	if err != nil {
		c.failures.Add(1)
		fetchOutcomes.WithLabelValues(outcomeLabel(err)).Inc()
		return certinfo.Record{}, err
	}

	rec = certinfo.Classify(rec)
	c.entries.Add(key, Entry{Record: rec, InsertedAt: c.now()})
	fetchOutcomes.WithLabelValues("success").Inc()
	cacheEntries.Set(float64(c.entries.Len()))
	return rec, nil
}

// Peek returns the cached entry for hostname without fetching.
func (c *Cache) Peek(hostname string) (Entry, bool) {
	key, err := certinfo.NormalizeHostname(hostname)
	if err != nil {
		return Entry{}, false
	}
	entry, ok := c.entries.Peek(key)
	entry.Record = entry.Record.Clone()
	return entry, ok
}

// Len returns the number of cached hostnames.
func (c *Cache) Len() int { return c.entries.Len() }

// Purge removes every entry. Counters are kept.
func (c *Cache) Purge() {
	c.entries.Purge()
	cacheEntries.Set(0)
}

// Metrics tracks cache performance and usage.
type Metrics struct {
	Size     int64 // Current number of cached hostnames
	Hits     int64 // Lookups answered from the cache
	Misses   int64 // Lookups that had to join or start a fetch
	Fetches  int64 // Underlying fetches performed
	Failures int64 // Underlying fetches that failed
	Shared   int64 // Callers that received another caller's fetch result
}

// Metrics returns a snapshot of the cache counters.
func (c *Cache) Metrics() Metrics {
	return Metrics{
		Size:     int64(c.entries.Len()),
		Hits:     c.hits.Load(),
		Misses:   c.misses.Load(),
		Fetches:  c.fetches.Load(),
		Failures: c.failures.Load(),
		Shared:   c.shared.Load(),
	}
}

// Stats returns a formatted string with cache statistics.
func (c *Cache) Stats() string {
	m := c.Metrics()

	hitRate := float64(0)
	if total := m.Hits + m.Misses; total > 0 {
		hitRate = float64(m.Hits) / float64(total) * 100
	}

	limit := "unlimited"
	if c.config.MaxEntries > 0 {
		limit = fmt.Sprintf("%d", c.config.MaxEntries)
	}
	ttl := "process lifetime"
	if c.config.TTL > 0 {
		ttl = c.config.TTL.String()
	}

	return fmt.Sprintf("Certificate Cache Statistics:\n"+
		"  Size: %d/%s entries\n"+
		"  Hit Rate: %.1f%% (%d hits, %d misses)\n"+
		"  Fetches: %d (%d failed, %d shared results)\n"+
		"  Entry Lifetime: %s",
		m.Size, limit,
		hitRate, m.Hits, m.Misses,
		m.Fetches, m.Failures, m.Shared,
		ttl)
}
