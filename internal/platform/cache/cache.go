package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/simplelru"
	"golang.org/x/sync/singleflight"

	"github.com/riskibarqy/fantasy-basketball/internal/platform/logging"
)

type RefreshPolicy string

const (
	// RefreshBlocking makes the reader of a stale entry wait for the refetch.
	RefreshBlocking RefreshPolicy = "blocking"
	// RefreshBackground serves the stale entry and refetches asynchronously.
	RefreshBackground RefreshPolicy = "background"
)

const (
	DefaultMaxEntries = 10000
	DefaultStaleAfter = 2 * time.Minute
)

func ParseRefreshPolicy(raw string) (RefreshPolicy, error) {
	switch policy := RefreshPolicy(strings.ToLower(strings.TrimSpace(raw))); policy {
	case "":
		return RefreshBlocking, nil
	case RefreshBlocking, RefreshBackground:
		return policy, nil
	default:
		return "", fmt.Errorf("invalid refresh policy %q", raw)
	}
}

type Config struct {
	MaxEntries int
	StaleAfter time.Duration
	Refresh    RefreshPolicy
	Now        func() time.Time
	Logger     *logging.Logger
}

type Stats struct {
	Hits          uint64
	Misses        uint64
	StaleHits     uint64
	Coalesced     uint64
	Loads         uint64
	LoadErrors    uint64
	Invalidations uint64
	Evictions     uint64
	Entries       int
}

type Loader func(ctx context.Context) (any, error)

type Option func(*fetchOptions)

type fetchOptions struct {
	staleAfter time.Duration
}

// StaleAfter overrides the freshness window for a single fetch.
func StaleAfter(d time.Duration) Option {
	return func(o *fetchOptions) {
		if d > 0 {
			o.staleAfter = d
		}
	}
}

type entry struct {
	value      any
	fetchedAt  time.Time
	staleAfter time.Duration
}

// ticket marks the current fetch of a key. Invalidate drops the ticket so a
// detached fetch cannot store its result.
type ticket struct{}

// Cache is an in-process query cache with per-key fetch coalescing, a
// staleness window and prefix invalidation. It is safe for concurrent use.
type Cache struct {
	mu       sync.Mutex
	entries  *simplelru.LRU[string, *entry]
	inflight map[string]*ticket
	group    singleflight.Group
	removing bool

	staleAfter time.Duration
	refresh    RefreshPolicy
	now        func() time.Time
	logger     *logging.Logger

	hits          atomic.Uint64
	misses        atomic.Uint64
	staleHits     atomic.Uint64
	coalesced     atomic.Uint64
	loads         atomic.Uint64
	loadErrors    atomic.Uint64
	invalidations atomic.Uint64
	evictions     atomic.Uint64
}

func New(cfg Config) (*Cache, error) {
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = DefaultMaxEntries
	}
	if cfg.StaleAfter <= 0 {
		cfg.StaleAfter = DefaultStaleAfter
	}
	if cfg.Refresh == "" {
		cfg.Refresh = RefreshBlocking
	}
	if cfg.Refresh != RefreshBlocking && cfg.Refresh != RefreshBackground {
		return nil, fmt.Errorf("invalid refresh policy %q", cfg.Refresh)
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}

	c := &Cache{
		inflight:   make(map[string]*ticket),
		staleAfter: cfg.StaleAfter,
		refresh:    cfg.Refresh,
		now:        cfg.Now,
		logger:     cfg.Logger,
	}

	entries, err := simplelru.NewLRU[string, *entry](cfg.MaxEntries, c.onEvict)
	if err != nil {
		return nil, fmt.Errorf("create lru: %w", err)
	}
	c.entries = entries

	return c, nil
}

// Fetch returns the cached value for key or loads it. A nil cache calls the
// loader directly.
func Fetch[T any](ctx context.Context, c *Cache, key Key, loader func(ctx context.Context) (T, error), opts ...Option) (T, error) {
	if c == nil {
		return loader(ctx)
	}

	value, err := c.Fetch(ctx, key, func(ctx context.Context) (any, error) {
		return loader(ctx)
	}, opts...)
	if err != nil {
		var zero T
		return zero, err
	}

	typed, ok := value.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("cache key %v holds %T", []string(key), value)
	}
	return typed, nil
}

// Fetch returns the cached value for key, loading it when absent or stale.
// Concurrent callers for one key share a single load. The load runs detached
// from ctx; a caller whose ctx ends receives ctx.Err() while the load finishes
// for everyone else.
func (c *Cache) Fetch(ctx context.Context, key Key, loader Loader, opts ...Option) (any, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if len(key) == 0 {
		return loader(ctx)
	}

	options := fetchOptions{staleAfter: c.staleAfter}
	for _, opt := range opts {
		opt(&options)
	}

	k := key.String()

	c.mu.Lock()
	e, ok := c.entries.Get(k)
	c.mu.Unlock()

	if ok {
		if c.now().Sub(e.fetchedAt) < e.staleAfter {
			c.hits.Add(1)
			return e.value, nil
		}
		if c.refresh == RefreshBackground {
			c.staleHits.Add(1)
			c.group.DoChan(k, c.load(ctx, k, loader, options, nil))
			return e.value, nil
		}
	}

	var led bool
	ch := c.group.DoChan(k, c.load(ctx, k, loader, options, &led))

	// A read is a miss when it ran the load and coalesced when it joined
	// someone else's. Callers that give up on ctx count as neither.
	select {
	case res := <-ch:
		if led {
			c.misses.Add(1)
		} else {
			c.coalesced.Add(1)
		}
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *Cache) load(ctx context.Context, k string, loader Loader, options fetchOptions, led *bool) func() (any, error) {
	detached := context.WithoutCancel(ctx)

	return func() (any, error) {
		if led != nil {
			*led = true
		}

		t := &ticket{}
		c.mu.Lock()
		c.inflight[k] = t
		c.mu.Unlock()

		c.loads.Add(1)
		value, err := loader(detached)

		c.mu.Lock()
		current := c.inflight[k] == t
		if current {
			delete(c.inflight, k)
		}
		if err == nil && current {
			c.entries.Add(k, &entry{
				value:      value,
				fetchedAt:  c.now(),
				staleAfter: options.staleAfter,
			})
		}
		c.mu.Unlock()

		if err != nil {
			c.loadErrors.Add(1)
			if led == nil {
				c.logger.WarnContext(detached, "cache background refresh failed", "key", parseKey(k), "error", err)
			}
			return nil, err
		}
		return value, nil
	}
}

// Invalidate drops every entry whose key starts with prefix and detaches any
// matching in-flight load so its result is never stored. Later readers start
// a fresh load. Callers already waiting on a detached load still receive it.
func (c *Cache) Invalidate(prefix Key) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	c.removing = true
	for _, k := range c.entries.Keys() {
		if parseKey(k).HasPrefix(prefix) {
			c.entries.Remove(k)
			removed++
		}
	}
	c.removing = false

	for k := range c.inflight {
		if parseKey(k).HasPrefix(prefix) {
			delete(c.inflight, k)
			c.group.Forget(k)
		}
	}

	c.invalidations.Add(1)
	return removed
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Len()
}

func (c *Cache) Stats() Stats {
	return Stats{
		Hits:          c.hits.Load(),
		Misses:        c.misses.Load(),
		StaleHits:     c.staleHits.Load(),
		Coalesced:     c.coalesced.Load(),
		Loads:         c.loads.Load(),
		LoadErrors:    c.loadErrors.Load(),
		Invalidations: c.invalidations.Load(),
		Evictions:     c.evictions.Load(),
		Entries:       c.Len(),
	}
}

// onEvict runs under c.mu from inside the lru.
func (c *Cache) onEvict(_ string, _ *entry) {
	if c.removing {
		return
	}
	c.evictions.Add(1)
}
