package engine

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

// resultCache holds finished analyses keyed by input hash: L1 in-memory + L2 Redis.
// Analyses are deterministic for a given catalog version, so entries never go stale
// within a process; the TTL only bounds memory and Redis usage.
var resultCache *tieredCache

var (
	cacheHits   atomic.Int64
	cacheMisses atomic.Int64
)

type tieredCache struct {
	l1              sync.Map      // key → *cacheEntry
	rdb             *redis.Client // nil if Redis unavailable
	ttl             time.Duration
	maxEntries      int
	cleanupInterval time.Duration
	stop            chan struct{}
}

type cacheEntry struct {
	data      []byte
	expiresAt time.Time
}

// CacheConfig configures InitCache.
type CacheConfig struct {
	RedisURL        string // empty disables L2
	TTL             time.Duration
	MaxEntries      int // L1 size bound; 0 = unbounded
	CleanupInterval time.Duration
}

// InitCache sets up the 2-tier result cache. A zero TTL disables caching.
func InitCache(cc CacheConfig) {
	CloseCache()
	if cc.TTL <= 0 {
		slog.Info("cache: disabled")
		return
	}
	c := &tieredCache{
		ttl:             cc.TTL,
		maxEntries:      cc.MaxEntries,
		cleanupInterval: cc.CleanupInterval,
		stop:            make(chan struct{}),
	}

	if cc.RedisURL != "" {
		opts, err := redis.ParseURL(cc.RedisURL)
		if err != nil {
			slog.Warn("cache: invalid redis URL, L2 disabled", slog.Any("error", err))
		} else {
			rdb := redis.NewClient(opts)
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			if err := rdb.Ping(ctx).Err(); err != nil {
				slog.Warn("cache: redis unreachable, L2 disabled", slog.Any("error", err))
				_ = rdb.Close()
			} else {
				c.rdb = rdb
				slog.Info("cache: L2 redis connected", slog.String("addr", opts.Addr))
			}
		}
	}

	resultCache = c
	slog.Info("cache: initialized", slog.Duration("ttl", c.ttl), slog.Bool("redis", c.rdb != nil), slog.Int("max_entries", c.maxEntries))

	go c.cleanupLoop()
}

// CloseCache stops the cleanup loop and drops the cache.
func CloseCache() {
	if resultCache == nil {
		return
	}
	close(resultCache.stop)
	if resultCache.rdb != nil {
		_ = resultCache.rdb.Close()
	}
	resultCache = nil
}

// CacheKey builds a deterministic cache key from parts.
func CacheKey(parts ...string) string {
	hash := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return fmt.Sprintf("js:%x", hash[:12])
}

// CacheLoad tries L1, then L2, and decodes the hit into T. On L2 hit, populates L1.
// A disabled cache counts neither hits nor misses.
func CacheLoad[T any](ctx context.Context, key string) (T, bool) {
	var out T
	if resultCache == nil {
		return out, false
	}
	data, ok := resultCache.get(ctx, key)
	if !ok || json.Unmarshal(data, &out) != nil {
		cacheMisses.Add(1)
		var zero T
		return zero, false
	}
	cacheHits.Add(1)
	return out, true
}

// CacheStore marshals v and stores it in both tiers.
func CacheStore[T any](ctx context.Context, key string, v T) {
	if resultCache == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	resultCache.set(ctx, key, data)
}

// CacheStats returns current cache hit/miss counters.
func CacheStats() (hits, misses int64) {
	return cacheHits.Load(), cacheMisses.Load()
}

func (c *tieredCache) get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	if val, ok := c.l1.Load(key); ok {
		entry := val.(*cacheEntry)
		if time.Now().Before(entry.expiresAt) {
			slog.Debug("cache: L1 hit", slog.String("key", key))
			return entry.data, true
		}
		c.l1.Delete(key)
	}
	if c.rdb == nil {
		return nil, false
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Debug("cache: L2 get failed", slog.Any("error", err))
		}
		return nil, false
	}
	slog.Debug("cache: L2 hit", slog.String("key", key))
	c.l1.Store(key, &cacheEntry{data: data, expiresAt: time.Now().Add(c.ttl)})
	return data, true
}

func (c *tieredCache) set(ctx context.Context, key string, data []byte) {
	c.evictIfNeeded()
	c.l1.Store(key, &cacheEntry{data: data, expiresAt: time.Now().Add(c.ttl)})
	if c.rdb != nil {
		if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
			slog.Debug("cache: L2 set failed", slog.Any("error", err))
		}
	}
}

func (c *tieredCache) len() int {
	n := 0
	c.l1.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// evictIfNeeded removes entries when L1 reaches maxEntries.
// Expired entries go first, then the ones closest to expiry.
func (c *tieredCache) evictIfNeeded() {
	if c.maxEntries <= 0 {
		return
	}
	count := c.len()
	if count < c.maxEntries {
		return
	}

	now := time.Now()
	c.l1.Range(func(key, val any) bool {
		if entry, ok := val.(*cacheEntry); ok && now.After(entry.expiresAt) {
			c.l1.Delete(key)
			count--
		}
		return count >= c.maxEntries
	})

	for count >= c.maxEntries {
		var oldestKey any
		oldestAt := now.Add(c.ttl + time.Hour)
		c.l1.Range(func(key, val any) bool {
			if entry, ok := val.(*cacheEntry); ok && entry.expiresAt.Before(oldestAt) {
				oldestKey, oldestAt = key, entry.expiresAt
			}
			return true
		})
		if oldestKey == nil {
			break
		}
		c.l1.Delete(oldestKey)
		count--
	}
}

func (c *tieredCache) cleanupLoop() {
	interval := c.cleanupInterval
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			now := time.Now()
			c.l1.Range(func(key, val any) bool {
				if entry, ok := val.(*cacheEntry); ok && now.After(entry.expiresAt) {
					c.l1.Delete(key)
				}
				return true
			})
		}
	}
}
