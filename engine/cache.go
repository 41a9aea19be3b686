package engine

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/BaSui01/formflow/types"
)

// ErrCacheMiss indicates cache miss.
var ErrCacheMiss = errors.New("cache miss")

// redisKeyPrefix namespaces generation entries in a shared Redis instance.
const redisKeyPrefix = "formflow:gen:"

// CacheConfig configures the generation cache.
type CacheConfig struct {
	LocalMaxSize int           `json:"local_max_size"`
	LocalTTL     time.Duration `json:"local_ttl"`
	RedisTTL     time.Duration `json:"redis_ttl"`
	EnableLocal  bool          `json:"enable_local"`
	EnableRedis  bool          `json:"enable_redis"`
}

// DefaultCacheConfig returns sensible defaults: a bounded local LRU and no
// Redis level unless a client is supplied.
func DefaultCacheConfig() *CacheConfig {
	return &CacheConfig{
		LocalMaxSize: 512,
		LocalTTL:     30 * time.Minute,
		RedisTTL:     6 * time.Hour,
		EnableLocal:  true,
		EnableRedis:  true,
	}
}

// CanonicalKey derives the deterministic cache key for a parameter set.
// Canonicalization is order- and type-stable: the parameter struct fixes the
// field order, and order-insensitive slices (cultural elements, palette) are
// sorted before hashing, so structurally equal parameter sets always produce
// the same key.
func CanonicalKey(p types.ParametricParameters) string {
	canon := p.Clone()
	sort.Strings(canon.CulturalElements)
	sort.Strings(canon.ColorPalette)

	data, err := json.Marshal(canon)
	if err != nil {
		// Clone of a plain value struct cannot fail to marshal; keep the
		// function total anyway.
		data = []byte(canon.Type + "|" + canon.Culture)
	}
	hash := sha256.Sum256(data)
	return redisKeyPrefix + hex.EncodeToString(hash[:16])
}

// GenerationCache memoizes canonical-key → GenerationResult with a local LRU
// level and an optional Redis level. Stored entries are owned by the cache:
// both Get and Set deep-copy, so callers can never mutate cached state.
type GenerationCache struct {
	local  *lruCache
	redis  *redis.Client
	config *CacheConfig
	logger *zap.Logger
}

// NewGenerationCache creates a cache. rdb may be nil to disable the Redis
// level regardless of config.
func NewGenerationCache(rdb *redis.Client, config *CacheConfig, logger *zap.Logger) *GenerationCache {
	if config == nil {
		config = DefaultCacheConfig()
	}

	var local *lruCache
	if config.EnableLocal {
		local = newLRUCache(config.LocalMaxSize, config.LocalTTL)
	}

	return &GenerationCache{
		local:  local,
		redis:  rdb,
		config: config,
		logger: logger.With(zap.String("component", "generation_cache")),
	}
}

// Get retrieves a defensive copy of the cached result for key, checking the
// local level first and repopulating it on a Redis hit.
func (c *GenerationCache) Get(ctx context.Context, key string) (*types.GenerationResult, error) {
	if c.local != nil {
		if result, ok := c.local.Get(key); ok {
			return result.Clone(), nil
		}
	}

	if c.config.EnableRedis && c.redis != nil {
		data, err := c.redis.Get(ctx, key).Bytes()
		if err == nil {
			var result types.GenerationResult
			if err := json.Unmarshal(data, &result); err == nil {
				if c.local != nil {
					c.local.Set(key, &result)
				}
				return result.Clone(), nil
			}
			c.logger.Warn("discarding undecodable cache entry", zap.String("key", key))
		}
	}

	return nil, ErrCacheMiss
}

// Set stores a defensive copy of result under key.
func (c *GenerationCache) Set(ctx context.Context, key string, result *types.GenerationResult) error {
	owned := result.Clone()

	if c.local != nil {
		c.local.Set(key, owned)
	}

	if c.config.EnableRedis && c.redis != nil {
		data, err := json.Marshal(owned)
		if err != nil {
			return err
		}
		if err := c.redis.Set(ctx, key, data, c.config.RedisTTL).Err(); err != nil {
			c.logger.Warn("redis cache set failed", zap.String("key", key), zap.Error(err))
			return err
		}
	}

	return nil
}

// Size returns the number of entries in the local level.
func (c *GenerationCache) Size() int {
	if c.local == nil {
		return 0
	}
	return c.local.Len()
}

// Clear empties the local level. Redis entries expire via TTL.
func (c *GenerationCache) Clear() {
	if c.local != nil {
		c.local.Clear()
	}
}

// lruCache is a doubly-linked LRU with optional TTL.
type lruCache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	items    map[string]*lruNode
	head     *lruNode
	tail     *lruNode
}

type lruNode struct {
	key       string
	result    *types.GenerationResult
	expiresAt time.Time
	prev      *lruNode
	next      *lruNode
}

func newLRUCache(capacity int, ttl time.Duration) *lruCache {
	if capacity <= 0 {
		capacity = 1
	}
	return &lruCache{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*lruNode),
	}
}

func (c *lruCache) Get(key string) (*types.GenerationResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	node, ok := c.items[key]
	if !ok {
		return nil, false
	}

	if c.ttl > 0 && time.Now().After(node.expiresAt) {
		c.removeNode(node)
		delete(c.items, key)
		return nil, false
	}

	c.moveToHead(node)
	return node.result, true
}

func (c *lruCache) Set(key string, result *types.GenerationResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if node, ok := c.items[key]; ok {
		node.result = result
		node.expiresAt = time.Now().Add(c.ttl)
		c.moveToHead(node)
		return
	}

	if len(c.items) >= c.capacity {
		c.evictTail()
	}

	node := &lruNode{
		key:       key,
		result:    result,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.items[key] = node
	c.addToHead(node)
}

func (c *lruCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *lruCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*lruNode)
	c.head = nil
	c.tail = nil
}

func (c *lruCache) addToHead(node *lruNode) {
	node.prev = nil
	node.next = c.head
	if c.head != nil {
		c.head.prev = node
	}
	c.head = node
	if c.tail == nil {
		c.tail = node
	}
}

func (c *lruCache) removeNode(node *lruNode) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		c.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		c.tail = node.prev
	}
}

func (c *lruCache) moveToHead(node *lruNode) {
	if node == c.head {
		return
	}
	c.removeNode(node)
	c.addToHead(node)
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.items, c.tail.key)
	c.removeNode(c.tail)
}
