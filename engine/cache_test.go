package engine

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BaSui01/formflow/types"
)

func cachedResult(id string) *types.GenerationResult {
	return &types.GenerationResult{
		Geometry: &types.SceneNode{
			Name:  "chair",
			Shape: types.ShapeGroup,
			Children: []*types.SceneNode{
				{Name: "seat", Component: types.ComponentSeat, Shape: types.ShapeBox},
			},
		},
		Metadata: types.Metadata{ID: id, Name: "Test Chair"},
		Parameters: types.ParametricParameters{
			Type: "chair", Culture: "japanese", PrimaryMaterial: "wood-oak",
		},
	}
}

func TestCanonicalKeyStableUnderSliceOrder(t *testing.T) {
	a := types.ParametricParameters{
		Type:             "chair",
		Culture:          "japanese",
		Width:            0.5,
		Height:           0.38,
		Depth:            0.5,
		PrimaryMaterial:  "wood-oak",
		CulturalElements: []string{"shoji-panel", "kumiko-lattice"},
		ColorPalette:     []string{"indigo", "natural-wood"},
	}
	b := a.Clone()
	b.CulturalElements = []string{"kumiko-lattice", "shoji-panel"}
	b.ColorPalette = []string{"natural-wood", "indigo"}

	assert.Equal(t, CanonicalKey(a), CanonicalKey(b))
}

func TestCanonicalKeyDiscriminates(t *testing.T) {
	a := types.ParametricParameters{Type: "chair", Culture: "japanese", Width: 0.5, Height: 0.38, Depth: 0.5, PrimaryMaterial: "wood-oak"}

	b := a.Clone()
	b.Width = 0.51
	assert.NotEqual(t, CanonicalKey(a), CanonicalKey(b))

	c := a.Clone()
	c.Culture = "modern"
	assert.NotEqual(t, CanonicalKey(a), CanonicalKey(c))
}

func TestCanonicalKeyPrefixed(t *testing.T) {
	key := CanonicalKey(types.ParametricParameters{Type: "chair"})
	assert.True(t, strings.HasPrefix(key, "formflow:gen:"))
}

func TestCanonicalKeyDoesNotMutateInput(t *testing.T) {
	p := types.ParametricParameters{
		CulturalElements: []string{"b", "a"},
		ColorPalette:     []string{"z", "y"},
	}
	CanonicalKey(p)
	assert.Equal(t, []string{"b", "a"}, p.CulturalElements)
	assert.Equal(t, []string{"z", "y"}, p.ColorPalette)
}

func TestLocalCacheRoundTrip(t *testing.T) {
	cache := NewGenerationCache(nil, nil, zap.NewNop())
	ctx := context.Background()

	_, err := cache.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrCacheMiss)

	stored := cachedResult("p-1")
	require.NoError(t, cache.Set(ctx, "k1", stored))

	got, err := cache.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, "p-1", got.Metadata.ID)

	// Defensive copies: mutating what we got back never reaches the cache.
	got.Metadata.Name = "mutated"
	got.Geometry.Children[0].Material = "mutated"

	again, err := cache.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, "Test Chair", again.Metadata.Name)
	assert.Empty(t, again.Geometry.Children[0].Material)
}

func TestLocalCacheEvictsLRU(t *testing.T) {
	cache := NewGenerationCache(nil, &CacheConfig{
		LocalMaxSize: 2,
		LocalTTL:     time.Minute,
		EnableLocal:  true,
	}, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k1", cachedResult("p-1")))
	require.NoError(t, cache.Set(ctx, "k2", cachedResult("p-2")))

	// Touch k1 so k2 is the least recently used.
	_, err := cache.Get(ctx, "k1")
	require.NoError(t, err)

	require.NoError(t, cache.Set(ctx, "k3", cachedResult("p-3")))

	assert.Equal(t, 2, cache.Size())
	_, err = cache.Get(ctx, "k2")
	assert.ErrorIs(t, err, ErrCacheMiss)
	_, err = cache.Get(ctx, "k1")
	assert.NoError(t, err)
}

func TestLocalCacheTTLExpiry(t *testing.T) {
	cache := NewGenerationCache(nil, &CacheConfig{
		LocalMaxSize: 8,
		LocalTTL:     10 * time.Millisecond,
		EnableLocal:  true,
	}, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k1", cachedResult("p-1")))
	time.Sleep(25 * time.Millisecond)

	_, err := cache.Get(ctx, "k1")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisLevelRepopulatesLocal(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	cache := NewGenerationCache(rdb, &CacheConfig{
		LocalMaxSize: 8,
		LocalTTL:     time.Minute,
		RedisTTL:     time.Hour,
		EnableLocal:  true,
		EnableRedis:  true,
	}, zap.NewNop())
	ctx := context.Background()

	key := CanonicalKey(types.ParametricParameters{Type: "chair", Culture: "japanese"})
	require.NoError(t, cache.Set(ctx, key, cachedResult("p-redis")))

	// Drop the local level; the entry must come back from Redis.
	cache.Clear()
	assert.Equal(t, 0, cache.Size())

	got, err := cache.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "p-redis", got.Metadata.ID)
	assert.Equal(t, 1, cache.Size(), "redis hit should repopulate the local level")
}

func TestRedisLevelSurvivesUndecodableEntry(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	cache := NewGenerationCache(rdb, &CacheConfig{
		LocalMaxSize: 8,
		LocalTTL:     time.Minute,
		RedisTTL:     time.Hour,
		EnableLocal:  true,
		EnableRedis:  true,
	}, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, mr.Set("formflow:gen:garbage", "not json"))

	_, err := cache.Get(ctx, "formflow:gen:garbage")
	assert.ErrorIs(t, err, ErrCacheMiss)
}
