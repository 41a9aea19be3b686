package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BaSui01/formflow/config"
	"github.com/BaSui01/formflow/culture"
	"github.com/BaSui01/formflow/engine"
	"github.com/BaSui01/formflow/templates"
	"github.com/BaSui01/formflow/testutil/fixtures"
)

func TestBuildCacheConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	cc := buildCacheConfig(cfg)
	assert.True(t, cc.EnableLocal, "local LRU must always be on")
	assert.False(t, cc.EnableRedis, "redis level follows the redis section switch")
	assert.Equal(t, cfg.Cache.LocalMaxSize, cc.LocalMaxSize)
	assert.Equal(t, cfg.Cache.LocalTTL, cc.LocalTTL)
	assert.Equal(t, cfg.Cache.RedisTTL, cc.RedisTTL)

	cfg.Redis.Enabled = true
	assert.True(t, buildCacheConfig(cfg).EnableRedis)
}

// 按 buildApp 的方式组装缓存,验证重复请求真正命中缓存。
func TestAppWiredCacheServesRepeatRequests(t *testing.T) {
	cfg := config.DefaultConfig()
	cache := engine.NewGenerationCache(nil, buildCacheConfig(cfg), zap.NewNop())

	eng := engine.New(culture.NewStore(), templates.NewRegistry(),
		engine.WithCache(cache),
	)

	ctx := context.Background()
	params := fixtures.ScandinavianTableParams()

	first, err := eng.GenerateSinglePiece(ctx, params)
	require.NoError(t, err)
	require.False(t, first.CacheHit)

	second, err := eng.GenerateSinglePiece(ctx, params)
	require.NoError(t, err)
	assert.True(t, second.CacheHit)
	assert.Equal(t, first.Metadata.ID, second.Metadata.ID)
	assert.Equal(t, 1, cache.Size())
}
