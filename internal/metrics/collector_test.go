package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestCollector(t *testing.T) (*Collector, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	return NewCollector("formflow", reg, zap.NewNop()), reg
}

func TestObserveGeneration(t *testing.T) {
	c, _ := newTestCollector(t)

	c.ObserveGeneration("chair", "japanese", false, 5*time.Millisecond)
	c.ObserveGeneration("chair", "japanese", false, 7*time.Millisecond)
	c.ObserveGeneration("chair", "japanese", true, time.Millisecond)

	assert.Equal(t, float64(2),
		testutil.ToFloat64(c.generationsTotal.WithLabelValues("chair", "japanese", "false")))
	assert.Equal(t, float64(1),
		testutil.ToFloat64(c.generationsTotal.WithLabelValues("chair", "japanese", "true")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.cacheHits))
	assert.Equal(t, float64(2), testutil.ToFloat64(c.cacheMisses))
}

func TestObserveScoreAndCorrections(t *testing.T) {
	c, reg := newTestCollector(t)

	c.ObserveScore("japanese", 0.85)
	c.IncCorrection("japanese")
	c.IncCorrection("japanese")
	c.IncFallback()

	assert.Equal(t, float64(2),
		testutil.ToFloat64(c.correctionsTotal.WithLabelValues("japanese")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.fallbackTotal))

	// 直方图通过注册器侧面验证
	families, err := reg.Gather()
	assert.NoError(t, err)
	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["formflow_authenticity_score"])
	assert.True(t, names["formflow_generation_duration_seconds"])
}

func TestSeparateRegistries(t *testing.T) {
	// 两个收集器使用独立注册器时不会互相污染
	a, _ := newTestCollector(t)
	b, _ := newTestCollector(t)

	a.IncFallback()

	assert.Equal(t, float64(1), testutil.ToFloat64(a.fallbackTotal))
	assert.Equal(t, float64(0), testutil.ToFloat64(b.fallbackTotal))
}
