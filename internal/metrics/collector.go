// Package metrics provides internal Prometheus metrics collection.
// This package is internal and should not be imported by external projects.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// =============================================================================
// 📊 指标收集器
// =============================================================================

// Collector 生成引擎 Prometheus 指标收集器
type Collector struct {
	// 生成指标
	generationsTotal   *prometheus.CounterVec
	generationDuration *prometheus.HistogramVec

	// 评分指标
	authenticityScore *prometheus.HistogramVec
	correctionsTotal  *prometheus.CounterVec

	// 降级指标
	fallbackTotal prometheus.Counter

	// 缓存指标
	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter

	logger *zap.Logger
}

// NewCollector 创建指标收集器
// reg 为 nil 时使用默认注册器；测试中传入独立的 prometheus.NewRegistry()
// 以避免多个引擎实例重复注册
func NewCollector(namespace string, reg prometheus.Registerer, logger *zap.Logger) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	c := &Collector{
		logger: logger.With(zap.String("component", "metrics")),
	}

	// 生成指标
	c.generationsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generations_total",
			Help:      "Total number of piece generations",
		},
		[]string{"type", "culture", "cache_hit"},
	)

	c.generationDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Piece generation duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"type", "culture"},
	)

	// 评分指标
	c.authenticityScore = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "authenticity_score",
			Help:      "Overall cultural authenticity score distribution (0-1)",
			Buckets:   prometheus.LinearBuckets(0, 0.1, 11),
		},
		[]string{"culture"},
	)

	c.correctionsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "corrections_total",
			Help:      "Total number of adaptive parameter corrections",
		},
		[]string{"culture"},
	)

	// 降级指标
	c.fallbackTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fallback_generations_total",
			Help:      "Total number of batch requests served by the fallback path",
		},
	)

	// 缓存指标
	c.cacheHits = factory.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Total number of generation cache hits",
		},
	)
	c.cacheMisses = factory.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_misses_total",
			Help:      "Total number of generation cache misses",
		},
	)

	return c
}

// =============================================================================
// 🎯 记录方法
// =============================================================================

// ObserveGeneration 记录一次生成
func (c *Collector) ObserveGeneration(typeTag, culture string, cacheHit bool, d time.Duration) {
	hit := "false"
	if cacheHit {
		hit = "true"
		c.cacheHits.Inc()
	} else {
		c.cacheMisses.Inc()
	}
	c.generationsTotal.WithLabelValues(typeTag, culture, hit).Inc()
	c.generationDuration.WithLabelValues(typeTag, culture).Observe(d.Seconds())
}

// ObserveScore 记录一次评分
func (c *Collector) ObserveScore(culture string, overall float64) {
	c.authenticityScore.WithLabelValues(culture).Observe(overall)
}

// IncCorrection 记录一次自适应纠正
func (c *Collector) IncCorrection(culture string) {
	c.correctionsTotal.WithLabelValues(culture).Inc()
}

// IncFallback 记录一次降级生成
func (c *Collector) IncFallback() {
	c.fallbackTotal.Inc()
}
