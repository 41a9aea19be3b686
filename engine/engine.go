// Package engine implements the parametric generation pipeline: parameter
// validation, template dispatch, authenticity scoring, adaptive correction,
// multi-level result caching, and performance telemetry. The Engine is the
// orchestrator composing all of it; everything it depends on is an explicit
// field so multiple engines can run side by side without cross-contamination.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/BaSui01/formflow/analyzer"
	"github.com/BaSui01/formflow/culture"
	"github.com/BaSui01/formflow/internal/metrics"
	"github.com/BaSui01/formflow/types"
)

// RecordSink receives every freshly generated (non-cache-hit) result, e.g.
// for catalog persistence. Sink errors are logged, never propagated.
type RecordSink interface {
	Record(ctx context.Context, result *types.GenerationResult) error
}

// Config holds the engine's tunables.
type Config struct {
	// CorrectionThreshold is the overall-score threshold (on [0,1]) below
	// which the adaptive corrector runs.
	CorrectionThreshold float64 `json:"correction_threshold"`
	// AnalyzerTimeout bounds the requirement-analyzer call for a batch.
	AnalyzerTimeout time.Duration `json:"analyzer_timeout"`
	// MetricsWindow is the per-key sample cap of the rolling window.
	MetricsWindow int `json:"metrics_window"`
	// MaxFallbackPieces caps fallback generation.
	MaxFallbackPieces int `json:"max_fallback_pieces"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		CorrectionThreshold: 0.7,
		AnalyzerTimeout:     10 * time.Second,
		MetricsWindow:       defaultMetricsWindow,
		MaxFallbackPieces:   defaultMaxFallbackPieces,
	}
}

// Engine is the generation orchestrator.
type Engine struct {
	config    *Config
	cultures  *culture.Store
	registry  *Registry
	validator *Validator
	scorer    *Scorer
	corrector *Corrector
	cache     *GenerationCache
	window    *MetricsRecorder
	collector *metrics.Collector
	analyzer  analyzer.Analyzer
	sink      RecordSink
	logger    *zap.Logger
	tracer    trace.Tracer

	// group coalesces concurrent identical requests so one generation is
	// shared instead of recomputed per caller.
	group singleflight.Group
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. Defaults to zap.NewNop().
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithAnalyzer sets the requirement analyzer. Without one, every batch takes
// the fallback path.
func WithAnalyzer(a analyzer.Analyzer) Option {
	return func(e *Engine) { e.analyzer = a }
}

// WithCache replaces the default local-only cache.
func WithCache(c *GenerationCache) Option {
	return func(e *Engine) { e.cache = c }
}

// WithCollector attaches a Prometheus collector.
func WithCollector(c *metrics.Collector) Option {
	return func(e *Engine) { e.collector = c }
}

// WithRecordSink attaches a persistence sink for generated results.
func WithRecordSink(s RecordSink) Option {
	return func(e *Engine) { e.sink = s }
}

// WithConfig replaces the default configuration.
func WithConfig(cfg *Config) Option {
	return func(e *Engine) {
		if cfg != nil {
			e.config = cfg
		}
	}
}

// New creates an engine over the given profile store and template registry.
func New(cultures *culture.Store, registry *Registry, opts ...Option) *Engine {
	e := &Engine{
		config:    DefaultConfig(),
		cultures:  cultures,
		registry:  registry,
		validator: NewValidator(),
		scorer:    NewScorer(),
		logger:    zap.NewNop(),
		tracer:    otel.Tracer("formflow/engine"),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.corrector = NewCorrector(e.config.CorrectionThreshold)
	if e.cache == nil {
		e.cache = NewGenerationCache(nil, nil, e.logger)
	}
	e.window = NewMetricsRecorder(e.config.MetricsWindow)
	return e
}

// Cache exposes the generation cache for lifecycle management (Size/Clear).
func (e *Engine) Cache() *GenerationCache { return e.cache }

// MetricsReport returns the rolling-window aggregation per (type, culture).
func (e *Engine) MetricsReport() map[string]MetricsReport { return e.window.Report() }

// Reset clears the cache and the metrics window.
func (e *Engine) Reset() {
	e.cache.Clear()
	e.window.Reset()
}

// GenerateSinglePiece runs one parameter set through the full pipeline:
// validate → cache lookup → generate → score → correct-if-needed → cache
// store → record metrics. Concurrent callers with structurally equal
// parameters share a single computation. The returned result is always a
// defensive copy.
func (e *Engine) GenerateSinglePiece(ctx context.Context, params types.ParametricParameters) (*types.GenerationResult, error) {
	ctx, span := e.tracer.Start(ctx, "engine.generate_piece",
		trace.WithAttributes(
			attribute.String("piece.type", params.Type),
			attribute.String("piece.culture", params.Culture),
		))
	defer span.End()

	if !e.validator.Validate(params) {
		params = e.validator.AdjustInvalidParameters(params)
		e.logger.Debug("adjusted out-of-range parameters",
			zap.String("type", params.Type),
			zap.String("culture", params.Culture),
		)
	}

	key := CanonicalKey(params)
	v, err, shared := e.group.Do(key, func() (any, error) {
		return e.generateOrFetch(ctx, key, params)
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	result := v.(*types.GenerationResult)
	span.SetAttributes(
		attribute.Bool("piece.cache_hit", result.CacheHit),
		attribute.Bool("piece.coalesced", shared),
		attribute.Float64("piece.score", result.CulturalAuthenticity.Overall),
	)
	return result.Clone(), nil
}

// generateOrFetch is the singleflight body: cache lookup, then the miss path.
func (e *Engine) generateOrFetch(ctx context.Context, key string, params types.ParametricParameters) (*types.GenerationResult, error) {
	start := time.Now()

	if cached, err := e.cache.Get(ctx, key); err == nil {
		cached.CacheHit = true
		if e.collector != nil {
			e.collector.ObserveGeneration(params.Type, params.Culture, true, time.Since(start))
		}
		e.logger.Debug("generation cache hit", zap.String("key", key))
		return cached, nil
	}

	result, err := e.generatePiece(ctx, params)
	if err != nil {
		return nil, err
	}

	if err := e.cache.Set(ctx, key, result); err != nil {
		e.logger.Warn("caching generation result failed", zap.String("key", key), zap.Error(err))
	}

	e.window.Record(params.Type, params.Culture, result.PerformanceMetrics)
	if e.collector != nil {
		e.collector.ObserveGeneration(params.Type, params.Culture, false, time.Since(start))
		e.collector.ObserveScore(params.Culture, result.CulturalAuthenticity.Overall)
	}
	if e.sink != nil {
		if err := e.sink.Record(ctx, result); err != nil {
			e.logger.Warn("record sink failed", zap.String("id", result.Metadata.ID), zap.Error(err))
		}
	}

	return result, nil
}

// generatePiece is the cache-miss path: template dispatch, geometry,
// scoring, single corrective pass with one re-score, metadata, materials.
func (e *Engine) generatePiece(ctx context.Context, params types.ParametricParameters) (*types.GenerationResult, error) {
	template, err := e.registry.Resolve(params.Type)
	if err != nil {
		return nil, err
	}

	if !template.ValidateParameters(params) {
		params = e.validator.AdjustInvalidParameters(params)
	}

	profile := e.cultures.GetOrDefault(params.Culture)
	start := time.Now()

	geometry, err := template.GenerateGeometry(params)
	if err != nil {
		return nil, types.NewError(types.ErrGeneratorFailure,
			fmt.Sprintf("geometry generation failed for type %q", params.Type)).WithCause(err)
	}

	score := e.scorer.Score(params, profile)

	if score.Overall < e.config.CorrectionThreshold {
		corrected, changed := e.corrector.Correct(params, score, profile)
		if changed {
			regenerated, err := template.GenerateGeometry(corrected)
			if err != nil {
				return nil, types.NewError(types.ErrGeneratorFailure,
					fmt.Sprintf("geometry regeneration failed for type %q", corrected.Type)).WithCause(err)
			}
			rescored := e.scorer.Score(corrected, profile)
			// Single corrective pass: keep whichever evaluation is better.
			if rescored.Overall >= score.Overall {
				e.logger.Info("adaptive correction applied",
					zap.String("type", params.Type),
					zap.String("culture", params.Culture),
					zap.Float64("score_before", score.Overall),
					zap.Float64("score_after", rescored.Overall),
				)
				params = corrected
				geometry = regenerated
				score = rescored
			}
			if e.collector != nil {
				e.collector.IncCorrection(params.Culture)
			}
		}
	}

	metadata, err := template.GenerateMetadata(params, profile)
	if err != nil {
		return nil, types.NewError(types.ErrGeneratorFailure,
			fmt.Sprintf("metadata generation failed for type %q", params.Type)).WithCause(err)
	}

	materials := buildMaterials(params, profile)
	applyMaterials(geometry, materials)

	return &types.GenerationResult{
		Geometry:             geometry,
		Materials:            materials,
		Metadata:             metadata,
		Parameters:           params,
		CulturalAuthenticity: score,
		PerformanceMetrics: types.PerformanceMetrics{
			GenerationTime: time.Since(start),
			PolygonCount:   geometry.PolygonCount(),
			MemoryBytes:    estimateMemoryBytes(geometry),
		},
	}, nil
}

// GenerateBatch analyzes a user request and generates every suggested piece
// in analyzer order. Analyzer failure degrades to fallback generation and is
// never surfaced; a per-piece failure aborts the remaining batch and
// propagates.
func (e *Engine) GenerateBatch(ctx context.Context, req *types.UserFurnitureRequest) (*types.BatchResult, error) {
	ctx, span := e.tracer.Start(ctx, "engine.generate_batch",
		trace.WithAttributes(
			attribute.String("batch.culture", req.Culture),
			attribute.Int("batch.guest_count", req.GuestCount),
		))
	defer span.End()

	if err := req.Validate(); err != nil {
		span.RecordError(err)
		return nil, err
	}

	start := time.Now()
	analysis, usedFallback := e.analyze(ctx, req)

	var results []*types.GenerationResult
	for _, piece := range analysis.FurniturePieces {
		quantity := piece.Quantity
		if quantity < 1 {
			quantity = 1
		}
		for i := 0; i < quantity; i++ {
			result, err := e.GenerateSinglePiece(ctx, piece.Parameters)
			if err != nil {
				span.RecordError(err)
				return nil, err
			}
			results = append(results, result)
		}
	}

	batch := &types.BatchResult{
		BatchID: uuid.NewString(),
		Results: results,
		Summary: buildSummary(results, analysis.OverallTheme, time.Since(start), usedFallback),
	}

	e.logger.Info("batch generation complete",
		zap.String("batch_id", batch.BatchID),
		zap.Int("pieces", batch.Summary.TotalPieces),
		zap.Bool("fallback", usedFallback),
		zap.Duration("elapsed", batch.Summary.GenerationTime),
	)
	span.SetAttributes(
		attribute.Int("batch.pieces", batch.Summary.TotalPieces),
		attribute.Bool("batch.fallback", usedFallback),
	)
	return batch, nil
}

// analyze runs the requirement analyzer under its timeout, degrading to the
// fallback analysis when the analyzer is absent, errors, or proposes nothing.
func (e *Engine) analyze(ctx context.Context, req *types.UserFurnitureRequest) (*types.AnalysisResult, bool) {
	if e.analyzer != nil {
		actx := ctx
		if e.config.AnalyzerTimeout > 0 {
			var cancel context.CancelFunc
			actx, cancel = context.WithTimeout(ctx, e.config.AnalyzerTimeout)
			defer cancel()
		}

		analysis, err := e.analyzer.Analyze(actx, req)
		if err == nil && analysis != nil && len(analysis.FurniturePieces) > 0 {
			return analysis, false
		}
		e.logger.Warn("requirement analyzer failed, degrading to fallback generation",
			zap.String("analyzer", e.analyzer.Name()),
			zap.Error(err),
		)
	}

	if e.collector != nil {
		e.collector.IncFallback()
	}
	return e.fallbackAnalysis(req), true
}

func buildSummary(results []*types.GenerationResult, theme string, elapsed time.Duration, usedFallback bool) types.BatchSummary {
	totalComponents := 0
	totalCost := decimal.Zero
	for _, r := range results {
		totalComponents += r.Geometry.CountNodes()
		totalCost = totalCost.Add(r.Metadata.EstimatedCost)
	}
	return types.BatchSummary{
		TotalPieces:     len(results),
		TotalComponents: totalComponents,
		TotalCost:       totalCost,
		GenerationTime:  elapsed,
		CulturalTheme:   theme,
		UsedFallback:    usedFallback,
	}
}
