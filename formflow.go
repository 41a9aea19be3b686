// Package formflow provides a top-level convenience entry point for creating
// a furniture generation engine with minimal boilerplate.
//
// Usage:
//
//	import "github.com/BaSui01/formflow"
//
//	eng := formflow.New()
//	result, err := eng.GenerateSinglePiece(ctx, params)
//
// This is a thin wrapper over [engine.New] with the built-in cultural
// profiles, templates, and heuristic analyzer pre-wired. Construct the
// engine directly when you need a custom registry, cache, or analyzer.
package formflow

import (
	"github.com/BaSui01/formflow/analyzer"
	"github.com/BaSui01/formflow/culture"
	"github.com/BaSui01/formflow/engine"
	"github.com/BaSui01/formflow/templates"
)

// Option configures the engine created by [New].
type Option = engine.Option

// New creates a ready-to-use engine: built-in cultural profiles, built-in
// furniture templates, and the offline heuristic analyzer.
func New(opts ...Option) *engine.Engine {
	cultures := culture.NewStore()
	base := []Option{
		engine.WithAnalyzer(analyzer.NewHeuristic(cultures)),
	}
	return engine.New(cultures, templates.NewRegistry(), append(base, opts...)...)
}

// Re-export engine options so callers never need to import engine/ for the
// common cases.

// WithLogger sets a custom zap logger.
var WithLogger = engine.WithLogger

// WithAnalyzer replaces the heuristic analyzer.
var WithAnalyzer = engine.WithAnalyzer

// WithCache replaces the default local-only generation cache.
var WithCache = engine.WithCache

// WithCollector attaches a Prometheus collector.
var WithCollector = engine.WithCollector

// WithRecordSink attaches a persistence sink for generated pieces.
var WithRecordSink = engine.WithRecordSink

// WithConfig replaces the default engine configuration.
var WithConfig = engine.WithConfig
