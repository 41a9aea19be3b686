// Package analyzer defines the requirement-analyzer contract the generation
// engine consumes, plus a deterministic heuristic implementation and a
// resilience wrapper for unreliable external analyzers.
//
// An analyzer is an oracle: given a free-form furniture request it returns a
// structured piece list. It is allowed to fail — the engine treats any
// analyzer error as a signal to take its fallback generation path, never as
// a hard failure.
package analyzer

import (
	"context"

	"github.com/BaSui01/formflow/types"
)

// Analyzer turns a user request into a structured list of furniture pieces
// with suggested parameters.
type Analyzer interface {
	// Name returns the analyzer's identifier for logs and telemetry.
	Name() string

	// Analyze inspects the request and proposes furniture pieces. It must
	// honor ctx cancellation; an error makes the engine fall back to
	// baseline generation.
	Analyze(ctx context.Context, req *types.UserFurnitureRequest) (*types.AnalysisResult, error)
}

// Func adapts a plain function to the Analyzer interface.
type Func struct {
	AnalyzerName string
	Fn           func(ctx context.Context, req *types.UserFurnitureRequest) (*types.AnalysisResult, error)
}

// Name implements Analyzer.
func (f Func) Name() string {
	if f.AnalyzerName == "" {
		return "func"
	}
	return f.AnalyzerName
}

// Analyze implements Analyzer.
func (f Func) Analyze(ctx context.Context, req *types.UserFurnitureRequest) (*types.AnalysisResult, error) {
	return f.Fn(ctx, req)
}
