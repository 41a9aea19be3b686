package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Metadata describes a generated piece for catalogs and summaries.
type Metadata struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	Description          string          `json:"description"`
	CulturalSignificance string          `json:"cultural_significance"`
	UsageGuidelines      []string        `json:"usage_guidelines,omitempty"`
	EstimatedCost        decimal.Decimal `json:"estimated_cost"`
}

// PerformanceMetrics is the per-piece timing/size sample recorded by the
// metrics window.
type PerformanceMetrics struct {
	GenerationTime time.Duration `json:"generation_time"`
	PolygonCount   int           `json:"polygon_count"`
	MemoryBytes    int64         `json:"memory_bytes"`
}

// GenerationResult is one generated piece. Instances stored in the cache are
// owned by the cache; callers always receive defensive copies via Clone.
type GenerationResult struct {
	Geometry             *SceneNode           `json:"geometry"`
	Materials            []Material           `json:"materials"`
	Metadata             Metadata             `json:"metadata"`
	CulturalAuthenticity AuthenticityScore    `json:"cultural_authenticity"`
	PerformanceMetrics   PerformanceMetrics   `json:"performance_metrics"`
	Parameters           ParametricParameters `json:"parameters"`
	CacheHit             bool                 `json:"cache_hit,omitempty"`
}

// Clone returns a deep copy safe to hand to callers.
func (r *GenerationResult) Clone() *GenerationResult {
	if r == nil {
		return nil
	}
	out := *r
	out.Geometry = r.Geometry.Clone()
	if r.Materials != nil {
		out.Materials = append([]Material(nil), r.Materials...)
	}
	if r.Metadata.UsageGuidelines != nil {
		out.Metadata.UsageGuidelines = append([]string(nil), r.Metadata.UsageGuidelines...)
	}
	out.Parameters = r.Parameters.Clone()
	return &out
}
