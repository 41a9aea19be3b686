package types

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// BudgetRange buckets the user's budget.
type BudgetRange string

const (
	BudgetLow    BudgetRange = "low"
	BudgetMedium BudgetRange = "medium"
	BudgetHigh   BudgetRange = "high"
	BudgetLuxury BudgetRange = "luxury"
)

// Dimensions is a width/height/depth triple in meters.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

// UserFurnitureRequest is the free-form batch request handed to the
// requirement analyzer.
type UserFurnitureRequest struct {
	EventType           string      `json:"event_type"`
	Culture             string      `json:"culture"`
	GuestCount          int         `json:"guest_count"`
	SpaceDimensions     Dimensions  `json:"space_dimensions"`
	BudgetRange         BudgetRange `json:"budget_range"`
	FormalityLevel      Formality   `json:"formality_level"`
	SpecialRequirements string      `json:"special_requirements,omitempty"`
}

// Validate checks the structural preconditions the engine requires before
// any analysis or generation happens.
func (r *UserFurnitureRequest) Validate() error {
	if r.Culture == "" {
		return NewError(ErrInvalidRequest, "culture is required")
	}
	if r.GuestCount <= 0 {
		return NewError(ErrInvalidRequest, fmt.Sprintf("guest_count must be positive, got %d", r.GuestCount))
	}
	return nil
}

// FurniturePiece is one analyzer-suggested piece.
type FurniturePiece struct {
	Type                string               `json:"type"`
	Quantity            int                  `json:"quantity"`
	Priority            string               `json:"priority,omitempty"`
	Parameters          ParametricParameters `json:"parameters"`
	CulturalReasoning   string               `json:"cultural_reasoning,omitempty"`
	FunctionalReasoning string               `json:"functional_reasoning,omitempty"`
}

// AnalysisResult is the structured output of the requirement analyzer.
type AnalysisResult struct {
	FurniturePieces []FurniturePiece `json:"furniture_pieces"`
	OverallTheme    string           `json:"overall_theme,omitempty"`
}

// BatchSummary aggregates a batch generation run.
type BatchSummary struct {
	TotalPieces     int             `json:"total_pieces"`
	TotalComponents int             `json:"total_components"`
	TotalCost       decimal.Decimal `json:"total_cost"`
	GenerationTime  time.Duration   `json:"generation_time"`
	CulturalTheme   string          `json:"cultural_theme,omitempty"`
	UsedFallback    bool            `json:"used_fallback,omitempty"`
}

// BatchResult is the output of a batch generation run.
type BatchResult struct {
	BatchID string              `json:"batch_id"`
	Results []*GenerationResult `json:"results"`
	Summary BatchSummary        `json:"summary"`
}
