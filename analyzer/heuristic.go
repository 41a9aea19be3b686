package analyzer

import (
	"context"
	"fmt"

	"github.com/BaSui01/formflow/culture"
	"github.com/BaSui01/formflow/types"
)

// guestsPerTable sizes dining surfaces: one table per started group of six.
const guestsPerTable = 6

// Heuristic is a deterministic rule-based analyzer: seating for every guest,
// one table per started group of six, and accent lighting for formal events.
// It never calls out to anything, so it doubles as the offline analyzer for
// environments without an AI collaborator.
type Heuristic struct {
	cultures *culture.Store
}

// NewHeuristic creates a heuristic analyzer backed by the given profile store.
func NewHeuristic(cultures *culture.Store) *Heuristic {
	return &Heuristic{cultures: cultures}
}

// Name implements Analyzer.
func (h *Heuristic) Name() string { return "heuristic" }

// Analyze implements Analyzer.
func (h *Heuristic) Analyze(ctx context.Context, req *types.UserFurnitureRequest) (*types.AnalysisResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	profile := h.cultures.GetOrDefault(req.Culture)

	material := ""
	if len(profile.Materials.Preferred) > 0 {
		material = profile.Materials.Preferred[0]
	}

	elements := profile.Aesthetics.DecorativeElements
	if len(elements) > 2 {
		elements = elements[:2]
	}

	chair := types.ParametricParameters{
		Type:                "chair",
		Culture:             req.Culture,
		Width:               0.5,
		Height:              profile.Proportions.SeatHeight,
		Depth:               0.52,
		Formality:           req.FormalityLevel,
		PrimaryMaterial:     material,
		CulturalElements:    append([]string(nil), elements...),
		ColorPalette:        append([]string(nil), profile.Aesthetics.ColorPalette...),
		DecorativeIntensity: culture.ExpectedIntensity(profile, req.FormalityLevel),
		CraftsmanshipLevel:  craftsmanshipForBudget(req.BudgetRange),
	}

	tables := (req.GuestCount + guestsPerTable - 1) / guestsPerTable
	table := chair
	table.Type = "table"
	table.Width = 1.6
	table.Height = profile.Proportions.TableHeight
	table.Depth = 0.9

	pieces := []types.FurniturePiece{
		{
			Type:                "chair",
			Quantity:            req.GuestCount,
			Priority:            "essential",
			Parameters:          chair,
			CulturalReasoning:   fmt.Sprintf("seat height follows the %s profile", profile.Name),
			FunctionalReasoning: "one seat per guest",
		},
		{
			Type:                "table",
			Quantity:            tables,
			Priority:            "essential",
			Parameters:          table,
			FunctionalReasoning: fmt.Sprintf("one surface per %d guests", guestsPerTable),
		},
	}

	if req.FormalityLevel == types.FormalityFormal || req.FormalityLevel == types.FormalityCeremonial {
		lamp := chair
		lamp.Type = "lamp"
		lamp.Width = 0.35
		lamp.Height = 1.5
		lamp.Depth = 0.35
		pieces = append(pieces, types.FurniturePiece{
			Type:                "lamp",
			Quantity:            1 + tables/2,
			Priority:            "accent",
			Parameters:          lamp,
			FunctionalReasoning: "ambient lighting for formal settings",
		})
	}

	return &types.AnalysisResult{
		FurniturePieces: pieces,
		OverallTheme:    fmt.Sprintf("%s %s", profile.Name, req.EventType),
	}, nil
}

func craftsmanshipForBudget(budget types.BudgetRange) types.Craftsmanship {
	switch budget {
	case types.BudgetLuxury:
		return types.CraftsmanshipMasterwork
	case types.BudgetHigh:
		return types.CraftsmanshipRefined
	default:
		return types.CraftsmanshipSimple
	}
}
