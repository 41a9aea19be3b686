package engine

import (
	"github.com/BaSui01/formflow/types"
)

// defaultMaxFallbackPieces caps the baseline pieces built when the analyzer
// is unavailable.
const defaultMaxFallbackPieces = 8

// fallbackAnalysis synthesizes the degraded analysis used when the
// requirement analyzer fails or is absent: up to min(guestCount, cap)
// identical baseline chairs derived from the culture's profile. It never
// fails; an unknown culture degrades to the default profile.
func (e *Engine) fallbackAnalysis(req *types.UserFurnitureRequest) *types.AnalysisResult {
	profile := e.cultures.GetOrDefault(req.Culture)

	count := req.GuestCount
	if count > e.config.MaxFallbackPieces {
		count = e.config.MaxFallbackPieces
	}
	if count < 1 {
		count = 1
	}

	material := defaultMaterial
	if len(profile.Materials.Preferred) > 0 {
		material = profile.Materials.Preferred[0]
	}

	params := types.ParametricParameters{
		Type:                "chair",
		Culture:             req.Culture,
		Width:               0.5,
		Height:              profile.Proportions.SeatHeight,
		Depth:               0.5,
		Formality:           req.FormalityLevel,
		PrimaryMaterial:     material,
		DecorativeIntensity: profile.BaseIntensity,
		CraftsmanshipLevel:  types.CraftsmanshipSimple,
	}

	return &types.AnalysisResult{
		FurniturePieces: []types.FurniturePiece{
			{
				Type:                "chair",
				Quantity:            count,
				Priority:            "essential",
				Parameters:          params,
				FunctionalReasoning: "baseline seating for guest count",
			},
		},
		OverallTheme: profile.Name + " baseline seating",
	}
}
