package engine

import (
	"math"

	"github.com/BaSui01/formflow/culture"
	"github.com/BaSui01/formflow/types"
)

// Scorer computes the five-dimensional cultural authenticity score of a
// parameter set against a cultural profile. Sub-scores are computed on a
// 0-100 base and normalized to [0,1] before averaging, so every field of
// the returned AuthenticityScore is in [0,1]. Deterministic, no side
// effects.
type Scorer struct{}

// NewScorer creates a scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score evaluates params against profile.
func (s *Scorer) Score(params types.ParametricParameters, profile types.CulturalProfile) types.AuthenticityScore {
	score := types.AuthenticityScore{
		Proportions:      s.scoreProportions(params, profile),
		Materials:        s.scoreMaterials(params, profile),
		Aesthetics:       s.scoreAesthetics(params, profile),
		CulturalElements: s.scoreCulturalElements(params, profile),
		Construction:     s.scoreConstruction(params, profile),
	}
	score.Recompute()
	return score
}

// scoreProportions starts from a full score and deducts for height deviation
// beyond 10% of the cultural expectation and for extreme width/depth ratios.
func (s *Scorer) scoreProportions(params types.ParametricParameters, profile types.CulturalProfile) float64 {
	raw := 100.0

	if expected, ok := culture.ExpectedHeight(profile, params); ok && expected > 0 {
		deviation := math.Abs(params.Height-expected) / expected
		if deviation > 0.10 {
			raw -= 20
		}
	}

	if params.Depth > 0 {
		ratio := params.Width / params.Depth
		if ratio < 0.5 || ratio > 2.0 {
			raw -= 10
		}
	}

	return normalize(raw)
}

// scoreMaterials weights the primary material at up to 50 points and the
// secondary at up to 25. A missing secondary material is not penalized.
func (s *Scorer) scoreMaterials(params types.ParametricParameters, profile types.CulturalProfile) float64 {
	raw := 0.0

	switch {
	case containsString(profile.Materials.Preferred, params.PrimaryMaterial):
		raw += 50
	case containsString(profile.Materials.Traditional, params.PrimaryMaterial):
		raw += 40
	case containsString(profile.Materials.Avoided, params.PrimaryMaterial):
		raw -= 20
	default:
		raw += 20
	}

	switch {
	case params.SecondaryMaterial == "":
		raw += 25
	case containsString(profile.Materials.Preferred, params.SecondaryMaterial):
		raw += 25
	case containsString(profile.Materials.Traditional, params.SecondaryMaterial):
		raw += 20
	case containsString(profile.Materials.Avoided, params.SecondaryMaterial):
		raw -= 10
	default:
		raw += 10
	}

	return normalize(raw)
}

// scoreAesthetics starts from a 50-point base with bonuses for palette
// overlap and for decorative intensity near the cultural expectation.
func (s *Scorer) scoreAesthetics(params types.ParametricParameters, profile types.CulturalProfile) float64 {
	raw := 50.0

	if intersects(params.ColorPalette, profile.Aesthetics.ColorPalette) {
		raw += 25
	}

	expected := culture.ExpectedIntensity(profile, params.Formality)
	if math.Abs(params.DecorativeIntensity-expected) < 0.2 {
		raw += 25
	}

	return normalize(raw)
}

// scoreCulturalElements is the ratio of requested elements recognized by the
// profile. An empty request scores a fixed acceptable-but-minimal 30.
func (s *Scorer) scoreCulturalElements(params types.ParametricParameters, profile types.CulturalProfile) float64 {
	if len(params.CulturalElements) == 0 {
		return normalize(30)
	}

	matched := 0
	for _, el := range params.CulturalElements {
		if containsString(profile.Aesthetics.DecorativeElements, el) {
			matched++
		}
	}
	return normalize(float64(matched) / float64(len(params.CulturalElements)) * 100)
}

// scoreConstruction starts from a 70-point base plus the bonus for
// culturally expected craftsmanship pairings.
func (s *Scorer) scoreConstruction(params types.ParametricParameters, profile types.CulturalProfile) float64 {
	raw := 70.0 + culture.ConstructionBonus(profile.Name, params.CraftsmanshipLevel)*100
	return normalize(raw)
}

// normalize clamps a 0-100 raw score and maps it to [0,1].
func normalize(raw float64) float64 {
	if math.IsNaN(raw) || raw < 0 {
		return 0
	}
	if raw > 100 {
		return 1
	}
	return raw / 100
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, v := range a {
		if containsString(b, v) {
			return true
		}
	}
	return false
}
