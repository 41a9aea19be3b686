package engine

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"github.com/BaSui01/formflow/culture"
	"github.com/BaSui01/formflow/types"
)

func TestScoreFaithfulJapaneseChair(t *testing.T) {
	scorer := NewScorer()
	profile := culture.NewStore().GetOrDefault("japanese")

	params := types.ParametricParameters{
		Type:                "chair",
		Culture:             "japanese",
		Width:               0.5,
		Height:              0.38, // exactly the profile seat height
		Depth:               0.5,
		PrimaryMaterial:     "wood-oak", // preferred
		CulturalElements:    []string{"kumiko-lattice", "shoji-panel"},
		ColorPalette:        []string{"natural-wood"},
		Formality:           types.FormalitySemiFormal,
		DecorativeIntensity: 0.3, // matches expected intensity exactly
		CraftsmanshipLevel:  types.CraftsmanshipMasterwork,
	}

	score := scorer.Score(params, profile)

	assert.Equal(t, 1.0, score.Proportions)
	assert.InDelta(t, 0.75, score.Materials, 1e-9) // preferred primary + no secondary
	assert.Equal(t, 1.0, score.Aesthetics)
	assert.Equal(t, 1.0, score.CulturalElements)
	assert.Equal(t, 1.0, score.Construction) // 70 + masterwork bonus 30
	assert.Greater(t, score.Overall, 0.9)
}

func TestScorePenalizesAvoidedMaterial(t *testing.T) {
	scorer := NewScorer()
	profile := culture.NewStore().GetOrDefault("japanese")

	params := types.ParametricParameters{
		Type:            "chair",
		Culture:         "japanese",
		Width:           0.5,
		Height:          0.38,
		Depth:           0.5,
		PrimaryMaterial: "metal-steel", // explicitly avoided
	}

	score := scorer.Score(params, profile)

	// -20 for the avoided primary, +25 for the absent secondary → 5/100.
	assert.InDelta(t, 0.05, score.Materials, 1e-9)
	assert.Less(t, score.Materials, 0.7)
}

func TestScoreProportionDeviations(t *testing.T) {
	scorer := NewScorer()
	profile := culture.NewStore().GetOrDefault("japanese")
	base := types.ParametricParameters{
		Type:            "chair",
		Width:           0.5,
		Depth:           0.5,
		PrimaryMaterial: "wood-oak",
	}

	tall := base
	tall.Height = 0.60 // far above 0.38 seat height
	assert.InDelta(t, 0.80, scorer.Score(tall, profile).Proportions, 1e-9)

	squat := base
	squat.Height = 0.38
	squat.Width = 1.5 // ratio 3.0, outside [0.5, 2.0]
	assert.InDelta(t, 0.90, scorer.Score(squat, profile).Proportions, 1e-9)
}

func TestScoreEmptyCulturalElements(t *testing.T) {
	scorer := NewScorer()
	profile := culture.NewStore().GetOrDefault("modern")

	params := types.ParametricParameters{
		Type:            "table",
		Height:          0.73,
		Width:           1.6,
		Depth:           0.9,
		PrimaryMaterial: "wood-ash",
	}

	assert.InDelta(t, 0.30, scorer.Score(params, profile).CulturalElements, 1e-9)
}

func TestScoreUnrecognizedElementsRatio(t *testing.T) {
	scorer := NewScorer()
	profile := culture.NewStore().GetOrDefault("japanese")

	params := types.ParametricParameters{
		Type:             "chair",
		Height:           0.38,
		Width:            0.5,
		Depth:            0.5,
		PrimaryMaterial:  "wood-oak",
		CulturalElements: []string{"kumiko-lattice", "doric-column"},
	}

	// One of two recognized.
	assert.InDelta(t, 0.50, scorer.Score(params, profile).CulturalElements, 1e-9)
}

// Every sub-score stays in [0,1] and Overall is their mean, for arbitrary
// parameter combinations against every built-in profile.
func TestProperty_ScoreBounds(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	store := culture.NewStore()
	scorer := NewScorer()
	cultures := append(store.List(), "unknown-culture")

	properties := gopter.NewProperties(parameters)
	properties.Property("sub-scores bounded and overall is the mean", prop.ForAll(
		func(cultureName, typeTag, material, secondary string, w, h, d, intensity float64, elements []string) bool {
			profile := store.GetOrDefault(cultureName)
			params := types.ParametricParameters{
				Type:                typeTag,
				Culture:             cultureName,
				Width:               w,
				Height:              h,
				Depth:               d,
				PrimaryMaterial:     material,
				SecondaryMaterial:   secondary,
				CulturalElements:    elements,
				DecorativeIntensity: intensity,
			}

			score := scorer.Score(params, profile)

			for _, v := range []float64{
				score.Proportions, score.Materials, score.Aesthetics,
				score.CulturalElements, score.Construction, score.Overall,
			} {
				if v < 0 || v > 1 {
					return false
				}
			}

			mean := (score.Proportions + score.Materials + score.Aesthetics +
				score.CulturalElements + score.Construction) / 5
			return score.Overall == mean
		},
		gen.OneConstOf(anyConsts(cultures)...),
		gen.OneConstOf("chair", "bench", "table", "lamp", "stool", "hammock"),
		gen.OneConstOf("wood-oak", "metal-steel", "marble-carrara", "plastic", ""),
		gen.OneConstOf("", "linen", "gold-leaf", "bamboo"),
		gen.Float64Range(0.01, 5),
		gen.Float64Range(0.01, 3),
		gen.Float64Range(0.01, 5),
		gen.Float64Range(0, 1),
		gen.SliceOf(gen.OneConstOf("kumiko-lattice", "cabriole-leg", "clean-line", "nonsense")),
	))

	properties.TestingRun(t)
}

func anyConsts(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
