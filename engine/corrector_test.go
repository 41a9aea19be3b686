package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BaSui01/formflow/culture"
	"github.com/BaSui01/formflow/types"
)

func TestCorrectSubstitutesPreferredMaterial(t *testing.T) {
	corrector := NewCorrector(0.7)
	profile := culture.NewStore().GetOrDefault("japanese")

	params := types.ParametricParameters{
		Type:            "chair",
		Height:          0.38,
		PrimaryMaterial: "metal-steel",
	}
	score := types.AuthenticityScore{
		Proportions: 1.0, Materials: 0.05, Aesthetics: 1.0,
		CulturalElements: 1.0, Construction: 1.0,
	}

	out, changed := corrector.Correct(params, score, profile)

	require.True(t, changed)
	assert.Equal(t, "wood-oak", out.PrimaryMaterial)
	// Input untouched.
	assert.Equal(t, "metal-steel", params.PrimaryMaterial)
}

func TestCorrectOverwritesHeight(t *testing.T) {
	corrector := NewCorrector(0.7)
	profile := culture.NewStore().GetOrDefault("japanese")

	params := types.ParametricParameters{
		Type:            "chair",
		Height:          0.60,
		PrimaryMaterial: "wood-oak",
	}
	score := types.AuthenticityScore{
		Proportions: 0.5, Materials: 1.0, Aesthetics: 1.0,
		CulturalElements: 1.0, Construction: 1.0,
	}

	out, changed := corrector.Correct(params, score, profile)

	require.True(t, changed)
	assert.InDelta(t, 0.38, out.Height, 1e-9)
}

func TestCorrectInjectsCulturalElements(t *testing.T) {
	corrector := NewCorrector(0.7)
	profile := culture.NewStore().GetOrDefault("japanese")

	params := types.ParametricParameters{
		Type:             "chair",
		Height:           0.38,
		PrimaryMaterial:  "wood-oak",
		CulturalElements: []string{"doric-column"},
	}
	score := types.AuthenticityScore{
		Proportions: 1.0, Materials: 1.0, Aesthetics: 1.0,
		CulturalElements: 0.0, Construction: 1.0,
	}

	out, changed := corrector.Correct(params, score, profile)

	require.True(t, changed)
	// At most three profile elements replace the unrecognized set.
	assert.Equal(t, []string{"kumiko-lattice", "tokonoma-alcove", "shoji-panel"}, out.CulturalElements)
	assert.Equal(t, []string{"doric-column"}, params.CulturalElements)
}

func TestCorrectLeavesHighScoresAlone(t *testing.T) {
	corrector := NewCorrector(0.7)
	profile := culture.NewStore().GetOrDefault("japanese")

	params := types.ParametricParameters{
		Type:            "chair",
		Height:          0.38,
		PrimaryMaterial: "wood-oak",
	}
	score := types.AuthenticityScore{
		Proportions: 0.9, Materials: 0.9, Aesthetics: 0.9,
		CulturalElements: 0.9, Construction: 0.9,
	}

	out, changed := corrector.Correct(params, score, profile)

	assert.False(t, changed)
	assert.Equal(t, params, out)
}

func TestCorrectNoApplicableCorrection(t *testing.T) {
	corrector := NewCorrector(0.7)
	profile := culture.NewStore().GetOrDefault("japanese")

	// Lamp has no expected height, the material is already the preferred
	// one, and elements score above threshold: nothing to do even though
	// proportions are low.
	params := types.ParametricParameters{
		Type:            "lamp",
		Height:          1.5,
		PrimaryMaterial: "wood-oak",
	}
	score := types.AuthenticityScore{
		Proportions: 0.2, Materials: 0.9, Aesthetics: 0.2,
		CulturalElements: 0.9, Construction: 0.9,
	}

	out, changed := corrector.Correct(params, score, profile)

	assert.False(t, changed)
	assert.Equal(t, params, out)
}
