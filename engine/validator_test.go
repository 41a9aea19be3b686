package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/BaSui01/formflow/types"
)

func validChair() types.ParametricParameters {
	return types.ParametricParameters{
		Type:            "chair",
		Culture:         "japanese",
		Width:           0.5,
		Height:          0.45,
		Depth:           0.5,
		PrimaryMaterial: "wood-oak",
	}
}

func TestValidate(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name   string
		mutate func(*types.ParametricParameters)
		want   bool
	}{
		{"valid chair", func(p *types.ParametricParameters) {}, true},
		{"width below band", func(p *types.ParametricParameters) { p.Width = 0.1 }, false},
		{"width above band", func(p *types.ParametricParameters) { p.Width = 2.0 }, false},
		{"height zero", func(p *types.ParametricParameters) { p.Height = 0 }, false},
		{"negative depth", func(p *types.ParametricParameters) { p.Depth = -0.5 }, false},
		{"missing material", func(p *types.ParametricParameters) { p.PrimaryMaterial = "" }, false},
		{"intensity above one", func(p *types.ParametricParameters) { p.DecorativeIntensity = 1.5 }, false},
		{"intensity negative", func(p *types.ParametricParameters) { p.DecorativeIntensity = -0.1 }, false},
		{"unknown type uses generic bounds", func(p *types.ParametricParameters) {
			p.Type = "wardrobe"
			p.Height = 2.5
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validChair()
			tt.mutate(&p)
			assert.Equal(t, tt.want, v.Validate(p))
		})
	}
}

func TestAdjustInvalidParameters(t *testing.T) {
	v := NewValidator()

	p := validChair()
	p.Width = 9.0
	p.Height = -1.0
	p.PrimaryMaterial = ""
	p.DecorativeIntensity = 3.0

	out := v.AdjustInvalidParameters(p)

	assert.Equal(t, 1.0, out.Width)  // chair width band max
	assert.Equal(t, 0.3, out.Height) // chair height band min
	assert.Equal(t, "wood-oak", out.PrimaryMaterial)
	assert.Equal(t, 1.0, out.DecorativeIntensity)
	assert.True(t, v.Validate(out))

	// Input is untouched.
	assert.Equal(t, 9.0, p.Width)
}

func TestAdjustLeavesValidParametersAlone(t *testing.T) {
	v := NewValidator()
	p := validChair()

	out := v.AdjustInvalidParameters(p)
	require.Equal(t, p, out)
}

// Adjustment is total: whatever garbage comes in, the output passes
// validation.
func TestAdjustInvalidParametersTotal(t *testing.T) {
	v := NewValidator()
	dim := rapid.OneOf(
		rapid.Float64Range(-100, 100),
		rapid.Just(math.NaN()),
		rapid.Just(math.Inf(1)),
		rapid.Just(math.Inf(-1)),
	)

	rapid.Check(t, func(rt *rapid.T) {
		p := types.ParametricParameters{
			Type:                rapid.SampledFrom([]string{"chair", "bench", "stool", "table", "coffee-table", "desk", "lamp", "weird"}).Draw(rt, "type"),
			Culture:             rapid.SampledFrom([]string{"japanese", "modern", ""}).Draw(rt, "culture"),
			Width:               dim.Draw(rt, "width"),
			Height:              dim.Draw(rt, "height"),
			Depth:               dim.Draw(rt, "depth"),
			PrimaryMaterial:     rapid.SampledFrom([]string{"", "wood-oak", "metal-steel"}).Draw(rt, "material"),
			DecorativeIntensity: dim.Draw(rt, "intensity"),
		}

		out := v.AdjustInvalidParameters(p)
		if !v.Validate(out) {
			rt.Fatalf("adjusted parameters failed validation: %+v", out)
		}
	})
}
