package engine

import (
	"math"

	"github.com/BaSui01/formflow/types"
)

// dimensionBand is an inclusive [Min, Max] band in meters.
type dimensionBand struct {
	Min float64
	Max float64
}

func (b dimensionBand) contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

func (b dimensionBand) clamp(v float64) float64 {
	// NaN has no order; pin it to the lower bound so adjustment stays total.
	if math.IsNaN(v) {
		return b.Min
	}
	if v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}

// typeBounds holds the per-furniture-type dimension bands. Bounds are
// culture-independent; cultural fit is the scorer's concern.
type typeBounds struct {
	Width  dimensionBand
	Height dimensionBand
	Depth  dimensionBand
}

// genericBounds applies to type tags with no dedicated entry.
var genericBounds = typeBounds{
	Width:  dimensionBand{0.1, 5.0},
	Height: dimensionBand{0.1, 3.0},
	Depth:  dimensionBand{0.1, 5.0},
}

// defaultMaterial is substituted when a request carries no primary material.
const defaultMaterial = "wood-oak"

// Validator checks parameters against per-type numeric bounds and clamps
// out-of-range values. It is stateless and safe for concurrent use.
type Validator struct {
	bounds map[string]typeBounds
}

// NewValidator creates a validator with the built-in bounds table.
func NewValidator() *Validator {
	return &Validator{
		bounds: map[string]typeBounds{
			"chair": {
				Width:  dimensionBand{0.3, 1.0},
				Height: dimensionBand{0.3, 1.4},
				Depth:  dimensionBand{0.3, 1.0},
			},
			"bench": {
				Width:  dimensionBand{0.8, 3.0},
				Height: dimensionBand{0.3, 1.0},
				Depth:  dimensionBand{0.3, 0.8},
			},
			"stool": {
				Width:  dimensionBand{0.25, 0.6},
				Height: dimensionBand{0.25, 0.9},
				Depth:  dimensionBand{0.25, 0.6},
			},
			"table": {
				Width:  dimensionBand{0.6, 3.0},
				Height: dimensionBand{0.6, 1.1},
				Depth:  dimensionBand{0.5, 1.6},
			},
			"coffee-table": {
				Width:  dimensionBand{0.6, 3.0},
				Height: dimensionBand{0.35, 0.5},
				Depth:  dimensionBand{0.4, 1.2},
			},
			"desk": {
				Width:  dimensionBand{0.8, 2.5},
				Height: dimensionBand{0.6, 0.85},
				Depth:  dimensionBand{0.4, 1.0},
			},
			"lamp": {
				Width:  dimensionBand{0.1, 0.8},
				Height: dimensionBand{0.2, 2.2},
				Depth:  dimensionBand{0.1, 0.8},
			},
		},
	}
}

func (v *Validator) boundsFor(typeTag string) typeBounds {
	if b, ok := v.bounds[typeTag]; ok {
		return b
	}
	return genericBounds
}

// Validate reports whether the parameters pass the per-type bounds check.
func (v *Validator) Validate(p types.ParametricParameters) bool {
	b := v.boundsFor(p.Type)
	if !b.Width.contains(p.Width) || !b.Height.contains(p.Height) || !b.Depth.contains(p.Depth) {
		return false
	}
	if p.DecorativeIntensity < 0 || p.DecorativeIntensity > 1 {
		return false
	}
	if p.PrimaryMaterial == "" {
		return false
	}
	return true
}

// AdjustInvalidParameters clamps each dimension into its valid band and the
// decorative intensity into [0,1]. Pure and total: it never fails, and its
// output always passes Validate.
func (v *Validator) AdjustInvalidParameters(p types.ParametricParameters) types.ParametricParameters {
	b := v.boundsFor(p.Type)
	out := p.Clone()
	out.Width = b.Width.clamp(p.Width)
	out.Height = b.Height.clamp(p.Height)
	out.Depth = b.Depth.clamp(p.Depth)
	if math.IsNaN(out.DecorativeIntensity) || out.DecorativeIntensity < 0 {
		out.DecorativeIntensity = 0
	} else if out.DecorativeIntensity > 1 {
		out.DecorativeIntensity = 1
	}
	if out.PrimaryMaterial == "" {
		out.PrimaryMaterial = defaultMaterial
	}
	return out
}
