package engine

import (
	"github.com/BaSui01/formflow/culture"
	"github.com/BaSui01/formflow/types"
)

// maxCulturalElementInjection caps how many profile decorative elements the
// corrector injects when the request carries none that the culture knows.
const maxCulturalElementInjection = 3

// Corrector nudges low-scoring parameters toward the culturally preferred
// values. It runs a single corrective pass per invocation; the engine
// re-scores once after correction and keeps the better evaluation.
type Corrector struct {
	threshold float64
}

// NewCorrector creates a corrector with the given sub-score threshold
// (on the [0,1] scale).
func NewCorrector(threshold float64) *Corrector {
	return &Corrector{threshold: threshold}
}

// Correct returns an adjusted copy of params along with a flag reporting
// whether anything changed. Only sub-scores below the threshold trigger
// their corresponding correction; a params value with no applicable
// correction is returned unchanged.
func (c *Corrector) Correct(params types.ParametricParameters, score types.AuthenticityScore, profile types.CulturalProfile) (types.ParametricParameters, bool) {
	out := params.Clone()
	changed := false

	if score.Materials < c.threshold && len(profile.Materials.Preferred) > 0 {
		if out.PrimaryMaterial != profile.Materials.Preferred[0] {
			out.PrimaryMaterial = profile.Materials.Preferred[0]
			changed = true
		}
	}

	if score.Proportions < c.threshold {
		if expected, ok := culture.ExpectedHeight(profile, out); ok && expected > 0 && out.Height != expected {
			out.Height = expected
			changed = true
		}
	}

	if score.CulturalElements < c.threshold {
		elements := profile.Aesthetics.DecorativeElements
		if len(elements) > maxCulturalElementInjection {
			elements = elements[:maxCulturalElementInjection]
		}
		if len(elements) > 0 {
			out.CulturalElements = append([]string(nil), elements...)
			changed = true
		}
	}

	return out, changed
}
