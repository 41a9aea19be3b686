// Package templates provides the built-in furniture template generators
// registered with the engine: chair, bench, table variants, and lamp. Each
// template turns validated parameters into a component-tagged scene graph
// and catalog metadata; all cultural judgement stays in the engine.
package templates

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BaSui01/formflow/types"
)

// Cost rates per cubic meter of material, by family prefix. Unmatched
// materials fall back to baseRate.
var (
	materialRates = map[string]int64{
		"wood":    900,
		"bamboo":  500,
		"paper":   300,
		"metal":   1400,
		"glass":   1700,
		"marble":  4200,
		"leather": 2500,
		"velvet":  1900,
		"lacquer": 2200,
		"brass":   2100,
	}
	baseRate = decimal.NewFromInt(800)
)

var craftsmanshipMultipliers = map[types.Craftsmanship]decimal.Decimal{
	types.CraftsmanshipSimple:     decimal.NewFromInt(1),
	types.CraftsmanshipRefined:    decimal.RequireFromString("1.8"),
	types.CraftsmanshipMasterwork: decimal.RequireFromString("3.2"),
}

// estimateCost prices a piece from its bounding volume, material family,
// craftsmanship multiplier, and decorative intensity surcharge.
func estimateCost(params types.ParametricParameters) decimal.Decimal {
	volume := decimal.NewFromFloat(params.Width * params.Height * params.Depth)

	rate := baseRate
	family, _, _ := strings.Cut(params.PrimaryMaterial, "-")
	if r, ok := materialRates[family]; ok {
		rate = decimal.NewFromInt(r)
	}

	mult, ok := craftsmanshipMultipliers[params.CraftsmanshipLevel]
	if !ok {
		mult = decimal.NewFromInt(1)
	}

	surcharge := decimal.NewFromFloat(1 + params.DecorativeIntensity)

	return volume.Mul(rate).Mul(mult).Mul(surcharge).Round(2)
}

// buildMetadata assembles the shared metadata shape all templates use.
func buildMetadata(params types.ParametricParameters, profile types.CulturalProfile, noun, description string) types.Metadata {
	guidelines := []string{
		fmt.Sprintf("allow %.1fm personal space around the piece", profile.Ergonomics.PersonalSpace),
	}
	if profile.Ergonomics.FloorSeating {
		guidelines = append(guidelines, "designed for floor-level seating arrangements")
	}
	if profile.Ergonomics.FormalPosture {
		guidelines = append(guidelines, "suited to formal, upright seating posture")
	}

	return types.Metadata{
		ID:                   uuid.NewString(),
		Name:                 displayName(profile.Name, noun),
		Description:          description,
		CulturalSignificance: significance(params, profile),
		UsageGuidelines:      guidelines,
		EstimatedCost:        estimateCost(params),
	}
}

// significance picks the symbolism of the first requested element the
// profile knows, falling back to a generic line.
func significance(params types.ParametricParameters, profile types.CulturalProfile) string {
	for _, el := range params.CulturalElements {
		if meaning, ok := profile.Aesthetics.Symbolism[el]; ok {
			return fmt.Sprintf("%s: %s", el, meaning)
		}
	}
	return fmt.Sprintf("built in the %s tradition", profile.Name)
}

func displayName(culture, noun string) string {
	return capitalize(culture) + " " + noun
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// validDimensions is the shared template-side precondition: strictly
// positive dimensions and a sane decorative intensity.
func validDimensions(params types.ParametricParameters) bool {
	return params.Width > 0 && params.Height > 0 && params.Depth > 0 &&
		params.DecorativeIntensity >= 0 && params.DecorativeIntensity <= 1
}

// errInvalidDimensions builds the fatal generator error for degenerate input.
func errInvalidDimensions(typeTag string, params types.ParametricParameters) error {
	return fmt.Errorf("%s geometry requires positive dimensions, got %.2fx%.2fx%.2f",
		typeTag, params.Width, params.Height, params.Depth)
}

// wantsAccent reports whether the piece carries enough decorative intent to
// earn a cultural accent node.
func wantsAccent(params types.ParametricParameters) bool {
	return params.DecorativeIntensity >= 0.5 || len(params.CulturalElements) > 0
}

// accentNode builds the small decorative node shared by all templates.
func accentNode(params types.ParametricParameters, y float64) *types.SceneNode {
	name := "accent"
	if len(params.CulturalElements) > 0 {
		name = params.CulturalElements[0]
	}
	return &types.SceneNode{
		Name:      name,
		Component: types.ComponentAccent,
		Shape:     types.ShapeBox,
		Size:      types.Vec3{X: params.Width * 0.3, Y: 0.02, Z: 0.02},
		Position:  types.Vec3{Y: y},
	}
}
