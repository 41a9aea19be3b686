package templates

import (
	"fmt"

	"github.com/BaSui01/formflow/types"
)

// Bench generates backless multi-seat benches with slab supports.
type Bench struct{}

// NewBench creates the bench template.
func NewBench() *Bench { return &Bench{} }

// ValidateParameters implements engine.Template.
func (b *Bench) ValidateParameters(params types.ParametricParameters) bool {
	return validDimensions(params)
}

// CulturalProportions implements engine.Template.
func (b *Bench) CulturalProportions(profile types.CulturalProfile) types.Proportions {
	return profile.Proportions
}

// GenerateGeometry implements engine.Template.
func (b *Bench) GenerateGeometry(params types.ParametricParameters) (*types.SceneNode, error) {
	if !validDimensions(params) {
		return nil, errInvalidDimensions("bench", params)
	}

	seatThickness := 0.05
	slabThickness := 0.04
	seatY := params.Height

	root := &types.SceneNode{
		Name:  "bench",
		Shape: types.ShapeGroup,
	}

	root.Children = append(root.Children, &types.SceneNode{
		Name:      "seat",
		Component: types.ComponentSeat,
		Shape:     types.ShapeBox,
		Size:      types.Vec3{X: params.Width, Y: seatThickness, Z: params.Depth},
		Position:  types.Vec3{Y: seatY},
	})

	// Two slab supports instead of corner legs.
	for i, x := range []float64{params.Width/2 - 0.1, -(params.Width/2 - 0.1)} {
		root.Children = append(root.Children, &types.SceneNode{
			Name:      fmt.Sprintf("support-%d", i+1),
			Component: types.ComponentLeg,
			Shape:     types.ShapeBox,
			Size:      types.Vec3{X: slabThickness, Y: seatY, Z: params.Depth * 0.9},
			Position:  types.Vec3{X: x, Y: seatY / 2},
		})
	}

	if wantsAccent(params) {
		root.Children = append(root.Children, accentNode(params, seatY+0.01))
	}

	return root, nil
}

// GenerateMetadata implements engine.Template.
func (b *Bench) GenerateMetadata(params types.ParametricParameters, profile types.CulturalProfile) (types.Metadata, error) {
	description := fmt.Sprintf("%s bench, %.2fm wide seating at %.2fm, %s construction",
		profile.Name, params.Width, params.Height, params.PrimaryMaterial)
	return buildMetadata(params, profile, "Bench", description), nil
}
