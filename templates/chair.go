package templates

import (
	"fmt"

	"github.com/BaSui01/formflow/types"
)

// Chair generates seat-and-backrest chairs. Seat height follows the
// requested height; the backrest rises above it at the profile's angle.
type Chair struct{}

// NewChair creates the chair template.
func NewChair() *Chair { return &Chair{} }

// ValidateParameters implements engine.Template.
func (c *Chair) ValidateParameters(params types.ParametricParameters) bool {
	return validDimensions(params)
}

// CulturalProportions implements engine.Template.
func (c *Chair) CulturalProportions(profile types.CulturalProfile) types.Proportions {
	return profile.Proportions
}

// GenerateGeometry implements engine.Template.
func (c *Chair) GenerateGeometry(params types.ParametricParameters) (*types.SceneNode, error) {
	if !validDimensions(params) {
		return nil, errInvalidDimensions("chair", params)
	}

	seatThickness := 0.04
	legRadius := 0.022
	seatY := params.Height

	root := &types.SceneNode{
		Name:  "chair",
		Shape: types.ShapeGroup,
	}

	root.Children = append(root.Children, &types.SceneNode{
		Name:      "seat",
		Component: types.ComponentSeat,
		Shape:     types.ShapeBox,
		Size:      types.Vec3{X: params.Width, Y: seatThickness, Z: params.Depth},
		Position:  types.Vec3{Y: seatY},
	})

	for i, offset := range cornerOffsets(params.Width, params.Depth, legRadius*2) {
		root.Children = append(root.Children, &types.SceneNode{
			Name:      fmt.Sprintf("leg-%d", i+1),
			Component: types.ComponentLeg,
			Shape:     types.ShapeCylinder,
			Size:      types.Vec3{X: legRadius, Y: seatY, Z: legRadius},
			Position:  types.Vec3{X: offset.X, Y: seatY / 2, Z: offset.Z},
		})
	}

	backHeight := params.Height * 0.9
	root.Children = append(root.Children, &types.SceneNode{
		Name:      "backrest",
		Component: types.ComponentBackrest,
		Shape:     types.ShapeBox,
		Size:      types.Vec3{X: params.Width, Y: backHeight, Z: seatThickness},
		Position:  types.Vec3{Y: seatY + backHeight/2, Z: -params.Depth / 2},
	})

	if wantsAccent(params) {
		root.Children = append(root.Children, accentNode(params, seatY+backHeight*0.8))
	}

	return root, nil
}

// GenerateMetadata implements engine.Template.
func (c *Chair) GenerateMetadata(params types.ParametricParameters, profile types.CulturalProfile) (types.Metadata, error) {
	description := fmt.Sprintf("%s chair, %.2fm seat height, %s construction",
		profile.Name, params.Height, params.PrimaryMaterial)
	return buildMetadata(params, profile, "Chair", description), nil
}

// cornerOffsets places four supports inset from the footprint corners.
func cornerOffsets(width, depth, inset float64) []types.Vec3 {
	x := width/2 - inset
	z := depth/2 - inset
	return []types.Vec3{
		{X: x, Z: z},
		{X: -x, Z: z},
		{X: x, Z: -z},
		{X: -x, Z: -z},
	}
}
