package templates

import (
	"fmt"

	"github.com/BaSui01/formflow/types"
)

// Lamp generates floor lamps: base, pole, shade.
type Lamp struct{}

// NewLamp creates the lamp template.
func NewLamp() *Lamp { return &Lamp{} }

// ValidateParameters implements engine.Template.
func (l *Lamp) ValidateParameters(params types.ParametricParameters) bool {
	return validDimensions(params)
}

// CulturalProportions implements engine.Template.
func (l *Lamp) CulturalProportions(profile types.CulturalProfile) types.Proportions {
	return profile.Proportions
}

// GenerateGeometry implements engine.Template.
func (l *Lamp) GenerateGeometry(params types.ParametricParameters) (*types.SceneNode, error) {
	if !validDimensions(params) {
		return nil, errInvalidDimensions("lamp", params)
	}

	baseHeight := 0.04
	shadeHeight := params.Height * 0.25
	poleHeight := params.Height - baseHeight - shadeHeight

	root := &types.SceneNode{
		Name:  "lamp",
		Shape: types.ShapeGroup,
	}

	root.Children = append(root.Children,
		&types.SceneNode{
			Name:      "base",
			Component: types.ComponentFrame,
			Shape:     types.ShapeCylinder,
			Size:      types.Vec3{X: params.Width / 2, Y: baseHeight, Z: params.Depth / 2},
			Position:  types.Vec3{Y: baseHeight / 2},
		},
		&types.SceneNode{
			Name:      "pole",
			Component: types.ComponentFrame,
			Shape:     types.ShapeCylinder,
			Size:      types.Vec3{X: 0.015, Y: poleHeight, Z: 0.015},
			Position:  types.Vec3{Y: baseHeight + poleHeight/2},
		},
		&types.SceneNode{
			Name:      "shade",
			Component: types.ComponentShade,
			Shape:     types.ShapeCylinder,
			Size:      types.Vec3{X: params.Width / 2, Y: shadeHeight, Z: params.Depth / 2},
			Position:  types.Vec3{Y: params.Height - shadeHeight/2},
		},
	)

	if wantsAccent(params) {
		root.Children = append(root.Children, accentNode(params, params.Height*0.6))
	}

	return root, nil
}

// GenerateMetadata implements engine.Template.
func (l *Lamp) GenerateMetadata(params types.ParametricParameters, profile types.CulturalProfile) (types.Metadata, error) {
	description := fmt.Sprintf("%s floor lamp, %.2fm tall, %s construction",
		profile.Name, params.Height, params.PrimaryMaterial)
	return buildMetadata(params, profile, "Floor Lamp", description), nil
}
