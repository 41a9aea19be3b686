package templates

import (
	"fmt"

	"github.com/BaSui01/formflow/types"
)

// Table generates flat-surface pieces. One implementation serves the
// "table", "coffee-table", "desk" and "side-table" tags; the tag only
// changes naming and which profile proportion the engine corrects against.
type Table struct {
	tag  string
	noun string
}

// NewTable creates a table template for the given type tag.
func NewTable(tag string) *Table {
	noun := capitalize(tag)
	switch tag {
	case "coffee-table":
		noun = "Coffee Table"
	case "side-table":
		noun = "Side Table"
	}
	return &Table{tag: tag, noun: noun}
}

// ValidateParameters implements engine.Template.
func (t *Table) ValidateParameters(params types.ParametricParameters) bool {
	return validDimensions(params)
}

// CulturalProportions implements engine.Template.
func (t *Table) CulturalProportions(profile types.CulturalProfile) types.Proportions {
	return profile.Proportions
}

// GenerateGeometry implements engine.Template.
func (t *Table) GenerateGeometry(params types.ParametricParameters) (*types.SceneNode, error) {
	if !validDimensions(params) {
		return nil, errInvalidDimensions(t.tag, params)
	}

	topThickness := 0.035
	legSide := 0.05
	topY := params.Height

	root := &types.SceneNode{
		Name:  t.tag,
		Shape: types.ShapeGroup,
	}

	root.Children = append(root.Children, &types.SceneNode{
		Name:      "top",
		Component: types.ComponentTop,
		Shape:     types.ShapeBox,
		Size:      types.Vec3{X: params.Width, Y: topThickness, Z: params.Depth},
		Position:  types.Vec3{Y: topY},
	})

	for i, offset := range cornerOffsets(params.Width, params.Depth, legSide*1.5) {
		root.Children = append(root.Children, &types.SceneNode{
			Name:      fmt.Sprintf("leg-%d", i+1),
			Component: types.ComponentLeg,
			Shape:     types.ShapeBox,
			Size:      types.Vec3{X: legSide, Y: topY, Z: legSide},
			Position:  types.Vec3{X: offset.X, Y: topY / 2, Z: offset.Z},
		})
	}

	// Low tables get a stretcher frame for rigidity.
	if params.Height < 0.55 {
		root.Children = append(root.Children, &types.SceneNode{
			Name:      "stretcher",
			Component: types.ComponentFrame,
			Shape:     types.ShapeBox,
			Size:      types.Vec3{X: params.Width * 0.8, Y: 0.03, Z: 0.03},
			Position:  types.Vec3{Y: params.Height * 0.25},
		})
	}

	if wantsAccent(params) {
		root.Children = append(root.Children, accentNode(params, topY+0.01))
	}

	return root, nil
}

// GenerateMetadata implements engine.Template.
func (t *Table) GenerateMetadata(params types.ParametricParameters, profile types.CulturalProfile) (types.Metadata, error) {
	description := fmt.Sprintf("%s %s, %.2fx%.2fm surface at %.2fm, %s construction",
		profile.Name, t.tag, params.Width, params.Depth, params.Height, params.PrimaryMaterial)
	return buildMetadata(params, profile, t.noun, description), nil
}
