package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleScene() *SceneNode {
	return &SceneNode{
		Name:  "chair",
		Shape: ShapeGroup,
		Children: []*SceneNode{
			{Name: "seat", Component: ComponentSeat, Shape: ShapeBox},
			{Name: "leg-1", Component: ComponentLeg, Shape: ShapeCylinder},
			{Name: "leg-2", Component: ComponentLeg, Shape: ShapeCylinder},
		},
	}
}

func TestSceneNodeCounts(t *testing.T) {
	root := sampleScene()

	assert.Equal(t, 4, root.CountNodes())
	// Group costs nothing, box 12, two cylinders 64 each.
	assert.Equal(t, 12+2*64, root.PolygonCount())
}

func TestSceneNodeNilSafety(t *testing.T) {
	var n *SceneNode
	assert.Zero(t, n.CountNodes())
	assert.Nil(t, n.Clone())
	n.Walk(func(*SceneNode) { t.Fatal("walk on nil must not visit") })
}

func TestSceneNodeCloneIsDeep(t *testing.T) {
	root := sampleScene()
	clone := root.Clone()

	clone.Children[0].Material = "wood-oak"
	clone.Children = append(clone.Children, &SceneNode{Name: "extra"})

	assert.Empty(t, root.Children[0].Material)
	assert.Len(t, root.Children, 3)
}

func TestParametricParametersCloneIsDeep(t *testing.T) {
	p := ParametricParameters{
		Type:             "chair",
		CulturalElements: []string{"a"},
		ColorPalette:     []string{"b"},
	}
	c := p.Clone()
	c.CulturalElements[0] = "mutated"
	c.ColorPalette[0] = "mutated"

	assert.Equal(t, "a", p.CulturalElements[0])
	assert.Equal(t, "b", p.ColorPalette[0])
}

func TestGenerationResultCloneIsDeep(t *testing.T) {
	r := &GenerationResult{
		Geometry:  sampleScene(),
		Materials: []Material{{Name: "wood-oak", Component: ComponentSeat}},
		Metadata:  Metadata{ID: "id-1", UsageGuidelines: []string{"g"}},
	}

	c := r.Clone()
	c.Geometry.Children[0].Material = "mutated"
	c.Materials[0].Name = "mutated"
	c.Metadata.UsageGuidelines[0] = "mutated"

	assert.Empty(t, r.Geometry.Children[0].Material)
	assert.Equal(t, "wood-oak", r.Materials[0].Name)
	assert.Equal(t, "g", r.Metadata.UsageGuidelines[0])

	var nilResult *GenerationResult
	assert.Nil(t, nilResult.Clone())
}

func TestRecompute(t *testing.T) {
	s := AuthenticityScore{
		Proportions: 1, Materials: 0.5, Aesthetics: 0.5,
		CulturalElements: 0, Construction: 0.5,
	}
	s.Recompute()
	assert.InDelta(t, 0.5, s.Overall, 1e-9)
}

func TestRequestValidate(t *testing.T) {
	req := &UserFurnitureRequest{Culture: "japanese", GuestCount: 4}
	require.NoError(t, req.Validate())

	req.GuestCount = 0
	err := req.Validate()
	require.Error(t, err)
	assert.True(t, IsErrorCode(err, ErrInvalidRequest))

	req = &UserFurnitureRequest{GuestCount: 4}
	assert.True(t, IsErrorCode(req.Validate(), ErrInvalidRequest))
}
