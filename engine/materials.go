package engine

import (
	"strings"

	"github.com/BaSui01/formflow/types"
)

// fallbackRoughness is the procedurally computed default used when a
// material family has no known surface properties. Texture/asset loading is
// an external concern; the engine always has a usable synchronous material.
const fallbackRoughness = 0.65

// buildMaterials derives the material list for a piece: the primary material
// for structural components, the secondary (or primary) for legs, and a
// cultural accent material from the profile's aesthetic vocabulary.
func buildMaterials(params types.ParametricParameters, profile types.CulturalProfile) []types.Material {
	finish := ""
	if len(profile.Aesthetics.SurfaceFinishes) > 0 {
		finish = profile.Aesthetics.SurfaceFinishes[0]
	}

	legMaterial := params.SecondaryMaterial
	if legMaterial == "" {
		legMaterial = params.PrimaryMaterial
	}

	accentColor := ""
	if len(profile.Aesthetics.ColorPalette) > 0 {
		accentColor = profile.Aesthetics.ColorPalette[0]
	}

	materials := []types.Material{
		newMaterial(params.PrimaryMaterial, types.ComponentSeat, finish),
		newMaterial(params.PrimaryMaterial, types.ComponentTop, finish),
		newMaterial(params.PrimaryMaterial, types.ComponentFrame, finish),
		newMaterial(params.PrimaryMaterial, types.ComponentBackrest, finish),
		newMaterial(params.PrimaryMaterial, types.ComponentShade, finish),
		newMaterial(legMaterial, types.ComponentLeg, finish),
	}

	accent := newMaterial(params.PrimaryMaterial, types.ComponentAccent, finish)
	accent.Name = "accent-" + profile.Name
	if accentColor != "" {
		accent.BaseColor = accentColor
	}
	materials = append(materials, accent)

	return materials
}

// newMaterial derives surface properties from the material family prefix.
func newMaterial(name string, component types.ComponentTag, finish string) types.Material {
	m := types.Material{
		Name:      name,
		Component: component,
		BaseColor: "natural",
		Roughness: fallbackRoughness,
		Metallic:  0,
		Finish:    finish,
	}

	switch {
	case strings.HasPrefix(name, "wood-"), name == "bamboo", strings.HasPrefix(name, "plywood"):
		m.Roughness = 0.6
	case strings.HasPrefix(name, "metal-"), name == "aluminum", name == "brass", name == "wrought-iron":
		m.Roughness = 0.35
		m.Metallic = 0.9
		m.BaseColor = "metallic-grey"
	case strings.HasPrefix(name, "glass-"):
		m.Roughness = 0.05
		m.BaseColor = "clear"
	case strings.HasPrefix(name, "marble-"), name == "concrete", name == "terracotta":
		m.Roughness = 0.45
		m.BaseColor = "stone"
	case name == "velvet", name == "linen", name == "silk", strings.HasPrefix(name, "wool-"):
		m.Roughness = 0.85
		m.BaseColor = "textile"
	}

	return m
}

// applyMaterials walks the scene tree and binds material names to nodes by
// component tag. Nodes without a tag, and tags without a material, are left
// untouched.
func applyMaterials(root *types.SceneNode, materials []types.Material) {
	byComponent := make(map[types.ComponentTag]string, len(materials))
	for _, m := range materials {
		byComponent[m.Component] = m.Name
	}

	root.Walk(func(n *types.SceneNode) {
		if n.Component == "" {
			return
		}
		if name, ok := byComponent[n.Component]; ok {
			n.Material = name
		}
	})
}

// estimateMemoryBytes approximates the in-memory footprint of a generated
// scene: per-node struct overhead plus vertex data proportional to the
// triangle count.
func estimateMemoryBytes(root *types.SceneNode) int64 {
	return int64(root.CountNodes())*160 + int64(root.PolygonCount())*36
}
