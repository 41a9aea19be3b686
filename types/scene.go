package types

// ComponentTag labels a scene node with its functional role. Component tags
// are the only contract the engine has with geometry internals: the material
// application pass binds materials by tag and never interprets shapes.
type ComponentTag string

const (
	ComponentSeat     ComponentTag = "seat"
	ComponentBackrest ComponentTag = "backrest"
	ComponentLeg      ComponentTag = "leg"
	ComponentTop      ComponentTag = "top"
	ComponentFrame    ComponentTag = "frame"
	ComponentShade    ComponentTag = "shade"
	ComponentAccent   ComponentTag = "cultural-accent"
)

// ShapeKind is the primitive kind of a scene node.
type ShapeKind string

const (
	ShapeBox      ShapeKind = "box"
	ShapeCylinder ShapeKind = "cylinder"
	ShapeGroup    ShapeKind = "group"
)

// Vec3 is a position, size, or rotation triple.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Material is a renderable surface description produced by a template and
// bound to components by the engine's material pass.
type Material struct {
	Name      string       `json:"name"`
	Component ComponentTag `json:"component"`
	BaseColor string       `json:"base_color"`
	Roughness float64      `json:"roughness"`
	Metallic  float64      `json:"metallic"`
	Finish    string       `json:"finish,omitempty"`
}

// SceneNode is an opaque scene-graph node. The engine only traverses the
// tree to apply materials by Component tag; everything else is template
// internals.
type SceneNode struct {
	Name      string       `json:"name"`
	Component ComponentTag `json:"component,omitempty"`
	Shape     ShapeKind    `json:"shape"`
	Size      Vec3         `json:"size,omitempty"`
	Position  Vec3         `json:"position,omitempty"`
	Rotation  Vec3         `json:"rotation,omitempty"`
	Material  string       `json:"material,omitempty"`
	Children  []*SceneNode `json:"children,omitempty"`
}

// Walk visits the node and all descendants depth-first.
func (n *SceneNode) Walk(fn func(*SceneNode)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// CountNodes returns the number of nodes in the subtree rooted at n.
func (n *SceneNode) CountNodes() int {
	if n == nil {
		return 0
	}
	count := 0
	n.Walk(func(*SceneNode) { count++ })
	return count
}

// PolygonCount estimates the triangle count of the subtree. Boxes cost 12
// triangles, cylinders 64; groups cost nothing themselves.
func (n *SceneNode) PolygonCount() int {
	total := 0
	n.Walk(func(node *SceneNode) {
		switch node.Shape {
		case ShapeBox:
			total += 12
		case ShapeCylinder:
			total += 64
		}
	})
	return total
}

// Clone returns a deep copy of the subtree.
func (n *SceneNode) Clone() *SceneNode {
	if n == nil {
		return nil
	}
	out := *n
	if n.Children != nil {
		out.Children = make([]*SceneNode, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = c.Clone()
		}
	}
	return &out
}
