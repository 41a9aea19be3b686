package engine

import (
	"github.com/BaSui01/formflow/types"
)

// Template is the generator capability contract the engine dispatches to.
// Templates own all geometry and metadata construction; the engine never
// inspects a scene graph beyond traversing it to apply materials by
// component tag.
type Template interface {
	// GenerateGeometry builds the scene graph for the validated parameters.
	// An error here is fatal for the piece: geometry construction has no
	// idempotent retry semantics, so the engine propagates it unretried.
	GenerateGeometry(params types.ParametricParameters) (*types.SceneNode, error)

	// GenerateMetadata builds catalog metadata for the piece.
	GenerateMetadata(params types.ParametricParameters, profile types.CulturalProfile) (types.Metadata, error)

	// ValidateParameters reports whether the template can generate from the
	// given parameters as-is. A false return sends the parameters through
	// the validator's adjustment pass, never to the caller as an error.
	ValidateParameters(params types.ParametricParameters) bool

	// CulturalProportions returns the proportions the template targets for
	// the given profile.
	CulturalProportions(profile types.CulturalProfile) types.Proportions
}
