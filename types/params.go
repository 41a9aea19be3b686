package types

// Formality levels, from least to most formal.
type Formality string

const (
	FormalityCasual     Formality = "casual"
	FormalitySemiFormal Formality = "semi-formal"
	FormalityFormal     Formality = "formal"
	FormalityCeremonial Formality = "ceremonial"
)

// Craftsmanship levels.
type Craftsmanship string

const (
	CraftsmanshipSimple     Craftsmanship = "simple"
	CraftsmanshipRefined    Craftsmanship = "refined"
	CraftsmanshipMasterwork Craftsmanship = "masterwork"
)

// ParametricParameters is the unit of work for a single generation and the
// source of the cache key. It is a value type: two parameter sets are the
// same request iff they are structurally equal, regardless of how they were
// assembled.
//
// Width, Height and Depth are in meters. DecorativeIntensity is in [0,1].
type ParametricParameters struct {
	Type                string        `json:"type"`
	Culture             string        `json:"culture"`
	Width               float64       `json:"width"`
	Height              float64       `json:"height"`
	Depth               float64       `json:"depth"`
	Style               string        `json:"style,omitempty"`
	Formality           Formality     `json:"formality,omitempty"`
	PrimaryMaterial     string        `json:"primary_material"`
	SecondaryMaterial   string        `json:"secondary_material,omitempty"`
	CulturalElements    []string      `json:"cultural_elements,omitempty"`
	ErgonomicProfile    string        `json:"ergonomic_profile,omitempty"`
	ColorPalette        []string      `json:"color_palette,omitempty"`
	DecorativeIntensity float64       `json:"decorative_intensity"`
	CraftsmanshipLevel  Craftsmanship `json:"craftsmanship_level,omitempty"`
}

// Clone returns a deep copy, so corrector mutations never alias the
// caller's slices.
func (p ParametricParameters) Clone() ParametricParameters {
	out := p
	if p.CulturalElements != nil {
		out.CulturalElements = append([]string(nil), p.CulturalElements...)
	}
	if p.ColorPalette != nil {
		out.ColorPalette = append([]string(nil), p.ColorPalette...)
	}
	return out
}

// IsSeating reports whether the type tag is a seat-like piece whose height
// should track the profile's seat height.
func (p ParametricParameters) IsSeating() bool {
	switch p.Type {
	case "chair", "bench", "stool", "floor-cushion":
		return true
	}
	return false
}

// IsSurface reports whether the type tag is a table-like piece whose height
// should track the profile's table height.
func (p ParametricParameters) IsSurface() bool {
	switch p.Type {
	case "table", "coffee-table", "desk", "side-table":
		return true
	}
	return false
}
