package types

// Proportions describes the culturally expected dimensions for furniture,
// in meters (heights, thicknesses) and degrees (angles).
type Proportions struct {
	SeatHeight       float64 `json:"seat_height"`
	TableHeight      float64 `json:"table_height"`
	ArmrestHeight    float64 `json:"armrest_height"`
	BackrestAngle    float64 `json:"backrest_angle"`
	LegThickness     float64 `json:"leg_thickness"`
	SurfaceThickness float64 `json:"surface_thickness"`
}

// MaterialPreferences lists the materials a culture prefers, keeps for
// traditional work, or actively avoids. Seasonal maps a season name to the
// materials favored during it.
type MaterialPreferences struct {
	Preferred   []string            `json:"preferred"`
	Traditional []string            `json:"traditional"`
	Avoided     []string            `json:"avoided"`
	Seasonal    map[string][]string `json:"seasonal,omitempty"`
}

// Aesthetics captures a culture's visual vocabulary. Symbolism maps a
// decorative term to its cultural meaning.
type Aesthetics struct {
	ColorPalette       []string          `json:"color_palette"`
	DecorativeElements []string          `json:"decorative_elements"`
	SurfaceFinishes    []string          `json:"surface_finishes"`
	JoiningMethods     []string          `json:"joining_methods"`
	Symbolism          map[string]string `json:"symbolism,omitempty"`
}

// GroupOrientation describes how a culture arranges people around furniture.
type GroupOrientation string

const (
	OrientationCircular       GroupOrientation = "circular"
	OrientationLinear         GroupOrientation = "linear"
	OrientationUShape         GroupOrientation = "u-shape"
	OrientationConversational GroupOrientation = "conversational"
)

// Ergonomics captures posture and spacing conventions.
type Ergonomics struct {
	FloorSeating     bool             `json:"floor_seating"`
	FormalPosture    bool             `json:"formal_posture"`
	GroupOrientation GroupOrientation `json:"group_orientation"`
	PersonalSpace    float64          `json:"personal_space"`
}

// CulturalProfile is the static per-culture lookup record the scorer and
// corrector evaluate against. Profiles are constructed once at startup and
// never mutated; the culture store hands out copies.
type CulturalProfile struct {
	Name        string              `json:"name"`
	Proportions Proportions         `json:"proportions"`
	Materials   MaterialPreferences `json:"materials"`
	Aesthetics  Aesthetics          `json:"aesthetics"`
	Ergonomics  Ergonomics          `json:"ergonomics"`

	// BaseIntensity is the culture's expected decorative intensity in [0,1]
	// before the formality multiplier is applied.
	BaseIntensity float64 `json:"base_intensity"`
}

// PrefersMaterial reports whether m appears in the preferred list.
func (p *CulturalProfile) PrefersMaterial(m string) bool {
	return containsString(p.Materials.Preferred, m)
}

// AvoidsMaterial reports whether m appears in the avoided list.
func (p *CulturalProfile) AvoidsMaterial(m string) bool {
	return containsString(p.Materials.Avoided, m)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
