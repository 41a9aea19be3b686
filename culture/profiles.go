package culture

import "github.com/BaSui01/formflow/types"

// builtinProfiles returns the profiles registered by NewStore. Dimension
// values are meters and degrees; intensities are in [0,1].
func builtinProfiles() []types.CulturalProfile {
	return []types.CulturalProfile{
		japaneseProfile(),
		scandinavianProfile(),
		italianProfile(),
		frenchProfile(),
		modernProfile(),
	}
}

func japaneseProfile() types.CulturalProfile {
	return types.CulturalProfile{
		Name: "japanese",
		Proportions: types.Proportions{
			SeatHeight:       0.38,
			TableHeight:      0.33,
			ArmrestHeight:    0.55,
			BackrestAngle:    100,
			LegThickness:     0.045,
			SurfaceThickness: 0.03,
		},
		Materials: types.MaterialPreferences{
			Preferred:   []string{"wood-oak", "wood-hinoki", "bamboo", "paper-washi"},
			Traditional: []string{"wood-cedar", "lacquer", "tatami", "rope-hemp"},
			Avoided:     []string{"metal-steel", "plastic", "glass-tinted"},
			Seasonal: map[string][]string{
				"spring": {"bamboo", "paper-washi"},
				"winter": {"wood-hinoki", "lacquer"},
			},
		},
		Aesthetics: types.Aesthetics{
			ColorPalette:       []string{"natural-wood", "black-sumi", "white-shiro", "indigo", "moss-green"},
			DecorativeElements: []string{"kumiko-lattice", "tokonoma-alcove", "shoji-panel", "asanoha-pattern", "seigaiha-wave"},
			SurfaceFinishes:    []string{"urushi-lacquer", "oil-natural", "planed-bare"},
			JoiningMethods:     []string{"kigumi-joinery", "dovetail", "mortise-tenon"},
			Symbolism: map[string]string{
				"asanoha-pattern": "growth and resilience",
				"seigaiha-wave":   "tranquility and good fortune",
			},
		},
		Ergonomics: types.Ergonomics{
			FloorSeating:     true,
			FormalPosture:    true,
			GroupOrientation: types.OrientationCircular,
			PersonalSpace:    0.9,
		},
		BaseIntensity: 0.3,
	}
}

func scandinavianProfile() types.CulturalProfile {
	return types.CulturalProfile{
		Name: "scandinavian",
		Proportions: types.Proportions{
			SeatHeight:       0.44,
			TableHeight:      0.72,
			ArmrestHeight:    0.62,
			BackrestAngle:    105,
			LegThickness:     0.04,
			SurfaceThickness: 0.025,
		},
		Materials: types.MaterialPreferences{
			Preferred:   []string{"wood-birch", "wood-pine", "wool-felt", "leather-natural"},
			Traditional: []string{"wood-oak", "linen", "sheepskin"},
			Avoided:     []string{"plastic-glossy", "gold-leaf"},
			Seasonal: map[string][]string{
				"winter": {"wool-felt", "sheepskin"},
			},
		},
		Aesthetics: types.Aesthetics{
			ColorPalette:       []string{"white", "light-grey", "pale-wood", "dusty-blue", "sage"},
			DecorativeElements: []string{"tapered-leg", "spindle-back", "woven-seat", "rounded-edge"},
			SurfaceFinishes:    []string{"soap-finish", "white-oil", "matte-lacquer"},
			JoiningMethods:     []string{"dowel", "finger-joint", "wedged-tenon"},
			Symbolism: map[string]string{
				"rounded-edge": "hygge warmth and approachability",
			},
		},
		Ergonomics: types.Ergonomics{
			FloorSeating:     false,
			FormalPosture:    false,
			GroupOrientation: types.OrientationConversational,
			PersonalSpace:    0.75,
		},
		BaseIntensity: 0.2,
	}
}

func italianProfile() types.CulturalProfile {
	return types.CulturalProfile{
		Name: "italian",
		Proportions: types.Proportions{
			SeatHeight:       0.46,
			TableHeight:      0.75,
			ArmrestHeight:    0.66,
			BackrestAngle:    102,
			LegThickness:     0.055,
			SurfaceThickness: 0.04,
		},
		Materials: types.MaterialPreferences{
			Preferred:   []string{"wood-walnut", "marble-carrara", "leather-full-grain", "velvet"},
			Traditional: []string{"wood-olive", "wrought-iron", "terracotta"},
			Avoided:     []string{"plastic", "laminate-cheap"},
		},
		Aesthetics: types.Aesthetics{
			ColorPalette:       []string{"warm-walnut", "cream", "terracotta", "deep-green", "gold-accent"},
			DecorativeElements: []string{"cabriole-leg", "carved-scroll", "inlay-marquetry", "fluted-column"},
			SurfaceFinishes:    []string{"high-polish", "wax-antique", "gilding"},
			JoiningMethods:     []string{"mortise-tenon", "dovetail", "dowel"},
			Symbolism: map[string]string{
				"carved-scroll": "classical heritage and craftsmanship pride",
			},
		},
		Ergonomics: types.Ergonomics{
			FloorSeating:     false,
			FormalPosture:    true,
			GroupOrientation: types.OrientationLinear,
			PersonalSpace:    0.7,
		},
		BaseIntensity: 0.7,
	}
}

func frenchProfile() types.CulturalProfile {
	return types.CulturalProfile{
		Name: "french",
		Proportions: types.Proportions{
			SeatHeight:       0.45,
			TableHeight:      0.74,
			ArmrestHeight:    0.65,
			BackrestAngle:    104,
			LegThickness:     0.05,
			SurfaceThickness: 0.035,
		},
		Materials: types.MaterialPreferences{
			Preferred:   []string{"wood-cherry", "wood-beech", "linen", "brass"},
			Traditional: []string{"wood-oak", "gilt-bronze", "cane-weave", "silk"},
			Avoided:     []string{"plastic", "concrete"},
		},
		Aesthetics: types.Aesthetics{
			ColorPalette:       []string{"ivory", "powder-blue", "lavender-grey", "gilt", "rose"},
			DecorativeElements: []string{"cabriole-leg", "rocaille-carving", "cane-panel", "ribbon-motif", "fleur-de-lis"},
			SurfaceFinishes:    []string{"patina-paint", "french-polish", "gilding"},
			JoiningMethods:     []string{"mortise-tenon", "peg", "dovetail"},
			Symbolism: map[string]string{
				"fleur-de-lis": "royal heritage",
			},
		},
		Ergonomics: types.Ergonomics{
			FloorSeating:     false,
			FormalPosture:    true,
			GroupOrientation: types.OrientationUShape,
			PersonalSpace:    0.8,
		},
		BaseIntensity: 0.65,
	}
}

func modernProfile() types.CulturalProfile {
	return types.CulturalProfile{
		Name: "modern",
		Proportions: types.Proportions{
			SeatHeight:       0.43,
			TableHeight:      0.73,
			ArmrestHeight:    0.6,
			BackrestAngle:    108,
			LegThickness:     0.035,
			SurfaceThickness: 0.02,
		},
		Materials: types.MaterialPreferences{
			Preferred:   []string{"wood-ash", "metal-steel", "glass-clear", "polymer-matte"},
			Traditional: []string{"plywood-molded", "aluminum", "concrete"},
			Avoided:     []string{"gold-leaf", "ornate-carving"},
		},
		Aesthetics: types.Aesthetics{
			ColorPalette:       []string{"white", "charcoal", "black", "natural-wood", "accent-primary"},
			DecorativeElements: []string{"clean-line", "floating-surface", "hairpin-leg", "cantilever"},
			SurfaceFinishes:    []string{"powder-coat", "matte-lacquer", "clear-seal"},
			JoiningMethods:     []string{"weld", "bolt", "hidden-fastener"},
			Symbolism: map[string]string{
				"clean-line": "function over ornament",
			},
		},
		Ergonomics: types.Ergonomics{
			FloorSeating:     false,
			FormalPosture:    false,
			GroupOrientation: types.OrientationConversational,
			PersonalSpace:    0.7,
		},
		BaseIntensity: 0.25,
	}
}

// defaultProfile is the hard-coded degradation target used when a requested
// culture is unknown. Deliberately neutral: mid-range proportions, widely
// available materials, low decorative expectation.
func defaultProfile() types.CulturalProfile {
	return types.CulturalProfile{
		Name: "default",
		Proportions: types.Proportions{
			SeatHeight:       0.45,
			TableHeight:      0.74,
			ArmrestHeight:    0.63,
			BackrestAngle:    105,
			LegThickness:     0.045,
			SurfaceThickness: 0.03,
		},
		Materials: types.MaterialPreferences{
			Preferred:   []string{"wood-oak", "wood-pine", "metal-steel"},
			Traditional: []string{"wood-oak"},
			Avoided:     []string{},
		},
		Aesthetics: types.Aesthetics{
			ColorPalette:       []string{"natural-wood", "white", "black"},
			DecorativeElements: []string{"clean-line", "rounded-edge"},
			SurfaceFinishes:    []string{"clear-seal"},
			JoiningMethods:     []string{"dowel", "bolt"},
		},
		Ergonomics: types.Ergonomics{
			FloorSeating:     false,
			FormalPosture:    false,
			GroupOrientation: types.OrientationConversational,
			PersonalSpace:    0.75,
		},
		BaseIntensity: 0.3,
	}
}
