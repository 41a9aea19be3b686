package culture

import (
	"sort"
	"sync"

	"github.com/BaSui01/formflow/types"
)

// Store is a read-only lookup of cultural profiles. Profiles are registered
// at construction and never mutated afterwards. Lookups return the profile
// by value; the slices inside are shared and must be treated read-only.
type Store struct {
	profiles map[string]types.CulturalProfile
	fallback types.CulturalProfile
	mu       sync.RWMutex
}

// NewStore creates a store populated with the built-in profiles.
func NewStore() *Store {
	s := &Store{
		profiles: make(map[string]types.CulturalProfile),
		fallback: defaultProfile(),
	}
	for _, p := range builtinProfiles() {
		s.profiles[p.Name] = p
	}
	return s
}

// Get retrieves a profile by culture name.
func (s *Store) Get(culture string) (types.CulturalProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[culture]
	return p, ok
}

// GetOrDefault retrieves a profile by culture name, degrading to the
// hard-coded default profile when the culture is unknown. This is the
// lookup the fallback generation path uses: it never fails.
func (s *Store) GetOrDefault(culture string) types.CulturalProfile {
	if p, ok := s.Get(culture); ok {
		return p
	}
	return s.fallback
}

// Default returns the hard-coded default profile.
func (s *Store) Default() types.CulturalProfile {
	return s.fallback
}

// List returns the sorted names of all registered cultures.
func (s *Store) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.profiles))
	for name := range s.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered profiles.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.profiles)
}

// formalityMultipliers scale a culture's base decorative intensity by the
// requested formality.
var formalityMultipliers = map[types.Formality]float64{
	types.FormalityCasual:     0.8,
	types.FormalitySemiFormal: 1.0,
	types.FormalityFormal:     1.2,
	types.FormalityCeremonial: 1.4,
}

// ExpectedIntensity returns the decorative intensity expected for the given
// profile and formality, clamped to [0,1]. Unknown formality falls back to
// the semi-formal multiplier.
func ExpectedIntensity(profile types.CulturalProfile, formality types.Formality) float64 {
	mult, ok := formalityMultipliers[formality]
	if !ok {
		mult = 1.0
	}
	v := profile.BaseIntensity * mult
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}

// ExpectedHeight returns the culturally expected height for the piece, if
// the type has one. Seat-like pieces track seat height, surface-like pieces
// track table height; other types carry no expectation.
func ExpectedHeight(profile types.CulturalProfile, params types.ParametricParameters) (float64, bool) {
	switch {
	case params.IsSeating():
		return profile.Proportions.SeatHeight, true
	case params.IsSurface():
		return profile.Proportions.TableHeight, true
	}
	return 0, false
}

// constructionBonuses maps culture → craftsmanship level → construction
// sub-score bonus for culturally expected pairings.
var constructionBonuses = map[string]map[types.Craftsmanship]float64{
	"japanese":     {types.CraftsmanshipMasterwork: 0.30},
	"french":       {types.CraftsmanshipRefined: 0.25},
	"italian":      {types.CraftsmanshipMasterwork: 0.25},
	"modern":       {types.CraftsmanshipSimple: 0.20},
	"scandinavian": {types.CraftsmanshipSimple: 0.20},
}

// ConstructionBonus returns the construction sub-score bonus for the given
// culture/craftsmanship pairing, or zero when the pairing is not a
// culturally expected one.
func ConstructionBonus(culture string, level types.Craftsmanship) float64 {
	if m, ok := constructionBonuses[culture]; ok {
		return m[level]
	}
	return 0
}
