package types

// AuthenticityScore is the five-dimensional cultural authenticity rating of a
// generated piece. Every sub-score and Overall are normalized to [0,1];
// Overall is always the arithmetic mean of the five sub-scores.
type AuthenticityScore struct {
	Proportions      float64 `json:"proportions"`
	Materials        float64 `json:"materials"`
	Aesthetics       float64 `json:"aesthetics"`
	CulturalElements float64 `json:"cultural_elements"`
	Construction     float64 `json:"construction"`
	Overall          float64 `json:"overall"`
}

// Recompute sets Overall to the mean of the five sub-scores and returns the
// receiver for chaining.
func (s *AuthenticityScore) Recompute() *AuthenticityScore {
	s.Overall = (s.Proportions + s.Materials + s.Aesthetics + s.CulturalElements + s.Construction) / 5
	return s
}
