package domain

// Confidence is a heuristic score in [0,1] estimating certainty of an
// intent, domain or agent classification. Values are clamped on
// construction so downstream code never sees an out-of-range score.
type Confidence float64

// NewConfidence creates a Confidence clamped to [0,1]
func NewConfidence(value float64) Confidence {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return Confidence(value)
}

// Float64 returns the underlying value
func (c Confidence) Float64() float64 {
	return float64(c)
}
