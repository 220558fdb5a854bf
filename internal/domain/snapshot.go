package domain

import "math"

// Snapshot holds point-in-time rates keyed by pair, including the derived
// JXY and JPY_KRW entries. A nil value means the rate is unavailable.
type Snapshot map[Pair]*float64

// Get returns the value for the pair when it is present, finite and
// strictly positive.
func (s Snapshot) Get(p Pair) (float64, bool) {
	v, ok := s[p]
	if !ok || v == nil {
		return 0, false
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) || *v <= 0 {
		return 0, false
	}
	return *v, true
}

// Set stores a concrete value for the pair.
func (s Snapshot) Set(p Pair, v float64) {
	s[p] = &v
}
