package traits

// NeutralValue is the prior assigned to a trait with no observed evidence.
// A brand-new learner starts at 0.5 on every dimension.
const NeutralValue = 0.5

// Vector maps every taxonomy trait to a value in [0,1].
type Vector map[Trait]float64

// Neutral returns a vector with every trait at the neutral prior.
func Neutral() Vector {
	v := make(Vector, len(taxonomy))
	for _, t := range taxonomy {
		v[t] = NeutralValue
	}
	return v
}

// Clone returns a deep copy of the vector.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	for t, val := range v {
		out[t] = val
	}
	return out
}

// Get returns the value for trait t, substituting the neutral prior when
// the entry is missing. A stored vector written before a taxonomy change
// may legitimately lack entries; this is the recovery path, not an error.
func (v Vector) Get(t Trait) float64 {
	if val, ok := v[t]; ok {
		return val
	}
	return NeutralValue
}

// Normalized returns a copy with every taxonomy trait present and every
// value clamped to [0,1]. Entries outside the taxonomy are dropped.
func (v Vector) Normalized() Vector {
	out := make(Vector, len(taxonomy))
	for _, t := range taxonomy {
		out[t] = Clamp(v.Get(t))
	}
	return out
}

// Clamp bounds a trait value to [0,1].
func Clamp(val float64) float64 {
	if val < 0 {
		return 0
	}
	if val > 1 {
		return 1
	}
	return val
}
