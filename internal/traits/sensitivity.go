package traits

// sensitivity maps each trait to its adaptation gain: the fraction of
// averaged evidence applied to move the trait's value in one update.
// Traits differ in how quickly they plausibly change: interest swings
// session to session, while precision builds slowly. The table is a
// deployment constant, not learner state.
var sensitivity = map[Trait]float64{
	Curiosity:            0.30,
	Confidence:           0.25,
	Metacognition:        0.20,
	CognitiveFlexibility: 0.20,
	AnalyticalDepth:      0.15,
	PatternRecognition:   0.15,
	AttentionConsistency: 0.12,
	Precision:            0.10,
}

// DefaultGain is used for any trait absent from the sensitivity table.
const DefaultGain = 0.15

// Gain returns the adaptation gain for trait t.
func Gain(t Trait) float64 {
	if g, ok := sensitivity[t]; ok {
		return g
	}
	return DefaultGain
}
