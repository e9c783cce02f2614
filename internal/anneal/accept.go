package anneal

import "math"

// AcceptanceProbability is the Metropolis probability of moving from an
// energy of current to one of candidate at the given temperature.
// Improvements are always accepted.
func AcceptanceProbability(current, candidate, temperature float64) float64 {
	if candidate < current {
		return 1
	}
	return math.Exp((current - candidate) / temperature)
}

// Accept applies the Metropolis criterion with u drawn uniformly from [0, 1).
func Accept(current, candidate, temperature, u float64) bool {
	return candidate < current || u < math.Exp((current-candidate)/temperature)
}
