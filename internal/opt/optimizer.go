package opt

import "fmt"

// Objective is a cost function over a parameter vector. Lower is better.
type Objective = func([]float64) float64

// Result is the outcome of an optimizer run
type Result struct {
	Params []float64
	Cost   float64
}

// Optimizer defines a continuous optimization algorithm over box bounds
type Optimizer interface {
	// Name identifies the algorithm in reports
	Name() string

	// Run minimizes eval within [lower[i], upper[i]] for every dimension.
	// The dimensionality is len(lower).
	Run(eval Objective, lower, upper []float64) (Result, error)
}

func checkBounds(lower, upper []float64) error {
	if len(lower) == 0 {
		return fmt.Errorf("bounds cannot be empty")
	}
	if len(lower) != len(upper) {
		return fmt.Errorf("bounds length mismatch: lower=%d upper=%d", len(lower), len(upper))
	}
	return nil
}
