package opt

import (
	"fmt"
	"math/rand"

	"github.com/cwbudde/mayfly"
)

// MinPopulation is the smallest population the mayfly library accepts.
const MinPopulation = 20

// MayflyAdapter wraps the external Mayfly library to conform to our Optimizer interface
type MayflyAdapter struct {
	maxIters int
	popSize  int
	seed     int64
}

// NewMayfly creates a new Mayfly optimizer adapter
func NewMayfly(maxIters, popSize int, seed int64) *MayflyAdapter {
	return &MayflyAdapter{
		maxIters: maxIters,
		popSize:  popSize,
		seed:     seed,
	}
}

func (m *MayflyAdapter) Name() string { return "mayfly" }

// Run executes the Mayfly optimization using the external library
func (m *MayflyAdapter) Run(eval Objective, lower, upper []float64) (Result, error) {
	if err := checkBounds(lower, upper); err != nil {
		return Result{}, err
	}
	if m.popSize < MinPopulation {
		return Result{}, fmt.Errorf("population must be >= %d, got %d", MinPopulation, m.popSize)
	}

	// The library takes scalar bounds, so it searches the enclosing box and
	// every point is clamped back into the per-dimension bounds.
	bounded := func(x []float64) []float64 {
		out := make([]float64, len(x))
		for i, v := range x {
			out[i] = max(lower[i], min(upper[i], v))
		}
		return out
	}

	config := mayfly.NewDefaultConfig()
	config.ObjectiveFunc = func(x []float64) float64 {
		return eval(bounded(x))
	}
	config.ProblemSize = len(lower)
	config.MaxIterations = m.maxIters
	config.NPop = m.popSize

	lo, hi := lower[0], upper[0]
	for i := range lower {
		lo = min(lo, lower[i])
		hi = max(hi, upper[i])
	}
	config.LowerBound = lo
	config.UpperBound = hi

	config.Rand = rand.New(rand.NewSource(m.seed))

	result, err := mayfly.Optimize(config)
	if err != nil {
		return Result{}, fmt.Errorf("mayfly optimization failed: %w", err)
	}

	params := bounded(result.GlobalBest.Position)
	return Result{
		Params: params,
		Cost:   eval(params),
	}, nil
}
