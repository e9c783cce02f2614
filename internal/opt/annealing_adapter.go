package opt

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/cwbudde/anneal/internal/anneal"
	"github.com/cwbudde/anneal/internal/problems"
)

// AnnealingAdapter runs the annealing engine over a bounded vector problem.
// It always reports the best state seen, not the last accepted one.
type AnnealingAdapter struct {
	config anneal.Config
	step   float64
	seed   int64
}

// NewAnnealing creates an annealing optimizer with the given schedule.
func NewAnnealing(config anneal.Config, seed int64) *AnnealingAdapter {
	config.TrackBest = true
	return &AnnealingAdapter{
		config: config,
		step:   problems.DefaultStep,
		seed:   seed,
	}
}

func (a *AnnealingAdapter) Name() string { return "annealing" }

// Run executes the annealing search
func (a *AnnealingAdapter) Run(eval Objective, lower, upper []float64) (Result, error) {
	if err := checkBounds(lower, upper); err != nil {
		return Result{}, err
	}

	rng := rand.New(rand.NewSource(a.seed))
	problem, err := problems.NewBox(eval, lower, upper, a.step, rng)
	if err != nil {
		return Result{}, fmt.Errorf("failed to build problem: %w", err)
	}

	engine, err := anneal.New[[]float64](problem, rng, a.config)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create engine: %w", err)
	}

	if _, err := engine.Optimize(context.Background()); err != nil {
		return Result{}, err
	}

	best, cost, _ := engine.Best()
	return Result{Params: best, Cost: cost}, nil
}
