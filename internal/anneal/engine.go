package anneal

import (
	"context"
	"fmt"
	"log/slog"
	"math"
)

// Engine runs simulated annealing over a single Problem.
//
// The problem is borrowed for the engine's lifetime and never mutated. The
// temperature is the only state that survives a run: calling Optimize again
// without Reset continues from where the previous run cooled down to.
type Engine[S any] struct {
	problem     Problem[S]
	rng         Rand
	config      Config
	temperature float64

	observers []Observer
	stats     Stats

	best       S
	bestEnergy float64
	hasBest    bool
}

// New creates an engine for the given problem and schedule.
func New[S any](problem Problem[S], rng Rand, config Config) (*Engine[S], error) {
	if problem == nil {
		return nil, fmt.Errorf("problem cannot be nil")
	}
	if rng == nil {
		return nil, fmt.Errorf("randomness source cannot be nil")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Engine[S]{
		problem:     problem,
		rng:         rng,
		config:      config,
		temperature: config.InitialTemperature,
		bestEnergy:  math.Inf(1),
	}, nil
}

// AddObserver registers an observer for epoch records.
func (e *Engine[S]) AddObserver(o Observer) {
	e.observers = append(e.observers, o)
}

// Temperature returns the current temperature.
func (e *Engine[S]) Temperature() float64 {
	return e.temperature
}

// Config returns the schedule the engine was built with.
func (e *Engine[S]) Config() Config {
	return e.config
}

// Stats returns the counters accumulated since construction or the last Reset.
func (e *Engine[S]) Stats() Stats {
	return e.stats
}

// Best returns the lowest-energy state seen. ok is false unless TrackBest
// is enabled and a run has started.
func (e *Engine[S]) Best() (state S, energy float64, ok bool) {
	return e.best, e.bestEnergy, e.hasBest
}

// Reset restores the initial temperature and clears stats and best tracking.
func (e *Engine[S]) Reset() {
	var zero S
	e.temperature = e.config.InitialTemperature
	e.stats = Stats{}
	e.best = zero
	e.bestEnergy = math.Inf(1)
	e.hasBest = false
}

// Optimize runs the annealing loop until the temperature falls to the
// configured minimum and returns the last accepted state.
//
// Cancellation is checked once per outer iteration; when ctx is done the
// current state is returned together with ctx.Err().
func (e *Engine[S]) Optimize(ctx context.Context) (S, error) {
	current := e.problem.InitialState()
	if e.config.TrackBest {
		e.consider(current, e.problem.Energy(current))
	}

	slog.Debug("Annealing started",
		"temperature", e.temperature,
		"cooling_rate", e.config.CoolingRate,
		"inner_steps", e.config.InnerSteps,
	)

	for e.temperature > e.config.MinTemperature {
		if err := ctx.Err(); err != nil {
			slog.Debug("Annealing cancelled", "epoch", e.stats.Epochs, "temperature", e.temperature)
			return current, err
		}

		epoch := Epoch{Index: e.stats.Epochs}
		var energy float64

		for i := 0; i < e.config.InnerSteps; i++ {
			candidate := e.problem.Neighbor(current)
			currentEnergy := e.problem.Energy(current)
			candidateEnergy := e.problem.Energy(candidate)

			// The uniform draw only happens for non-improving moves.
			if candidateEnergy < currentEnergy ||
				Accept(currentEnergy, candidateEnergy, e.temperature, e.rng.Float64()) {
				current = candidate
				energy = candidateEnergy
				epoch.Accepted++
				if e.config.TrackBest {
					e.consider(current, candidateEnergy)
				}
			} else {
				energy = currentEnergy
				epoch.Rejected++
			}
		}

		if e.rng.Float64() < e.config.CoolProbability {
			e.temperature *= 1 - e.config.CoolingRate
			epoch.Cooled = true
			e.stats.CoolingSteps++
		}

		e.stats.Epochs++
		e.stats.Steps += e.config.InnerSteps
		e.stats.Accepted += epoch.Accepted
		e.stats.Rejected += epoch.Rejected

		epoch.Temperature = e.temperature
		epoch.Energy = energy
		for _, o := range e.observers {
			o.ObserveEpoch(epoch)
		}
	}

	slog.Debug("Annealing finished",
		"epochs", e.stats.Epochs,
		"steps", e.stats.Steps,
		"acceptance_rate", e.stats.AcceptanceRate(),
		"temperature", e.temperature,
	)

	return current, nil
}

func (e *Engine[S]) consider(state S, energy float64) {
	if energy < e.bestEnergy {
		e.best = state
		e.bestEnergy = energy
		e.hasBest = true
	}
}
