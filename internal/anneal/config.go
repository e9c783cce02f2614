package anneal

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTemperature is returned when the initial or minimum
	// temperature is not strictly positive.
	ErrInvalidTemperature = errors.New("invalid temperature")

	// ErrInvalidCoolingRate is returned when the cooling rate is outside (0, 1).
	// A rate >= 1 drops the temperature to zero on the first cooling step and
	// a rate <= 0 never lets the search terminate.
	ErrInvalidCoolingRate = errors.New("invalid cooling rate")

	// ErrInvalidSchedule is returned for a bad inner step count or cooling
	// probability.
	ErrInvalidSchedule = errors.New("invalid schedule")
)

// Config holds the annealing schedule.
type Config struct {
	// InitialTemperature is the temperature the search starts from
	InitialTemperature float64

	// CoolingRate is the fraction removed from the temperature on each
	// cooling step: T = T * (1 - CoolingRate)
	CoolingRate float64

	// InnerSteps is the number of trial moves per outer iteration
	InnerSteps int

	// CoolProbability is the chance that an outer iteration ends with a
	// cooling step. 1 gives a deterministic geometric schedule.
	CoolProbability float64

	// MinTemperature stops the search once the temperature is no longer above it
	MinTemperature float64

	// TrackBest keeps a copy of the lowest-energy state seen during the run.
	// Optimize still returns the last accepted state.
	TrackBest bool
}

// DefaultConfig returns the classic schedule: T0 = 100, 0.3% decay on half
// of the outer iterations, 150 trials per iteration, stop at 0.001.
func DefaultConfig() Config {
	return Config{
		InitialTemperature: 100.0,
		CoolingRate:        0.003,
		InnerSteps:         150,
		CoolProbability:    0.5,
		MinTemperature:     0.001,
	}
}

// Validate rejects schedules that would never start, never stop, or stop
// immediately.
func (c Config) Validate() error {
	if !(c.InitialTemperature > 0) {
		return fmt.Errorf("%w: initial temperature must be > 0, got %v", ErrInvalidTemperature, c.InitialTemperature)
	}
	if !(c.MinTemperature > 0) {
		return fmt.Errorf("%w: minimum temperature must be > 0, got %v", ErrInvalidTemperature, c.MinTemperature)
	}
	if !(c.CoolingRate > 0 && c.CoolingRate < 1) {
		return fmt.Errorf("%w: must be in (0, 1), got %v", ErrInvalidCoolingRate, c.CoolingRate)
	}
	if c.InnerSteps < 1 {
		return fmt.Errorf("%w: inner steps must be >= 1, got %d", ErrInvalidSchedule, c.InnerSteps)
	}
	if !(c.CoolProbability > 0 && c.CoolProbability <= 1) {
		return fmt.Errorf("%w: cool probability must be in (0, 1], got %v", ErrInvalidSchedule, c.CoolProbability)
	}
	return nil
}
