package problems

import (
	"fmt"
	"math"

	"github.com/cwbudde/anneal/internal/anneal"
)

// Box is a continuous problem over a bounded vector space. Each neighbor
// moves a single coordinate by at most Step times that coordinate's range
// and clamps the result to the bounds.
type Box struct {
	eval  func([]float64) float64
	lower []float64
	upper []float64
	step  float64
	rng   anneal.Rand
}

var _ anneal.Problem[[]float64] = (*Box)(nil)

// DefaultStep is the neighbor move size as a fraction of each range.
const DefaultStep = 0.1

// NewBox creates a bounded vector problem. lower and upper must have the
// same, non-zero length and lower[i] <= upper[i].
func NewBox(eval func([]float64) float64, lower, upper []float64, step float64, rng anneal.Rand) (*Box, error) {
	if eval == nil {
		return nil, fmt.Errorf("objective cannot be nil")
	}
	if len(lower) == 0 || len(lower) != len(upper) {
		return nil, fmt.Errorf("bounds must be non-empty and of equal length (lower=%d, upper=%d)", len(lower), len(upper))
	}
	for i := range lower {
		if lower[i] > upper[i] {
			return nil, fmt.Errorf("lower bound %d exceeds upper bound (%v > %v)", i, lower[i], upper[i])
		}
	}
	if !(step > 0) {
		return nil, fmt.Errorf("step must be > 0, got %v", step)
	}
	return &Box{
		eval:  eval,
		lower: append([]float64(nil), lower...),
		upper: append([]float64(nil), upper...),
		step:  step,
		rng:   rng,
	}, nil
}

// Dim returns the dimensionality of the space.
func (p *Box) Dim() int {
	return len(p.lower)
}

// InitialState samples uniformly inside the bounds.
func (p *Box) InitialState() []float64 {
	x := make([]float64, len(p.lower))
	for i := range x {
		x[i] = p.lower[i] + p.rng.Float64()*(p.upper[i]-p.lower[i])
	}
	return x
}

func (p *Box) Energy(x []float64) float64 {
	return p.eval(x)
}

func (p *Box) Neighbor(x []float64) []float64 {
	next := append([]float64(nil), x...)
	i := p.rng.Intn(len(next))
	width := p.upper[i] - p.lower[i]
	next[i] = clamp(next[i]+(p.rng.Float64()*2-1)*p.step*width, p.lower[i], p.upper[i])
	return next
}

func clamp(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
