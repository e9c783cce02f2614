package problems

import (
	"fmt"

	"github.com/cwbudde/anneal/internal/anneal"
)

// Scalar minimizes the squared distance between a real number and a target.
type Scalar struct {
	Target float64
	rng    anneal.Rand
}

var _ anneal.Problem[float64] = (*Scalar)(nil)

// NewScalar creates the toy problem with the given optimum.
func NewScalar(target float64, rng anneal.Rand) (*Scalar, error) {
	if rng == nil {
		return nil, fmt.Errorf("randomness source cannot be nil")
	}
	return &Scalar{Target: target, rng: rng}, nil
}

// InitialState always starts the search at zero.
func (p *Scalar) InitialState() float64 {
	return 0.0
}

func (p *Scalar) Energy(x float64) float64 {
	d := x - p.Target
	return d * d
}

// Neighbor adds a uniform offset in [-1, 1).
func (p *Scalar) Neighbor(x float64) float64 {
	return x + p.rng.Float64()*2 - 1
}
