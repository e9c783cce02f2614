// Package problems holds the concrete optimization domains that plug into
// the annealing engine.
package problems

import (
	"fmt"
	"math"

	"github.com/cwbudde/anneal/internal/anneal"
)

// City is a point in the plane.
type City struct {
	X, Y float64
}

// Tour is a permutation of city indices read as a closed route.
type Tour []int

// TSP is the travelling-salesman problem over a fixed set of cities.
type TSP struct {
	cities []City
	rng    anneal.Rand
}

var _ anneal.Problem[Tour] = (*TSP)(nil)

// NewTSP creates a travelling-salesman problem. At least one city is required.
func NewTSP(cities []City, rng anneal.Rand) (*TSP, error) {
	if len(cities) == 0 {
		return nil, fmt.Errorf("at least one city is required")
	}
	if rng == nil {
		return nil, fmt.Errorf("randomness source cannot be nil")
	}
	return &TSP{
		cities: append([]City(nil), cities...),
		rng:    rng,
	}, nil
}

// Cities returns a copy of the city set.
func (p *TSP) Cities() []City {
	return append([]City(nil), p.cities...)
}

// InitialState returns a uniformly random permutation (Fisher-Yates).
func (p *TSP) InitialState() Tour {
	tour := make(Tour, len(p.cities))
	for i := range tour {
		tour[i] = i
	}
	for i := len(tour) - 1; i > 0; i-- {
		j := p.rng.Intn(i + 1)
		tour[i], tour[j] = tour[j], tour[i]
	}
	return tour
}

// Energy is the length of the closed tour, including the edge from the
// last city back to the first.
func (p *TSP) Energy(tour Tour) float64 {
	var total float64
	n := len(tour)
	for i := 0; i < n; i++ {
		a := p.cities[tour[i]]
		b := p.cities[tour[(i+1)%n]]
		total += math.Hypot(a.X-b.X, a.Y-b.Y)
	}
	return total
}

// Neighbor swaps two positions drawn independently. Both draws may pick the
// same position, in which case the copy equals the input.
func (p *TSP) Neighbor(tour Tour) Tour {
	next := append(Tour(nil), tour...)
	i := p.rng.Intn(len(next))
	j := p.rng.Intn(len(next))
	next[i], next[j] = next[j], next[i]
	return next
}

// Rotate shifts the tour cyclically so that city 0 comes first, keeping the
// relative order. A tour without city 0 is returned as an unchanged copy.
func Rotate(tour Tour) Tour {
	out := make(Tour, 0, len(tour))
	start := -1
	for i, c := range tour {
		if c == 0 {
			start = i
			break
		}
	}
	if start < 0 {
		return append(out, tour...)
	}
	out = append(out, tour[start:]...)
	return append(out, tour[:start]...)
}

// IsPermutation reports whether the tour visits every index in [0, n)
// exactly once.
func (t Tour) IsPermutation(n int) bool {
	if len(t) != n {
		return false
	}
	seen := make([]bool, n)
	for _, c := range t {
		if c < 0 || c >= n || seen[c] {
			return false
		}
		seen[c] = true
	}
	return true
}

// DemoCities is the eleven-city set used by the demonstration driver.
func DemoCities() []City {
	return []City{
		{5.0, 10.0}, {30.0, 60.0}, {50.0, 80.0}, {10.0, 73.0},
		{25.0, 3.0}, {17.0, 67.0}, {98.0, 12.0}, {37.0, 23.0},
		{46.0, 62.0}, {22.4, 44.0}, {41.3, 87.2},
	}
}
