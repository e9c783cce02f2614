package problems

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDemoTSP(t *testing.T, seed int64) *TSP {
	t.Helper()
	p, err := NewTSP(DemoCities(), rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	return p
}

func TestNewTSPRejectsEmptyCitySet(t *testing.T) {
	_, err := NewTSP(nil, rand.New(rand.NewSource(1)))
	assert.Error(t, err)

	_, err = NewTSP(DemoCities(), nil)
	assert.Error(t, err)
}

func TestTSPInitialStateIsPermutation(t *testing.T) {
	p := newDemoTSP(t, 3)
	for i := 0; i < 50; i++ {
		tour := p.InitialState()
		assert.True(t, tour.IsPermutation(len(DemoCities())), "tour %v", tour)
	}
}

func TestTSPNeighborPreservesPermutation(t *testing.T) {
	p := newDemoTSP(t, 11)
	tour := p.InitialState()
	original := append(Tour(nil), tour...)

	for i := 0; i < 10000; i++ {
		tour = p.Neighbor(tour)
		require.True(t, tour.IsPermutation(len(original)), "step %d produced %v", i, tour)
	}

	sorted := append(Tour(nil), tour...)
	sort.Ints(sorted)
	want := append(Tour(nil), original...)
	sort.Ints(want)
	assert.Equal(t, want, sorted)
}

func TestTSPNeighborDoesNotMutateInput(t *testing.T) {
	p := newDemoTSP(t, 5)
	tour := Tour{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	before := append(Tour(nil), tour...)
	for i := 0; i < 100; i++ {
		_ = p.Neighbor(tour)
	}
	assert.Equal(t, before, tour)
}

func TestTSPNeighborSameIndexLeavesTourUnchanged(t *testing.T) {
	// A source that always returns zero picks position 0 twice.
	p, err := NewTSP(DemoCities()[:4], zeroRand{})
	require.NoError(t, err)

	tour := Tour{2, 0, 3, 1}
	assert.Equal(t, tour, p.Neighbor(tour))
}

func TestTSPEnergy(t *testing.T) {
	// Unit square: the perimeter tour has length 4, the crossing tour 2+2*sqrt(2).
	cities := []City{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	p, err := NewTSP(cities, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	assert.InDelta(t, 4.0, p.Energy(Tour{0, 1, 2, 3}), 1e-12)
	assert.InDelta(t, 2+2*math.Sqrt2, p.Energy(Tour{0, 2, 1, 3}), 1e-12)
	assert.InDelta(t, 0.0, p.Energy(Tour{2}), 1e-12)
}

func TestTSPEnergyIsNonNegative(t *testing.T) {
	p := newDemoTSP(t, 17)
	tour := p.InitialState()
	for i := 0; i < 1000; i++ {
		assert.GreaterOrEqual(t, p.Energy(tour), 0.0)
		tour = p.Neighbor(tour)
	}
}

func TestRotate(t *testing.T) {
	tests := []struct {
		name string
		in   Tour
		want Tour
	}{
		{"zero in middle", Tour{3, 1, 0, 2}, Tour{0, 2, 3, 1}},
		{"zero first", Tour{0, 1, 2}, Tour{0, 1, 2}},
		{"zero last", Tour{2, 1, 0}, Tour{0, 2, 1}},
		{"single", Tour{0}, Tour{0}},
		{"empty", Tour{}, Tour{}},
		{"no zero", Tour{2, 1}, Tour{2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := make(Tour, len(tt.in))
			copy(in, tt.in)
			assert.Equal(t, tt.want, Rotate(tt.in))
			assert.Equal(t, in, tt.in, "input must not be modified")
		})
	}
}

func TestIsPermutation(t *testing.T) {
	assert.True(t, Tour{1, 0, 2}.IsPermutation(3))
	assert.False(t, Tour{1, 1, 2}.IsPermutation(3))
	assert.False(t, Tour{0, 1}.IsPermutation(3))
	assert.False(t, Tour{0, 1, 3}.IsPermutation(3))
}

type zeroRand struct{}

func (zeroRand) Float64() float64 { return 0 }
func (zeroRand) Intn(int) int     { return 0 }
