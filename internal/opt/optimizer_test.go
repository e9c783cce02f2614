package opt

import (
	"math"
	"testing"

	"github.com/cwbudde/anneal/internal/anneal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Sphere function: f(x) = sum(x_i^2), minimum at origin
func sphere(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += v * v
	}
	return sum
}

func cube(dim int, r float64) (lower, upper []float64) {
	lower = make([]float64, dim)
	upper = make([]float64, dim)
	for i := 0; i < dim; i++ {
		lower[i] = -r
		upper[i] = r
	}
	return lower, upper
}

func fastSchedule() anneal.Config {
	cfg := anneal.DefaultConfig()
	cfg.InitialTemperature = 10
	cfg.CoolingRate = 0.01
	return cfg
}

func TestAdaptersRejectBadBounds(t *testing.T) {
	for _, o := range []Optimizer{NewAnnealing(fastSchedule(), 1), NewMayfly(10, 20, 1)} {
		_, err := o.Run(sphere, nil, nil)
		assert.Error(t, err, o.Name())

		_, err = o.Run(sphere, []float64{-1, -1}, []float64{1})
		assert.Error(t, err, o.Name())
	}
}

func TestAnnealingAdapterOnSphere(t *testing.T) {
	lower, upper := cube(3, 10)
	res, err := NewAnnealing(fastSchedule(), 42).Run(sphere, lower, upper)
	require.NoError(t, err)
	require.Len(t, res.Params, 3)

	assert.Less(t, res.Cost, 0.1)
	assert.InDelta(t, sphere(res.Params), res.Cost, 1e-12)
	for i, v := range res.Params {
		assert.LessOrEqual(t, math.Abs(v), 1.0, "parameter %d", i)
	}
}

func TestAnnealingAdapterDeterministic(t *testing.T) {
	lower, upper := cube(2, 5)

	res1, err := NewAnnealing(fastSchedule(), 123).Run(sphere, lower, upper)
	require.NoError(t, err)
	res2, err := NewAnnealing(fastSchedule(), 123).Run(sphere, lower, upper)
	require.NoError(t, err)

	assert.Equal(t, res1, res2)
}

func TestMayflyAdapterOnSphere(t *testing.T) {
	lower, upper := cube(3, 10)
	res, err := NewMayfly(100, 20, 42).Run(sphere, lower, upper)
	require.NoError(t, err)
	require.Len(t, res.Params, 3)

	assert.Less(t, res.Cost, 0.1)
	for i, v := range res.Params {
		assert.LessOrEqual(t, math.Abs(v), 1.0, "parameter %d", i)
	}
}

func TestMayflyAdapterDeterministic(t *testing.T) {
	lower, upper := cube(2, 5)

	res1, err := NewMayfly(50, 20, 123).Run(sphere, lower, upper)
	require.NoError(t, err)
	res2, err := NewMayfly(50, 20, 123).Run(sphere, lower, upper)
	require.NoError(t, err)

	assert.Equal(t, res1.Cost, res2.Cost)
}

func TestMayflyAdapterRequiresPopulation(t *testing.T) {
	lower, upper := cube(2, 5)
	_, err := NewMayfly(10, MinPopulation-1, 1).Run(sphere, lower, upper)
	assert.Error(t, err)
}

func TestAdaptersRespectPerDimensionBounds(t *testing.T) {
	// The unconstrained optimum (5, 0) lies outside the first dimension's range.
	shifted := func(x []float64) float64 {
		return (x[0]-5)*(x[0]-5) + x[1]*x[1]
	}
	lower := []float64{0, -10}
	upper := []float64{1, 10}

	for _, o := range []Optimizer{NewAnnealing(fastSchedule(), 1), NewMayfly(100, 20, 1)} {
		res, err := o.Run(shifted, lower, upper)
		require.NoError(t, err, o.Name())
		require.Len(t, res.Params, 2)

		for i, v := range res.Params {
			assert.GreaterOrEqual(t, v, lower[i], "%s: parameter %d", o.Name(), i)
			assert.LessOrEqual(t, v, upper[i], "%s: parameter %d", o.Name(), i)
		}
		assert.InDelta(t, shifted(res.Params), res.Cost, 1e-12, o.Name())
		assert.Less(t, res.Cost, 16.5, o.Name())
	}
}
