package anneal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAcceptImprovementAtAnyTemperature(t *testing.T) {
	for _, temp := range []float64{1e-12, 0.001, 1, 100, 1e12} {
		assert.True(t, Accept(10, 9.999, temp, 0.9999999), "temperature %v", temp)
		assert.Equal(t, 1.0, AcceptanceProbability(10, 9.999, temp))
	}
}

func TestAcceptanceProbabilityForWorseningMoves(t *testing.T) {
	assert.InDelta(t, math.Exp(-1), AcceptanceProbability(1, 2, 1), 1e-15)
	assert.InDelta(t, math.Exp(-0.01), AcceptanceProbability(1, 2, 100), 1e-15)
	assert.Equal(t, 1.0, AcceptanceProbability(3, 3, 5), "equal energies are always acceptable")

	// Colder means less likely, bigger jumps mean less likely.
	assert.Less(t, AcceptanceProbability(0, 1, 0.1), AcceptanceProbability(0, 1, 10))
	assert.Less(t, AcceptanceProbability(0, 5, 1), AcceptanceProbability(0, 1, 1))
	assert.InDelta(t, 0.0, AcceptanceProbability(0, 1, 0.001), 1e-300)
}

func TestAcceptUsesUniformDraw(t *testing.T) {
	p := math.Exp(-1)
	assert.True(t, Accept(1, 2, 1, p-1e-9))
	assert.False(t, Accept(1, 2, 1, p+1e-9))
	assert.False(t, Accept(1, 2, 1e-6, 0))
}
