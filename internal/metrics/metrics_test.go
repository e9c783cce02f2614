package metrics

import (
	"context"
	"io"
	"math/rand"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/anneal/internal/anneal"
	"github.com/cwbudde/anneal/internal/problems"
)

func TestObserveEpoch(t *testing.T) {
	c := NewCollector(false)

	c.ObserveEpoch(anneal.Epoch{Index: 0, Temperature: 99.7, Energy: 12, Accepted: 100, Rejected: 50, Cooled: true})
	c.ObserveEpoch(anneal.Epoch{Index: 1, Temperature: 99.7, Energy: 10, Accepted: 90, Rejected: 60})

	assert.Equal(t, 99.7, testutil.ToFloat64(c.Temperature))
	assert.Equal(t, 10.0, testutil.ToFloat64(c.Energy))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.Epochs))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.CoolingSteps))
	assert.Equal(t, 190.0, testutil.ToFloat64(c.Moves.WithLabelValues("accepted")))
	assert.Equal(t, 110.0, testutil.ToFloat64(c.Moves.WithLabelValues("rejected")))
}

func TestCollectorMatchesEngineStats(t *testing.T) {
	c := NewCollector(false)

	rng := rand.New(rand.NewSource(12))
	cfg := anneal.DefaultConfig()
	cfg.CoolingRate = 0.1
	p, err := problems.NewScalar(5, rng)
	require.NoError(t, err)
	engine, err := anneal.New[float64](p, rng, cfg)
	require.NoError(t, err)
	engine.AddObserver(c)

	_, err = engine.Optimize(context.Background())
	require.NoError(t, err)

	stats := engine.Stats()
	assert.Equal(t, float64(stats.Epochs), testutil.ToFloat64(c.Epochs))
	assert.Equal(t, float64(stats.CoolingSteps), testutil.ToFloat64(c.CoolingSteps))
	assert.Equal(t, float64(stats.Accepted), testutil.ToFloat64(c.Moves.WithLabelValues("accepted")))
	assert.Equal(t, engine.Temperature(), testutil.ToFloat64(c.Temperature))
}

func TestHandlerServesMetrics(t *testing.T) {
	c := NewCollector(true)
	c.ObserveEpoch(anneal.Epoch{Temperature: 1.5, Accepted: 3})

	srv := httptest.NewServer(c.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "anneal_temperature 1.5")
	assert.Contains(t, string(body), `anneal_moves_total{outcome="accepted"} 3`)
	assert.Contains(t, string(body), "go_goroutines")
}
