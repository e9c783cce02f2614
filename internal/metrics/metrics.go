// Package metrics exposes annealing progress as Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cwbudde/anneal/internal/anneal"
)

// Collector holds the collectors for one process and implements
// anneal.Observer. Each Collector owns its registry.
type Collector struct {
	Registry *prometheus.Registry

	Temperature  prometheus.Gauge
	Energy       prometheus.Gauge
	Epochs       prometheus.Counter
	Moves        *prometheus.CounterVec
	CoolingSteps prometheus.Counter
}

var _ anneal.Observer = (*Collector)(nil)

// NewCollector creates and registers the annealing collectors, plus the Go
// and process collectors when withRuntime is set.
func NewCollector(withRuntime bool) *Collector {
	c := &Collector{
		Registry: prometheus.NewRegistry(),
		Temperature: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "anneal_temperature", Help: "Current annealing temperature.",
		}),
		Energy: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "anneal_energy", Help: "Energy of the current state at the end of the last epoch.",
		}),
		Epochs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "anneal_epochs_total", Help: "Outer iterations completed.",
		}),
		Moves: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "anneal_moves_total", Help: "Trial moves by outcome."},
			[]string{"outcome"},
		),
		CoolingSteps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "anneal_cooling_steps_total", Help: "Epochs that ended with a cooling step.",
		}),
	}

	c.Registry.MustRegister(c.Temperature, c.Energy, c.Epochs, c.Moves, c.CoolingSteps)
	if withRuntime {
		c.Registry.MustRegister(collectors.NewGoCollector())
		c.Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}
	return c
}

// ObserveEpoch updates the collectors from an engine epoch.
func (c *Collector) ObserveEpoch(e anneal.Epoch) {
	c.Temperature.Set(e.Temperature)
	c.Energy.Set(e.Energy)
	c.Epochs.Inc()
	c.Moves.WithLabelValues("accepted").Add(float64(e.Accepted))
	c.Moves.WithLabelValues("rejected").Add(float64(e.Rejected))
	if e.Cooled {
		c.CoolingSteps.Inc()
	}
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.Registry, promhttp.HandlerOpts{})
}
