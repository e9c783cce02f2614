// Package progress logs annealing epochs without flooding the output.
package progress

import (
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/cwbudde/anneal/internal/anneal"
)

// Logger is an anneal.Observer that logs at most one epoch per interval.
// The first epoch is always logged.
type Logger struct {
	log       *slog.Logger
	sometimes rate.Sometimes
	accepted  int
	steps     int
}

var _ anneal.Observer = (*Logger)(nil)

// NewLogger creates a throttled progress logger. A nil log uses slog.Default.
func NewLogger(log *slog.Logger, interval time.Duration) *Logger {
	if log == nil {
		log = slog.Default()
	}
	return &Logger{
		log:       log,
		sometimes: rate.Sometimes{First: 1, Interval: interval},
	}
}

// ObserveEpoch accumulates the acceptance counts and logs when the
// interval has elapsed.
func (l *Logger) ObserveEpoch(e anneal.Epoch) {
	l.accepted += e.Accepted
	l.steps += e.Accepted + e.Rejected

	l.sometimes.Do(func() {
		accRate := 0.0
		if l.steps > 0 {
			accRate = float64(l.accepted) / float64(l.steps)
		}
		l.log.Info("Annealing progress",
			"epoch", e.Index,
			"temperature", e.Temperature,
			"energy", e.Energy,
			"acceptance_rate", accRate,
		)
		l.accepted, l.steps = 0, 0
	})
}
