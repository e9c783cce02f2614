package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/cwbudde/anneal/internal/anneal"
	"github.com/cwbudde/anneal/internal/metrics"
	"github.com/cwbudde/anneal/internal/progress"
	"github.com/cwbudde/anneal/internal/trace"
)

// sessionOptions select the optional outputs of a run.
type sessionOptions struct {
	traceDir         string
	metricsAddr      string
	progressInterval time.Duration
}

func currentSessionOptions() sessionOptions {
	return sessionOptions{
		traceDir:         traceDir,
		metricsAddr:      metricsAddr,
		progressInterval: progressInterval,
	}
}

// session owns the randomness source and observers of a single run.
type session struct {
	runID     string
	seed      int64
	rng       *rand.Rand
	observers []anneal.Observer

	trace   *trace.Writer
	metrics *metrics.Collector
	server  *http.Server
}

func openSession(seed int64, opts sessionOptions) (*session, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &session{
		runID: uuid.NewString(),
		seed:  seed,
		rng:   rand.New(rand.NewSource(seed)),
	}
	s.observers = append(s.observers, progress.NewLogger(slog.Default(), opts.progressInterval))

	if opts.traceDir != "" {
		w, err := trace.NewWriter(opts.traceDir, s.runID)
		if err != nil {
			return nil, err
		}
		s.trace = w
		s.observers = append(s.observers, w)
	}

	if opts.metricsAddr != "" {
		s.metrics = metrics.NewCollector(true)
		s.observers = append(s.observers, s.metrics)

		ln, err := net.Listen("tcp", opts.metricsAddr)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("failed to listen on %s: %w", opts.metricsAddr, err)
		}

		mux := http.NewServeMux()
		mux.Handle("/metrics", s.metrics.Handler())
		s.server = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("Metrics server failed", "error", err)
			}
		}()
		slog.Info("Serving metrics", "addr", ln.Addr().String())
	}

	slog.Info("Run started", "run_id", s.runID, "seed", s.seed)
	return s, nil
}

// Close flushes the trace and stops the metrics server.
func (s *session) Close() error {
	var errs []error
	if s.trace != nil {
		if err := s.trace.Close(); err != nil {
			errs = append(errs, err)
		} else {
			slog.Info("Trace written", "path", s.trace.Path())
		}
	}
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to stop metrics server: %w", err))
		}
	}
	return errors.Join(errs...)
}

// solve runs one engine over the problem with the session's observers.
func solve[S any](ctx context.Context, s *session, problem anneal.Problem[S], schedule anneal.Config) (S, *anneal.Engine[S], error) {
	engine, err := anneal.New(problem, anneal.Rand(s.rng), schedule)
	if err != nil {
		var zero S
		return zero, nil, err
	}
	for _, o := range s.observers {
		engine.AddObserver(o)
	}

	start := time.Now()
	state, err := engine.Optimize(ctx)
	stats := engine.Stats()
	slog.Info("Run complete",
		"run_id", s.runID,
		"elapsed", time.Since(start),
		"epochs", stats.Epochs,
		"steps", stats.Steps,
		"acceptance_rate", stats.AcceptanceRate(),
		"final_temperature", engine.Temperature(),
	)
	return state, engine, err
}
