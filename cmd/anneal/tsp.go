package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/cwbudde/anneal/internal/config"
	"github.com/cwbudde/anneal/internal/problems"
)

var tspCmd = &cobra.Command{
	Use:   "tsp",
	Short: "Solve the travelling-salesman demonstration",
	Long: `Anneals a closed tour through the configured cities and prints it
starting from city 0, followed by its length.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return runTSP(ctx, cfg, currentSessionOptions(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(tspCmd)
}

func runTSP(ctx context.Context, cfg *config.Config, opts sessionOptions, out io.Writer) (err error) {
	s, err := openSession(cfg.Seed, opts)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	tsp, err := problems.NewTSP(cfg.CitySet(), s.rng)
	if err != nil {
		return err
	}

	start := time.Now()
	tour, engine, err := solve[problems.Tour](ctx, s, tsp, cfg.Schedule())
	if err != nil {
		if engine != nil {
			// Cancelled runs still report where the search had got to.
			tour = problems.Rotate(tour)
			fmt.Fprintf(out, "\nInterrupted state: %s\n", formatTour(tour))
			fmt.Fprintf(out, "Interrupted energy: %g\n\n", tsp.Energy(tour))
		}
		return fmt.Errorf("annealing stopped: %w", err)
	}

	tour = problems.Rotate(tour)
	fmt.Fprintf(out, "\nOptimal state: %s\n", formatTour(tour))
	fmt.Fprintf(out, "Optimal energy: %g\n\n", tsp.Energy(tour))

	if best, energy, ok := engine.Best(); ok {
		fmt.Fprintf(out, "Best state seen: %s\n", formatTour(problems.Rotate(best)))
		fmt.Fprintf(out, "Best energy seen: %g\n\n", energy)
	}

	writeSummary(out, engine.Stats(), time.Since(start))
	return nil
}
