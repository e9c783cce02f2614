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

var target float64

var scalarCmd = &cobra.Command{
	Use:   "scalar",
	Short: "Minimize (x - target)^2 starting from x = 0",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return runScalar(ctx, cfg, target, currentSessionOptions(), cmd.OutOrStdout())
	},
}

func init() {
	scalarCmd.Flags().Float64Var(&target, "target", 5.0, "Value that minimizes the energy")
	rootCmd.AddCommand(scalarCmd)
}

func runScalar(ctx context.Context, cfg *config.Config, target float64, opts sessionOptions, out io.Writer) (err error) {
	s, err := openSession(cfg.Seed, opts)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	p, err := problems.NewScalar(target, s.rng)
	if err != nil {
		return err
	}

	start := time.Now()
	x, engine, err := solve[float64](ctx, s, p, cfg.Schedule())
	if err != nil {
		if engine != nil {
			fmt.Fprintf(out, "\nInterrupted state: %g\n", x)
			fmt.Fprintf(out, "Interrupted energy: %g\n\n", p.Energy(x))
		}
		return fmt.Errorf("annealing stopped: %w", err)
	}

	fmt.Fprintf(out, "\nOptimal state: %g\n", x)
	fmt.Fprintf(out, "Optimal energy: %g\n\n", p.Energy(x))

	if best, energy, ok := engine.Best(); ok {
		fmt.Fprintf(out, "Best state seen: %g\n", best)
		fmt.Fprintf(out, "Best energy seen: %g\n\n", energy)
	}

	writeSummary(out, engine.Stats(), time.Since(start))
	return nil
}
