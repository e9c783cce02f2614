package main

import (
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/cwbudde/anneal/internal/opt"
)

var (
	dim     int
	bound   float64
	iters   int
	popSize int
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare annealing with mayfly on a sphere function",
	Long: `Minimizes sum(x_i^2) over [-bound, bound]^dim with the annealing
engine and with the mayfly optimizer, then prints both results.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cfg.Seed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		optimizers := []opt.Optimizer{
			opt.NewAnnealing(cfg.Schedule(), cfg.Seed),
			opt.NewMayfly(iters, popSize, cfg.Seed),
		}
		return runCompare(optimizers, dim, bound, cmd.OutOrStdout())
	},
}

func init() {
	compareCmd.Flags().IntVar(&dim, "dim", 3, "Number of dimensions")
	compareCmd.Flags().Float64Var(&bound, "bound", 10, "Half-width of the search box")
	compareCmd.Flags().IntVar(&iters, "iters", 100, "Mayfly max iterations")
	compareCmd.Flags().IntVar(&popSize, "pop", 30, "Mayfly population size")
	rootCmd.AddCommand(compareCmd)
}

// sphere is sum(x_i^2), minimum 0 at the origin.
func sphere(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += v * v
	}
	return sum
}

func runCompare(optimizers []opt.Optimizer, dim int, bound float64, out io.Writer) error {
	if dim < 1 {
		return fmt.Errorf("dim must be >= 1, got %d", dim)
	}
	if !(bound > 0) {
		return fmt.Errorf("bound must be > 0, got %v", bound)
	}

	lower := make([]float64, dim)
	upper := make([]float64, dim)
	for i := range lower {
		lower[i] = -bound
		upper[i] = bound
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "OPTIMIZER\tCOST\tELAPSED")
	for _, o := range optimizers {
		start := time.Now()
		res, err := o.Run(sphere, lower, upper)
		if err != nil {
			return fmt.Errorf("%s: %w", o.Name(), err)
		}
		elapsed := time.Since(start)
		slog.Info("Optimizer finished", "optimizer", o.Name(), "cost", res.Cost, "elapsed", elapsed)
		fmt.Fprintf(tw, "%s\t%.6g\t%s\n", o.Name(), res.Cost, elapsed.Round(time.Millisecond))
	}
	return tw.Flush()
}
