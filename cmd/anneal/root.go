package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cwbudde/anneal/internal/config"
)

var (
	logLevel         string
	logger           *slog.Logger
	configPath       string
	seed             int64
	temperature      float64
	coolingRate      float64
	trackBest        bool
	traceDir         string
	metricsAddr      string
	progressInterval time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "anneal",
	Short: "Simulated annealing over pluggable problems",
	Long: `Anneal minimizes the energy of a problem by simulated annealing,
accepting worse states early and fewer of them as the temperature decays.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Setup logger
		var level slog.Level
		switch logLevel {
		case "debug":
			level = slog.LevelDebug
		case "info":
			level = slog.LevelInfo
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		default:
			level = slog.LevelInfo
		}

		// Logs go to stderr so the report on stdout stays clean.
		opts := &slog.HandlerOptions{Level: level}
		handler := slog.NewJSONHandler(os.Stderr, opts)
		logger = slog.New(handler)
		slog.SetDefault(logger)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flags.StringVar(&configPath, "config", "", "YAML run file")
	flags.Int64Var(&seed, "seed", 0, "Random seed (0 derives one from the clock)")
	flags.Float64Var(&temperature, "temperature", 100.0, "Initial temperature")
	flags.Float64Var(&coolingRate, "cooling-rate", 0.003, "Fraction of temperature removed per cooling step")
	flags.BoolVar(&trackBest, "track-best", false, "Also report the lowest-energy state seen")
	flags.StringVar(&traceDir, "trace-dir", "", "Write a JSONL trace under <dir>/runs/<run-id>/")
	flags.StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address during the run")
	flags.DurationVar(&progressInterval, "progress-interval", 2*time.Second, "Minimum time between progress log lines")
}

// loadConfig reads the run file and environment, then applies the flags
// the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	return config.Load(configPath, flagOverrides(cmd.Flags()))
}

// flagOverrides copies the explicitly set flags over the file and
// environment settings.
func flagOverrides(flags *pflag.FlagSet) config.Override {
	return func(cfg *config.Config) {
		if flags.Changed("seed") {
			cfg.Seed = seed
		}
		if flags.Changed("temperature") {
			cfg.Temperature = temperature
		}
		if flags.Changed("cooling-rate") {
			cfg.CoolingRate = coolingRate
		}
		if flags.Changed("track-best") {
			cfg.TrackBest = trackBest
		}
	}
}
