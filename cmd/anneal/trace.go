package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/cwbudde/anneal/internal/trace"
)

var traceEvery int

var traceCmd = &cobra.Command{
	Use:   "trace <run-id>",
	Short: "Print the trace of a previous run",
	Long: `Reads <trace-dir>/runs/<run-id>/trace.jsonl and prints every n-th epoch
together with the last one.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if traceDir == "" {
			return fmt.Errorf("--trace-dir is required")
		}
		return runTrace(traceDir, args[0], traceEvery, cmd.OutOrStdout())
	},
}

func init() {
	traceCmd.Flags().IntVar(&traceEvery, "every", 100, "Print every n-th epoch")
	rootCmd.AddCommand(traceCmd)
}

func runTrace(dir, runID string, every int, out io.Writer) error {
	if every < 1 {
		return fmt.Errorf("every must be >= 1, got %d", every)
	}

	r, err := trace.NewReader(dir, runID)
	if err != nil {
		return err
	}
	defer r.Close()

	entries, err := r.ReadAll()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintf(out, "Run %s has no epochs\n", runID)
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "EPOCH\tTEMPERATURE\tENERGY\tACCEPTED\tREJECTED\tCOOLED")
	for i, e := range entries {
		if i%every != 0 && i != len(entries)-1 {
			continue
		}
		fmt.Fprintf(tw, "%d\t%.6g\t%.6g\t%d\t%d\t%t\n", e.Epoch, e.Temperature, e.Energy, e.Accepted, e.Rejected, e.Cooled)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	last := entries[len(entries)-1]
	fmt.Fprintf(out, "\n%s epochs, final temperature %.6g, final energy %.6g\n",
		humanize.Comma(int64(len(entries))), last.Temperature, last.Energy)
	return nil
}
