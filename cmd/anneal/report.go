package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/cwbudde/anneal/internal/anneal"
)

// formatTour renders a tour as "[0, 4, 2]".
func formatTour(tour []int) string {
	parts := make([]string, len(tour))
	for i, c := range tour {
		parts[i] = strconv.Itoa(c)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// writeSummary prints the run statistics below the report.
func writeSummary(w io.Writer, stats anneal.Stats, elapsed time.Duration) {
	fmt.Fprintf(w, "%s trial moves over %s epochs in %s (%.1f%% accepted, %s cooling steps)\n",
		humanize.Comma(int64(stats.Steps)),
		humanize.Comma(int64(stats.Epochs)),
		elapsed.Round(time.Millisecond),
		100*stats.AcceptanceRate(),
		humanize.Comma(int64(stats.CoolingSteps)),
	)
}
