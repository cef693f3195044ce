package main

import (
	"fmt"
	"os"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"sortlab/internal/dataset"
	"sortlab/internal/timsort"
)

// benchCmd compares engine variants across the dataset generators
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark engine variants across the built-in datasets",
	Long: `Runs every dataset generator through three engine variants (full
engine, galloping disabled, natural-run detection disabled) and prints
timing and counter comparisons.`,
	RunE: runBench,
}

// benchVariant is one engine configuration under comparison.
type benchVariant struct {
	name    string
	gallop  bool
	natural bool
}

// benchResult is one (dataset, variant) measurement.
type benchResult struct {
	shape   dataset.Shape
	variant string
	elapsed time.Duration
	stats   timsort.Stats
}

func runBench(cmd *cobra.Command, args []string) error {
	variants := []benchVariant{
		{name: "full", gallop: true, natural: true},
		{name: "no-gallop", gallop: false, natural: true},
		{name: "no-natural-runs", gallop: true, natural: false},
	}
	shapes := dataset.Shapes()

	results := make([]benchResult, len(shapes)*len(variants))
	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())

	for si, shape := range shapes {
		values, err := dataset.Generate(shape, flagBenchSize, flagBenchSeed)
		if err != nil {
			return err
		}
		for vi, variant := range variants {
			idx := si*len(variants) + vi
			shape, variant := shape, variant
			g.Go(func() error {
				opts := timsort.DefaultOptions()
				opts.UseGalloping = variant.gallop
				opts.UseNaturalRuns = variant.natural

				start := time.Now()
				sorted, stats := timsort.SortWithOptions(values, intAsc, opts)
				elapsed := time.Since(start)

				if !dataset.IsSorted(sorted) {
					return fmt.Errorf("bench produced unsorted output for %s/%s", shape, variant.name)
				}
				results[idx] = benchResult{shape: shape, variant: variant.name, elapsed: elapsed, stats: stats}
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATASET\tVARIANT\tTIME\tCOMPARES\tMOVES\tRUNS\tMERGES\tGALLOPS")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%v\t%d\t%d\t%d\t%d\t%d\n",
			r.shape, r.variant, r.elapsed.Round(time.Microsecond),
			r.stats.Comparisons, r.stats.Moves, r.stats.RunsDetected,
			r.stats.Merges, r.stats.GallopEntries)
	}
	return tw.Flush()
}
