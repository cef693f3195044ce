package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sortlab/internal/timsort"
)

// sortCmd sorts integers and prints the result
var sortCmd = &cobra.Command{
	Use:   "sort [file|-]",
	Short: "Sort integers and print the result with engine stats",
	Long: `Sorts whitespace-separated integers from a file, stdin ("-") or a
--dataset generator, printing the sorted sequence to stdout and the engine
counters to the log.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSort,
}

func runSort(cmd *cobra.Command, args []string) error {
	values, err := loadInput(args)
	if err != nil {
		return err
	}

	sorted, stats := timsort.SortWithOptions(values, intAsc, engineOptions(nil))

	logger.Info("sort complete",
		zap.Int("n", len(sorted)),
		zap.Int("comparisons", stats.Comparisons),
		zap.Int("moves", stats.Moves),
		zap.Int("runs", stats.RunsDetected),
		zap.Int("reversals", stats.RunsReversed),
		zap.Int("merges", stats.Merges),
		zap.Int("gallop_entries", stats.GallopEntries),
		zap.Int("max_stack_depth", stats.MaxStackDepth),
	)

	return writeInts(os.Stdout, sorted)
}
