package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sortlab/internal/config"
	"sortlab/internal/logging"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Engine flags shared by sort/trace/bench/watch
	flagMinRun          int
	flagGallopThreshold int
	flagNoGallop        bool
	flagNoNaturalRuns   bool

	// Input flags shared by sort/trace
	flagDataset string
	flagSize    int
	flagSeed    int64

	// Bench flags
	flagBenchSize int
	flagBenchSeed int64

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sortlab",
	Short: "sortlab - instrumented adaptive hybrid sorting engine",
	Long: `sortlab runs an adaptive hybrid sorting engine (natural-run detection,
merge-invariant run stack, galloping merges) instrumented so that every
observable step can be recorded and replayed by a visualization front end.

Commands sort integer sequences from files, stdin or built-in dataset
generators, record replay traces, benchmark engine variants, and watch an
input file for live re-sorting.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		level := cfg.Logging.Level
		if verbose {
			level = "debug"
		}
		logger, err = logging.New(level, cfg.Logging.Format)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "sortlab.yaml", "Path to the config file")

	// Engine flags
	for _, cmd := range []*cobra.Command{sortCmd, traceCmd, watchCmd} {
		cmd.Flags().IntVar(&flagMinRun, "min-run", 0, "Minimum run length (0 = automatic)")
		cmd.Flags().IntVar(&flagGallopThreshold, "gallop-threshold", 0, "Consecutive wins before gallop mode (0 = config default)")
		cmd.Flags().BoolVar(&flagNoGallop, "no-gallop", false, "Disable galloping merges")
		cmd.Flags().BoolVar(&flagNoNaturalRuns, "no-natural-runs", false, "Disable natural-run detection")
	}

	// Input flags
	for _, cmd := range []*cobra.Command{sortCmd, traceCmd} {
		cmd.Flags().StringVar(&flagDataset, "dataset", "", "Generate input instead of reading it (random, sorted, reversed, sawtooth, nearly-sorted, two-runs, few-unique)")
		cmd.Flags().IntVarP(&flagSize, "size", "n", 1000, "Generated input size")
		cmd.Flags().Int64Var(&flagSeed, "seed", 1, "Generator seed")
	}
	benchCmd.Flags().IntVarP(&flagBenchSize, "size", "n", 10000, "Input size per dataset")
	benchCmd.Flags().Int64Var(&flagBenchSeed, "seed", 1, "Generator seed")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
