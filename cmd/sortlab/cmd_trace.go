package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sortlab/internal/replay"
	"sortlab/internal/timsort"
	"sortlab/internal/trace"
)

// traceCmd records a sort as a replay file
var traceCmd = &cobra.Command{
	Use:   "trace [file|-]",
	Short: "Sort with step recording and write a replay file",
	Long: `Runs a sort with a step recorder attached and writes the captured
events to a replay file in the trace directory. The printed session id
names the file; a visualization front end replays it step by step.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTrace,
}

func runTrace(cmd *cobra.Command, args []string) error {
	values, err := loadInput(args)
	if err != nil {
		return err
	}

	recorder := trace.NewRecorder()
	opts := engineOptions(recorder)
	_, stats := timsort.SortWithOptions(values, intAsc, opts)

	header := replay.NewHeader(len(values), opts)
	path, err := replay.WriteFile(cfg.Trace.Dir, header, recorder.Events())
	if err != nil {
		return err
	}

	logger.Info("trace recorded",
		zap.String("session", header.SessionID),
		zap.String("path", path),
		zap.Int("events", recorder.Len()),
		zap.Int("comparisons", stats.Comparisons),
		zap.Int("merges", stats.Merges),
		zap.Int("gallop_entries", stats.GallopEntries),
	)
	fmt.Println(header.SessionID)
	return nil
}
