package main

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sortlab/internal/replay"
	"sortlab/internal/timsort"
	"sortlab/internal/trace"
)

// watchCmd live-reloads an input file
var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-sort and re-record whenever the input file changes",
	Long: `Watches an integer file and, on every change, re-sorts it and writes
a fresh replay file to the trace directory. Pair with a visualization front
end polling the trace directory for live demos.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return watchAndTrace(ctx, logger, args[0], cfg.Trace.Dir, engineOptions(nil))
}

// watchAndTrace records one trace immediately, then again on every change
// to path, until ctx is done. The parent directory is watched rather than
// the file itself because editors typically replace files instead of
// writing them in place.
func watchAndTrace(ctx context.Context, logger *zap.Logger, path, traceDir string, base timsort.Options) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	if err := traceOnce(logger, path, traceDir, base); err != nil {
		logger.Warn("initial sort failed", zap.Error(err))
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(path) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("input changed", zap.String("file", ev.Name), zap.String("op", ev.Op.String()))
			if err := traceOnce(logger, path, traceDir, base); err != nil {
				logger.Warn("re-sort failed", zap.Error(err))
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", zap.Error(err))
		}
	}
}

// traceOnce sorts the file contents with a recorder attached and writes
// the replay file.
func traceOnce(logger *zap.Logger, path, traceDir string, base timsort.Options) error {
	values, err := readInts(path)
	if err != nil {
		return err
	}

	recorder := trace.NewRecorder()
	opts := base
	opts.Sink = recorder
	_, stats := timsort.SortWithOptions(values, intAsc, opts)

	header := replay.NewHeader(len(values), opts)
	out, err := replay.WriteFile(traceDir, header, recorder.Events())
	if err != nil {
		return err
	}

	logger.Info("trace updated",
		zap.String("session", header.SessionID),
		zap.String("path", out),
		zap.Int("n", len(values)),
		zap.Int("events", recorder.Len()),
		zap.Int("comparisons", stats.Comparisons),
	)
	return nil
}
