package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"sortlab/internal/dataset"
	"sortlab/internal/timsort"
	"sortlab/internal/trace"
)

// intAsc is the numeric ascending comparator used by every command.
func intAsc(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// engineOptions builds the sort options from config defaults overridden by
// command flags, attaching sink when non-nil.
func engineOptions(sink trace.Sink) timsort.Options {
	opts := timsort.DefaultOptions()
	opts.MinRun = cfg.Engine.MinRun
	opts.GallopThreshold = cfg.Engine.GallopThreshold
	opts.UseGalloping = cfg.Engine.UseGalloping
	opts.UseNaturalRuns = cfg.Engine.UseNaturalRuns

	if flagMinRun > 0 {
		opts.MinRun = flagMinRun
	}
	if flagGallopThreshold > 0 {
		opts.GallopThreshold = flagGallopThreshold
	}
	if flagNoGallop {
		opts.UseGalloping = false
	}
	if flagNoNaturalRuns {
		opts.UseNaturalRuns = false
	}
	opts.Sink = sink
	return opts
}

// loadInput returns the integers to sort: the file argument when given
// ("-" for stdin), otherwise the --dataset generator.
func loadInput(args []string) ([]int, error) {
	if len(args) > 0 {
		return readInts(args[0])
	}
	if flagDataset == "" {
		return nil, fmt.Errorf("no input: pass a file argument, \"-\" for stdin, or --dataset")
	}
	values, err := dataset.Generate(dataset.Shape(flagDataset), flagSize, flagSeed)
	if err != nil {
		return nil, err
	}
	return values, nil
}

// readInts parses whitespace-separated integers from a file or stdin.
func readInts(path string) ([]int, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	return parseInts(r)
}

func parseInts(r io.Reader) ([]int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var values []int
	for sc.Scan() {
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q at position %d", sc.Text(), len(values))
		}
		values = append(values, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return values, nil
}

// writeInts prints values space-separated, one line.
func writeInts(w io.Writer, values []int) error {
	bw := bufio.NewWriter(w)
	for i, v := range values {
		if i > 0 {
			if _, err := bw.WriteString(" "); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(strconv.Itoa(v)); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString("\n"); err != nil {
		return err
	}
	return bw.Flush()
}
