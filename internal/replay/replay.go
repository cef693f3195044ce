// Package replay persists recorded sort traces as JSON-lines files so a
// visualization front end (or a later CLI invocation) can step through a
// sort that already happened. A replay file is one header line followed by
// one line per trace event, in emission order.
package replay

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"sortlab/internal/timsort"
	"sortlab/internal/trace"
)

// Header describes the sort a replay file captured.
type Header struct {
	SessionID       string    `json:"session_id"`
	CreatedAt       time.Time `json:"created_at"`
	InputSize       int       `json:"input_size"`
	MinRun          int       `json:"min_run"` // 0 means automatic
	GallopThreshold int       `json:"gallop_threshold"`
	UseGalloping    bool      `json:"use_galloping"`
	UseNaturalRuns  bool      `json:"use_natural_runs"`
	EventCount      int       `json:"event_count"`
}

// Trace is a fully loaded replay: the header plus every event.
type Trace struct {
	Header Header
	Events []trace.Event
}

// NewHeader builds a header for a sort of inputSize elements under opts,
// assigning a fresh session id.
func NewHeader(inputSize int, opts timsort.Options) Header {
	return Header{
		SessionID:       uuid.NewString(),
		CreatedAt:       time.Now().UTC(),
		InputSize:       inputSize,
		MinRun:          opts.MinRun,
		GallopThreshold: opts.GallopThreshold,
		UseGalloping:    opts.UseGalloping,
		UseNaturalRuns:  opts.UseNaturalRuns,
	}
}

// Filename returns the canonical file name for this session.
func (h Header) Filename() string {
	return h.SessionID + ".trace.jsonl"
}

// Write serializes the header and events to w.
func Write(w io.Writer, h Header, events []trace.Event) error {
	h.EventCount = len(events)

	enc := json.NewEncoder(w)
	if err := enc.Encode(h); err != nil {
		return fmt.Errorf("failed to write replay header: %w", err)
	}
	for i, ev := range events {
		if err := enc.Encode(ev); err != nil {
			return fmt.Errorf("failed to write replay event %d: %w", i, err)
		}
	}
	return nil
}

// WriteFile writes a replay file named after the session id into dir,
// creating dir if needed, and returns the full path.
func WriteFile(dir string, h Header, events []trace.Event) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create trace directory: %w", err)
	}

	path := filepath.Join(dir, h.Filename())
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create replay file: %w", err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := Write(bw, h, events); err != nil {
		return "", err
	}
	if err := bw.Flush(); err != nil {
		return "", fmt.Errorf("failed to flush replay file: %w", err)
	}
	return path, nil
}

// Read parses a replay stream produced by Write.
func Read(r io.Reader) (*Trace, error) {
	dec := json.NewDecoder(r)

	var h Header
	if err := dec.Decode(&h); err != nil {
		return nil, fmt.Errorf("failed to read replay header: %w", err)
	}

	t := &Trace{Header: h}
	for {
		var ev trace.Event
		if err := dec.Decode(&ev); err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("failed to read replay event %d: %w", len(t.Events), err)
		}
		t.Events = append(t.Events, ev)
	}

	if h.EventCount != 0 && h.EventCount != len(t.Events) {
		return nil, fmt.Errorf("replay truncated: header says %d events, found %d", h.EventCount, len(t.Events))
	}
	return t, nil
}

// ReadFile loads a replay file from disk.
func ReadFile(path string) (*Trace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open replay file: %w", err)
	}
	defer f.Close()
	return Read(bufio.NewReader(f))
}
