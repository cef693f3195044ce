// Package trace defines the observability contract between the sorting
// engine and anything that wants to replay its steps (CLI trace files,
// visualization front ends, tests). The engine emits one Event per
// meaningfully observable step; sinks are fire-and-forget collaborators
// and must never be able to change the outcome of a sort.
package trace

// Kind identifies the step an Event describes.
type Kind string

const (
	KindRunDetected    Kind = "run-detected"    // natural run identified
	KindRunReversed    Kind = "run-reversed"    // descending run normalized in place
	KindInsertion      Kind = "binary-insertion" // one element placed by the run extender
	KindMergeStarted   Kind = "merge-started"
	KindMergeProgress  Kind = "merge-progress"
	KindMergeCompleted Kind = "merge-completed"
	KindGallopEntered  Kind = "galloping-mode" // merge switched to gallop mode
	KindGallopAdvanced Kind = "gallop-advance" // elements bulk-copied by one gallop
)

// Bounds marks an inclusive index range of the working array.
type Bounds struct {
	Lo int `json:"lo"`
	Hi int `json:"hi"`
}

// Event is a single observable step of a sort. Only the fields that make
// sense for the Kind are populated; the rest stay at their zero values.
type Event struct {
	Kind Kind `json:"kind"`

	// RunBounds covers run detection, reversal and insertion steps.
	RunBounds *Bounds `json:"run_bounds,omitempty"`

	// MergeBounds covers the destination range of a merge.
	MergeBounds *Bounds `json:"merge_bounds,omitempty"`

	// InsertedValue is the key placed by a binary-insertion step.
	InsertedValue any `json:"inserted_value,omitempty"`

	// Position is the destination index of an insertion or the current
	// write cursor of a merge.
	Position int `json:"position,omitempty"`

	// Count is the number of elements advanced by a gallop or written
	// since the last progress event.
	Count int `json:"count,omitempty"`

	// Side names the run that galloped: "left" or "right".
	Side string `json:"side,omitempty"`
}

// Sink receives events from the engine. Implementations must be fast or
// buffer internally; the engine invokes Emit synchronously on its own
// goroutine. A panicking sink is isolated by the engine.
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(Event)

// Emit implements Sink.
func (f SinkFunc) Emit(ev Event) { f(ev) }

// Recorder is an in-memory Sink that captures every event in emission
// order. It is the backing store for replay files and the primary test
// double.
type Recorder struct {
	events []Event
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Emit implements Sink.
func (r *Recorder) Emit(ev Event) {
	r.events = append(r.events, ev)
}

// Events returns a copy of the captured events in emission order.
func (r *Recorder) Events() []Event {
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Len returns the number of captured events.
func (r *Recorder) Len() int { return len(r.events) }

// Reset discards all captured events.
func (r *Recorder) Reset() { r.events = r.events[:0] }

// CountingSink tallies events per Kind without retaining them. Useful for
// cheap assertions over large inputs.
type CountingSink struct {
	counts map[Kind]int
}

// NewCountingSink returns an empty CountingSink.
func NewCountingSink() *CountingSink {
	return &CountingSink{counts: make(map[Kind]int)}
}

// Emit implements Sink.
func (c *CountingSink) Emit(ev Event) {
	c.counts[ev.Kind]++
}

// Count returns how many events of the given kind were seen.
func (c *CountingSink) Count(k Kind) int { return c.counts[k] }

// Total returns the total number of events seen.
func (c *CountingSink) Total() int {
	n := 0
	for _, v := range c.counts {
		n += v
	}
	return n
}
