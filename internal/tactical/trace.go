package tactical

import "fmt"

// TraceKind classifies one search trace event.
type TraceKind uint8

const (
	TraceVisit TraceKind = iota // node popped from the frontier
	TraceRelax                  // neighbour reached with a strictly better cost
	TraceGoal                   // goal popped, search finished
)

// TraceKindName returns a short display name for a trace event kind.
func TraceKindName(k TraceKind) string {
	switch k {
	case TraceVisit:
		return "visit"
	case TraceRelax:
		return "relax"
	case TraceGoal:
		return "goal"
	default:
		return "unknown"
	}
}

// TraceEvent is one recorded step of frontier activity.
type TraceEvent struct {
	Seq  int // order within the trace, from 0
	Kind TraceKind
	At   Point
	G    float64 // accumulated cost at the event
	F    float64 // G plus heuristic
}

// String formats the event as a fixed-width log line.
//
//	[0042] visit (5,4)  g=7.20 f=16.20
func (e TraceEvent) String() string {
	return fmt.Sprintf("[%04d] %-5s (%d,%d)  g=%.2f f=%.2f",
		e.Seq, TraceKindName(e.Kind), e.At.X, e.At.Y, e.G, e.F)
}

// Trace collects frontier activity during a single search, for diagnostics
// and visualisation. It is unbounded and machine-readable. Pass one to
// FindRoute via WithTrace; a nil *Trace records nothing, so the recording
// methods are nil-safe.
type Trace struct {
	events []TraceEvent
}

// NewTrace creates an empty trace.
func NewTrace() *Trace {
	return &Trace{}
}

func (t *Trace) add(kind TraceKind, at Point, g, f float64) {
	if t == nil {
		return
	}
	t.events = append(t.events, TraceEvent{Seq: len(t.events), Kind: kind, At: at, G: g, F: f})
}

func (t *Trace) visit(at Point, g, f float64) { t.add(TraceVisit, at, g, f) }
func (t *Trace) relax(at Point, g, f float64) { t.add(TraceRelax, at, g, f) }
func (t *Trace) goal(at Point, g float64)     { t.add(TraceGoal, at, g, g) }

// Events returns all recorded events.
func (t *Trace) Events() []TraceEvent {
	if t == nil {
		return nil
	}
	return t.events
}

// Filter returns the events of one kind.
func (t *Trace) Filter(kind TraceKind) []TraceEvent {
	var out []TraceEvent
	for _, e := range t.Events() {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many events of one kind were recorded.
func (t *Trace) Count(kind TraceKind) int {
	n := 0
	for _, e := range t.Events() {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Visited returns the points popped from the frontier, in pop order.
// A point can appear more than once when a stale entry pops.
func (t *Trace) Visited() []Point {
	var out []Point
	for _, e := range t.Events() {
		if e.Kind == TraceVisit {
			out = append(out, e.At)
		}
	}
	return out
}

// VisitOrder returns, for each visited point, the index of its first pop.
func (t *Trace) VisitOrder() map[Point]int {
	order := make(map[Point]int)
	i := 0
	for _, e := range t.Events() {
		if e.Kind != TraceVisit {
			continue
		}
		if _, seen := order[e.At]; !seen {
			order[e.At] = i
		}
		i++
	}
	return order
}
