package tactical

import (
	"container/heap"
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when a search is asked for something it must
// not attempt: an endpoint outside the grid or on an obstacle, or weights
// that would break the cost model.
var ErrInvalidInput = errors.New("tactical: invalid search input")

// Point is an (x, y) grid coordinate. It is the key type for every
// search-side lookup, so routes never depend on how coordinates might pack
// into a single integer.
type Point struct {
	X, Y int
}

// Manhattan returns the Manhattan distance from p to o.
func (p Point) Manhattan(o Point) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

// Weights parameterises the traversal cost model. Danger scales how strongly
// per-cell danger repels the route; Cover scales how strongly cover attracts
// it.
type Weights struct {
	Danger float64
	Cover  float64
}

// DefaultWeights returns the reference tuning.
func DefaultWeights() Weights {
	return Weights{Danger: 5.0, Cover: 0.4}
}

// moveCost is the cost of stepping into c. Cost is always charged to the
// destination cell of a move, never the origin.
func (w Weights) moveCost(c *Cell) float64 {
	return 1.0 + c.Danger*w.Danger - c.Cover*w.Cover
}

// validate rejects weights under which a step could cost zero or less,
// since the search would then relax cycles without bound.
func (w Weights) validate() error {
	if w.Danger < 0 || w.Cover < 0 || w.Cover >= 1 {
		return fmt.Errorf("%w: weights danger=%g cover=%g (need danger >= 0 and 0 <= cover < 1)",
			ErrInvalidInput, w.Danger, w.Cover)
	}
	return nil
}

// SearchOption adjusts a single FindRoute call.
type SearchOption func(*searchConfig)

type searchConfig struct {
	weights Weights
	trace   *Trace
}

// WithWeights overrides the default cost weights for one search.
func WithWeights(w Weights) SearchOption {
	return func(cfg *searchConfig) { cfg.weights = w }
}

// WithTrace records frontier activity into tr during the search.
func WithTrace(tr *Trace) SearchOption {
	return func(cfg *searchConfig) { cfg.trace = tr }
}

// --- A* search ---

type pathNode struct {
	at    Point
	g, h  float64
	seq   int // insertion order, breaks f ties first-in-first-out
	index int // heap index
}

type frontier []*pathNode

func (fr frontier) Len() int { return len(fr) }
func (fr frontier) Less(i, j int) bool {
	fi, fj := fr[i].g+fr[i].h, fr[j].g+fr[j].h
	if fi != fj {
		return fi < fj
	}
	return fr[i].seq < fr[j].seq
}
func (fr frontier) Swap(i, j int) { fr[i], fr[j] = fr[j], fr[i]; fr[i].index = i; fr[j].index = j }
func (fr *frontier) Push(x interface{}) {
	n := x.(*pathNode)
	n.index = len(*fr)
	*fr = append(*fr, n)
}
func (fr *frontier) Pop() interface{} {
	old := *fr
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*fr = old[:len(old)-1]
	return n
}

// Neighbour order: east, west, north, south.
var dirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// FindRoute runs a tactical A* search from start to goal over 4-directional
// moves and returns the least-cost route under the weighted cost model.
//
// Outcomes:
//   - a route was found: non-nil *Route, nil error. When start == goal the
//     route is non-nil but empty.
//   - start and goal are disconnected: nil *Route, nil error. Unreachable is
//     an ordinary result, not a failure; callers branch on the nil route.
//   - start or goal out of bounds or on an obstacle, or bad weights: nil
//     *Route and an error wrapping ErrInvalidInput. The search is never run.
//
// The heuristic is plain Manhattan distance. Cover can pull a step's cost
// below one unit (to 1.0 minus the cover weight), so the heuristic can
// overestimate across heavy cover and the returned route may be marginally
// suboptimal in high-cover, low-danger regions. This matches the reference
// tuning and is kept deliberately; see the package tests for the exact
// reference behaviour.
//
// Equal-f frontier ties break by insertion order (earliest first). Which of
// several equal-cost routes wins depends on this rule, so it is fixed here
// rather than left to heap internals.
//
// The grid is only read. All search state lives in locals, so concurrent
// calls over a grid that is not being edited are safe.
func FindRoute(g *Grid, start, goal Point, opts ...SearchOption) (*Route, error) {
	cfg := searchConfig{weights: DefaultWeights()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.weights.validate(); err != nil {
		return nil, err
	}
	if err := checkEndpoint(g, start, "start"); err != nil {
		return nil, err
	}
	if err := checkEndpoint(g, goal, "goal"); err != nil {
		return nil, err
	}

	w := cfg.weights
	tr := cfg.trace

	startNode := &pathNode{at: start, g: 0, h: float64(start.Manhattan(goal))}
	fr := &frontier{startNode}
	heap.Init(fr)
	seq := 1

	best := map[Point]float64{start: 0}
	parent := map[Point]Point{}

	expanded := 0
	for fr.Len() > 0 {
		cur := heap.Pop(fr).(*pathNode)
		expanded++
		tr.visit(cur.at, cur.g, cur.g+cur.h)
		if cur.at == goal {
			tr.goal(cur.at, cur.g)
			return buildRoute(g, parent, goal, cur.g, expanded), nil
		}

		for _, d := range dirs {
			np := Point{X: cur.at.X + d[0], Y: cur.at.Y + d[1]}
			if !g.Inside(np.X, np.Y) {
				continue
			}
			c := &g.cells[np.Y*g.width+np.X]
			if !c.Passable() {
				continue
			}
			ng := cur.g + w.moveCost(c)
			// Strictly-better only: a stale frontier entry can still pop
			// later, but its relaxations can never beat the recorded bests,
			// so no separate closed set is kept.
			if prev, ok := best[np]; ok && ng >= prev {
				continue
			}
			best[np] = ng
			parent[np] = cur.at
			h := float64(np.Manhattan(goal))
			heap.Push(fr, &pathNode{at: np, g: ng, h: h, seq: seq})
			tr.relax(np, ng, ng+h)
			seq++
		}
	}
	return nil, nil // no route
}

// checkEndpoint validates one search endpoint before any searching happens.
func checkEndpoint(g *Grid, p Point, label string) error {
	if !g.Inside(p.X, p.Y) {
		return fmt.Errorf("%w: %s %v out of bounds", ErrInvalidInput, label, p)
	}
	if !g.cells[p.Y*g.width+p.X].Passable() {
		return fmt.Errorf("%w: %s %v is an obstacle", ErrInvalidInput, label, p)
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
