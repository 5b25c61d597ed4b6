// Package scenario provides named preset maps for the demo tools and tests,
// plus a small builder vocabulary for composing new ones.
package scenario

import (
	"github.com/Garsondee/Path-Sense/internal/tactical"
)

// Scenario describes a map that can be instantiated any number of times.
// Build returns a fresh grid on every call, so callers may edit or search the
// result without affecting later builds.
type Scenario struct {
	Name   string
	Width  int
	Height int
	Start  tactical.Point
	Goal   tactical.Point
	edits  []func(*tactical.Grid)
}

// Option adds one placement step to a scenario under construction.
type Option func(*Scenario)

// New assembles a scenario from placement options. Options apply in order at
// Build time, so a later placement at the same coordinates wins, exactly as
// direct grid edits would.
func New(name string, width, height int, start, goal tactical.Point, opts ...Option) Scenario {
	s := Scenario{Name: name, Width: width, Height: height, Start: start, Goal: goal}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Build instantiates the scenario as a fresh grid.
func (s Scenario) Build() *tactical.Grid {
	g := tactical.New(s.Width, s.Height)
	for _, edit := range s.edits {
		edit(g)
	}
	return g
}

// WithObstacleAt places a single obstacle.
func WithObstacleAt(x, y int) Option {
	return func(s *Scenario) {
		s.edits = append(s.edits, func(g *tactical.Grid) { g.AddObstacle(x, y) })
	}
}

// WithVWall places a vertical obstacle run at x covering y0..y1 inclusive.
func WithVWall(x, y0, y1 int) Option {
	return func(s *Scenario) {
		s.edits = append(s.edits, func(g *tactical.Grid) {
			for y := y0; y <= y1; y++ {
				g.AddObstacle(x, y)
			}
		})
	}
}

// WithHWall places a horizontal obstacle run at y covering x0..x1 inclusive.
func WithHWall(y, x0, x1 int) Option {
	return func(s *Scenario) {
		s.edits = append(s.edits, func(g *tactical.Grid) {
			for x := x0; x <= x1; x++ {
				g.AddObstacle(x, y)
			}
		})
	}
}

// WithCoverAt places cover with the default value.
func WithCoverAt(x, y int) Option {
	return WithCoverValue(x, y, tactical.DefaultCover)
}

// WithCoverValue places cover with an explicit value.
func WithCoverValue(x, y int, value float64) Option {
	return func(s *Scenario) {
		s.edits = append(s.edits, func(g *tactical.Grid) { g.AddCover(x, y, value) })
	}
}

// WithHazardAt places a hazard source with the given radius.
func WithHazardAt(x, y, radius int) Option {
	return func(s *Scenario) {
		s.edits = append(s.edits, func(g *tactical.Grid) { g.AddHazard(x, y, radius) })
	}
}

// withEdit appends a free-form placement step. Used by the generated presets.
func withEdit(edit func(*tactical.Grid)) Option {
	return func(s *Scenario) { s.edits = append(s.edits, edit) }
}
