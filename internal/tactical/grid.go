package tactical

import "errors"

// ErrOutOfBounds is returned by checked read accessors for coordinates
// outside the grid.
var ErrOutOfBounds = errors.New("tactical: coordinates out of bounds")

// DefaultCover is the cover value used by callers that place cover without
// choosing one.
const DefaultCover = 0.8

// Grid is the authoritative per-cell terrain representation.
//
// It owns a width x height rectangle of cells, all initialised to open
// ground. Placement operations mutate cells in place; the search engine only
// ever reads it, so a grid that is not being edited may serve any number of
// concurrent searches.
type Grid struct {
	width  int
	height int
	cells  []Cell // row-major: index = y*width + x
}

// New creates a grid of open cells. Dimensions below 1 are clamped to 1.
func New(width, height int) *Grid {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	cells := make([]Cell, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cells[y*width+x] = Cell{X: x, Y: y}
		}
	}
	return &Grid{width: width, height: height, cells: cells}
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// Inside returns true if (x, y) is within the grid.
func (g *Grid) Inside(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns a pointer to the cell at (x, y), or nil if out of bounds.
func (g *Grid) At(x, y int) *Cell {
	if !g.Inside(x, y) {
		return nil
	}
	return &g.cells[y*g.width+x]
}

// Cell is the checked read accessor: it returns the cell at (x, y) or
// ErrOutOfBounds. Callers that have already validated coordinates can use At.
func (g *Grid) Cell(x, y int) (*Cell, error) {
	if !g.Inside(x, y) {
		return nil, ErrOutOfBounds
	}
	return &g.cells[y*g.width+x], nil
}

// AddCover places cover at (x, y) with the given value, clamped to [0, 1].
// Out-of-bounds placements are silently ignored.
func (g *Grid) AddCover(x, y int, value float64) {
	if !g.Inside(x, y) {
		return
	}
	c := &g.cells[y*g.width+x]
	c.Terrain = TerrainCover
	c.Cover = clamp01(value)
}

// AddObstacle makes (x, y) impassable. Any danger or cover already on the
// cell is kept but becomes irrelevant: the search rejects obstacles outright.
// Out-of-bounds placements are silently ignored.
func (g *Grid) AddObstacle(x, y int) {
	if !g.Inside(x, y) {
		return
	}
	g.cells[y*g.width+x].Terrain = TerrainObstacle
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
