// Package render draws a tactical grid as ASCII text, matching the original
// demo's glyph scheme so its output can be compared byte for byte.
package render

import (
	"fmt"
	"strings"

	"github.com/Garsondee/Path-Sense/internal/tactical"
)

// Map renders the grid with an optional route and start/goal markers. Rows
// print from y=height-1 down to 0, two characters per cell, with a leading
// blank line. Start and goal win over route membership, and the route wins
// over terrain. Pass a nil route (and out-of-grid start/goal such as
// {-1,-1}) to render the bare map.
//
// Glyphs: S start, G goal, * route, X obstacle, # cover, B hazard source,
// ! danger above 0.7, o danger above 0.3, . otherwise.
func Map(g *tactical.Grid, route *tactical.Route, start, goal tactical.Point) string {
	var onRoute map[tactical.Point]bool
	if route != nil {
		onRoute = route.PointSet()
	}

	var b strings.Builder
	b.WriteByte('\n')
	for y := g.Height() - 1; y >= 0; y-- {
		for x := 0; x < g.Width(); x++ {
			p := tactical.Point{X: x, Y: y}
			switch {
			case p == start:
				b.WriteString("S ")
			case p == goal:
				b.WriteString("G ")
			case onRoute[p]:
				b.WriteString("* ")
			default:
				b.WriteString(cellGlyph(g.At(x, y)))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func cellGlyph(c *tactical.Cell) string {
	switch c.Terrain {
	case tactical.TerrainObstacle:
		return "X "
	case tactical.TerrainCover:
		return "# "
	case tactical.TerrainHazard:
		return "B "
	}
	switch {
	case c.Danger > 0.7:
		return "! "
	case c.Danger > 0.3:
		return "o "
	default:
		return ". "
	}
}

// Stats renders the original demo's two summary lines for a found route.
func Stats(r *tactical.Route) string {
	return fmt.Sprintf("\nPath length : %d\nDanger sum  : %.2f\n", r.Len(), r.Danger)
}
