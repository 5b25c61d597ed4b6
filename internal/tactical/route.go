package tactical

// Route is one discovered least-cost route. Points runs from the cell after
// the start to the goal inclusive, so Len equals the number of moves and the
// start cell never contributes to Cost or Danger. A route is built fresh by
// each search and shares nothing with the grid.
type Route struct {
	Points   []Point
	Cost     float64 // accumulated weighted cost over Points
	Danger   float64 // plain danger sum over Points, for reporting only
	Expanded int     // frontier pops the search performed
}

// Len returns the number of moves in the route.
func (r *Route) Len() int { return len(r.Points) }

// PointSet returns route membership keyed by coordinate.
func (r *Route) PointSet() map[Point]bool {
	set := make(map[Point]bool, len(r.Points))
	for _, p := range r.Points {
		set[p] = true
	}
	return set
}

// buildRoute walks predecessor links back from the goal, reverses them, and
// fills in the reporting sums. The start has no predecessor entry, so it is
// naturally excluded; when start == goal the route is empty.
func buildRoute(g *Grid, parent map[Point]Point, goal Point, cost float64, expanded int) *Route {
	var points []Point
	for cur := goal; ; {
		prev, ok := parent[cur]
		if !ok {
			break
		}
		points = append(points, cur)
		cur = prev
	}
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}

	danger := 0.0
	for _, p := range points {
		danger += g.cells[p.Y*g.width+p.X].Danger
	}
	return &Route{Points: points, Cost: cost, Danger: danger, Expanded: expanded}
}
