package tactical

// CellTrait flags describe derived tactical properties of a grid cell.
// Traits are presentation and reporting aids; the search never consults them.
type CellTrait uint8

const (
	CellTraitNone    CellTrait = 0
	CellTraitWallAdj CellTrait = 1 << iota // adjacent to an obstacle
	CellTraitCorner                        // two perpendicular adjacent obstacles meet here
	CellTraitChoke                         // open gap between obstacles on opposite sides
	CellTraitExposed                       // straight-line sight to a hazard source
)

// TraitMap holds per-cell traits computed once from a grid snapshot.
// Rebuild it after editing the grid; it does not track changes.
type TraitMap struct {
	width, height int
	traits        []CellTrait
}

// Analyze classifies every cell of the grid.
func Analyze(g *Grid) *TraitMap {
	tm := &TraitMap{
		width:  g.width,
		height: g.height,
		traits: make([]CellTrait, g.width*g.height),
	}

	blocked := func(x, y int) bool {
		if !g.Inside(x, y) {
			return false
		}
		return g.cells[y*g.width+x].Terrain == TerrainObstacle
	}

	var sources []Point
	for i := range g.cells {
		if g.cells[i].Terrain == TerrainHazard {
			sources = append(sources, Point{X: g.cells[i].X, Y: g.cells[i].Y})
		}
	}

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			idx := y*g.width + x
			if blocked(x, y) {
				continue
			}

			hasN := blocked(x, y+1)
			hasS := blocked(x, y-1)
			hasW := blocked(x-1, y)
			hasE := blocked(x+1, y)

			if hasN || hasS || hasW || hasE {
				tm.traits[idx] |= CellTraitWallAdj
			}
			if (hasN && hasW) || (hasN && hasE) || (hasS && hasW) || (hasS && hasE) {
				tm.traits[idx] |= CellTraitCorner
			}
			// A choke is a walkable gap in a wall run: obstacles on two
			// opposite sides, both perpendicular neighbours open.
			if (hasW && hasE && !hasN && !hasS) || (hasN && hasS && !hasW && !hasE) {
				tm.traits[idx] |= CellTraitChoke
			}

			for _, src := range sources {
				if sightClear(g, Point{X: x, Y: y}, src) {
					tm.traits[idx] |= CellTraitExposed
					break
				}
			}
		}
	}
	return tm
}

// At returns the traits for (x, y), or CellTraitNone when out of bounds.
func (tm *TraitMap) At(x, y int) CellTrait {
	if x < 0 || x >= tm.width || y < 0 || y >= tm.height {
		return CellTraitNone
	}
	return tm.traits[y*tm.width+x]
}

// RouteExposure counts route cells that have straight-line sight to a hazard
// source.
func (tm *TraitMap) RouteExposure(r *Route) int {
	if r == nil {
		return 0
	}
	n := 0
	for _, p := range r.Points {
		if tm.At(p.X, p.Y)&CellTraitExposed != 0 {
			n++
		}
	}
	return n
}

// sightClear walks the cell line from a to b and reports whether no obstacle
// interrupts it. Endpoints themselves do not block.
func sightClear(g *Grid, a, b Point) bool {
	dx := abs(b.X - a.X)
	dy := abs(b.Y - a.Y)
	xStep := -1
	if a.X < b.X {
		xStep = 1
	}
	yStep := -1
	if a.Y < b.Y {
		yStep = 1
	}
	err := dx - dy

	x, y := a.X, a.Y
	for {
		if x == b.X && y == b.Y {
			return true
		}
		if (x != a.X || y != a.Y) && g.cells[y*g.width+x].Terrain == TerrainObstacle {
			return false
		}
		e2 := err * 2
		if e2 > -dy {
			err -= dy
			x += xStep
		}
		if e2 < dx {
			err += dx
			y += yStep
		}
	}
}
