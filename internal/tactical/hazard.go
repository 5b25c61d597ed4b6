package tactical

import "math"

// AddHazard marks (x, y) as a hazard source and raises danger on every cell
// within Euclidean distance radius of it. The contribution fades linearly
// from 1.0 at the centre to 0.0 at the radius edge; cells merge contributions
// via max, so overlapping hazards never stack above 1.0 and re-applying the
// same hazard is a no-op. A radius of zero or less marks the source cell but
// propagates nothing. Out-of-bounds placements are silently ignored.
func (g *Grid) AddHazard(x, y, radius int) {
	if !g.Inside(x, y) {
		return
	}
	g.cells[y*g.width+x].Terrain = TerrainHazard
	g.propagateHazard(x, y, radius)
}

// propagateHazard applies the falloff disk for a hazard centred at (x, y).
func (g *Grid) propagateHazard(x, y, radius int) {
	if radius <= 0 {
		return
	}
	r := float64(radius)
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			nx, ny := x+dx, y+dy
			if !g.Inside(nx, ny) {
				continue
			}
			dist := math.Hypot(float64(dx), float64(dy))
			if dist > r {
				continue
			}
			falloff := 1.0 - dist/r
			c := &g.cells[ny*g.width+nx]
			if falloff > c.Danger {
				c.Danger = falloff
			}
		}
	}
}
