package scenario

import (
	"math/rand"
	"sort"

	"github.com/Garsondee/Path-Sense/internal/tactical"
)

// Crossfire is the reference demo map: a 15x10 field split by a wall at x=2,
// a cover pocket behind the wall, two more cover pairs further east, and
// three overlapping hazards saturating the right half.
func Crossfire() Scenario {
	return New("crossfire", 15, 10,
		tactical.Point{X: 1, Y: 1}, tactical.Point{X: 10, Y: 8},
		WithCoverAt(3, 3), WithCoverAt(3, 4),
		WithCoverAt(7, 6), WithCoverAt(7, 7),
		WithCoverAt(11, 2), WithCoverAt(11, 3),
		WithVWall(2, 2, 7),
		WithHazardAt(8, 5, 3),
		WithHazardAt(12, 7, 3),
		WithHazardAt(12, 5, 6),
	)
}

// OpenField is an empty 12x8 grid, corner to corner. Routes on it are pure
// Manhattan shortest paths.
func OpenField() Scenario {
	return New("open-field", 12, 8,
		tactical.Point{X: 0, Y: 0}, tactical.Point{X: 11, Y: 7})
}

// Corridors is a 16x12 map with two full-width walls pierced by offset
// doorways, cover flanking each doorway, and one hazard between the walls.
// The route has to thread both doorways.
func Corridors() Scenario {
	return New("corridors", 16, 12,
		tactical.Point{X: 1, Y: 1}, tactical.Point{X: 14, Y: 10},
		WithHWall(4, 0, 11), WithObstacleAt(13, 4), WithObstacleAt(14, 4), WithObstacleAt(15, 4),
		WithHWall(8, 4, 15), WithObstacleAt(0, 8), WithObstacleAt(1, 8), WithObstacleAt(2, 8),
		WithCoverAt(12, 3), WithCoverAt(12, 5),
		WithCoverAt(3, 7), WithCoverAt(3, 9),
		WithHazardAt(8, 6, 3),
	)
}

// Minefield is a seeded random 20x14 map: scattered obstacles, cover, and
// small hazards. Cells within two steps of the start or goal are always left
// untouched, so both endpoints stay valid with open ground around them (a
// fully blocked route is still possible and reported as unreachable). The
// same seed always yields the same map.
func Minefield(seed int64) Scenario {
	start := tactical.Point{X: 1, Y: 1}
	goal := tactical.Point{X: 18, Y: 12}
	return New("minefield", 20, 14, start, goal,
		withEdit(func(g *tactical.Grid) {
			rng := rand.New(rand.NewSource(seed))
			clear := func(x, y int) bool {
				return (abs(x-start.X) <= 2 && abs(y-start.Y) <= 2) ||
					(abs(x-goal.X) <= 2 && abs(y-goal.Y) <= 2)
			}
			for i := 0; i < 30; i++ {
				x, y := rng.Intn(g.Width()), rng.Intn(g.Height())
				if clear(x, y) {
					continue
				}
				g.AddObstacle(x, y)
			}
			for i := 0; i < 12; i++ {
				x, y := rng.Intn(g.Width()), rng.Intn(g.Height())
				if clear(x, y) {
					continue
				}
				g.AddCover(x, y, tactical.DefaultCover)
			}
			for i := 0; i < 4; i++ {
				x, y := rng.Intn(g.Width()), rng.Intn(g.Height())
				if clear(x, y) {
					continue
				}
				g.AddHazard(x, y, 2+rng.Intn(2))
			}
		}),
	)
}

// All returns every preset, minefield built from the given seed.
func All(seed int64) []Scenario {
	return []Scenario{Crossfire(), OpenField(), Corridors(), Minefield(seed)}
}

// ByName looks up a preset by its flag name. The seed only matters for
// minefield.
func ByName(name string, seed int64) (Scenario, bool) {
	for _, s := range All(seed) {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}

// Names returns the preset names in sorted order, for flag usage strings.
func Names() []string {
	all := All(0)
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.Name
	}
	sort.Strings(names)
	return names
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
