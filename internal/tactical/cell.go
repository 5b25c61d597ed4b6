package tactical

// Terrain identifies the static classification of a cell.
type Terrain uint8

const (
	TerrainOpen     Terrain = iota // Default walkable ground
	TerrainCover                   // Walkable, grants a cover value
	TerrainObstacle                // Impassable
	TerrainHazard                  // Hazard source, walkable but dangerous
	terrainCount                   // sentinel
)

// TerrainName returns a short display name for a terrain type.
func TerrainName(t Terrain) string {
	switch t {
	case TerrainOpen:
		return "Open"
	case TerrainCover:
		return "Cover"
	case TerrainObstacle:
		return "Obstacle"
	case TerrainHazard:
		return "Hazard"
	default:
		return "Unknown"
	}
}

// Cell represents one grid location.
//
// Danger is derived state: it holds the strongest single hazard influence
// reaching this cell (hazards merge via max, never sum), so it is always in
// [0, 1] and never decreases once raised. Cover is set only by explicit cover
// placement. X and Y are fixed at grid construction and match the cell's
// position; they are never mutated afterwards.
type Cell struct {
	Terrain Terrain
	Danger  float64 // 0-1 : higher means riskier
	Cover   float64 // 0-1 : higher means safer
	X, Y    int
}

// Passable returns true if a route may enter this cell.
// Hazard sources are walkable; only obstacles block movement.
func (c *Cell) Passable() bool {
	return c.Terrain != TerrainObstacle
}
