package tactical

import (
	"errors"
	"testing"
)

func TestNew_CellsStartOpen(t *testing.T) {
	g := New(4, 3)
	if g.Width() != 4 || g.Height() != 3 {
		t.Fatalf("expected 4x3 grid, got %dx%d", g.Width(), g.Height())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			c := g.At(x, y)
			if c == nil {
				t.Fatalf("no cell at (%d,%d)", x, y)
			}
			if c.Terrain != TerrainOpen || c.Danger != 0 || c.Cover != 0 {
				t.Fatalf("cell (%d,%d) not initialised open/zero: %+v", x, y, c)
			}
			if c.X != x || c.Y != y {
				t.Fatalf("cell at (%d,%d) carries coordinates (%d,%d)", x, y, c.X, c.Y)
			}
		}
	}
}

func TestNew_ClampsDimensions(t *testing.T) {
	g := New(0, -3)
	if g.Width() != 1 || g.Height() != 1 {
		t.Fatalf("expected 1x1 after clamping, got %dx%d", g.Width(), g.Height())
	}
}

func TestGrid_Inside(t *testing.T) {
	g := New(5, 4)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true}, {4, 3, true}, {2, 2, true},
		{-1, 0, false}, {0, -1, false}, {5, 0, false}, {0, 4, false},
	}
	for _, c := range cases {
		if got := g.Inside(c.x, c.y); got != c.want {
			t.Fatalf("Inside(%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestGrid_At_OutOfBoundsNil(t *testing.T) {
	g := New(3, 3)
	if g.At(-1, 0) != nil || g.At(0, 3) != nil {
		t.Fatal("At should return nil outside the grid")
	}
}

func TestGrid_Cell_OutOfBounds(t *testing.T) {
	g := New(3, 3)
	if _, err := g.Cell(1, 1); err != nil {
		t.Fatalf("in-bounds Cell returned error: %v", err)
	}
	_, err := g.Cell(3, 0)
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestGrid_AddCover(t *testing.T) {
	g := New(5, 5)
	g.AddCover(2, 3, DefaultCover)
	c := g.At(2, 3)
	if c.Terrain != TerrainCover {
		t.Fatalf("expected cover terrain, got %s", TerrainName(c.Terrain))
	}
	if c.Cover != 0.8 {
		t.Fatalf("expected cover value 0.8, got %v", c.Cover)
	}
}

func TestGrid_AddCover_ClampsValue(t *testing.T) {
	g := New(5, 5)
	g.AddCover(0, 0, 1.7)
	g.AddCover(1, 0, -0.2)
	if got := g.At(0, 0).Cover; got != 1.0 {
		t.Fatalf("cover above 1 should clamp to 1, got %v", got)
	}
	if got := g.At(1, 0).Cover; got != 0.0 {
		t.Fatalf("negative cover should clamp to 0, got %v", got)
	}
}

func TestGrid_AddObstacle(t *testing.T) {
	g := New(5, 5)
	g.AddObstacle(1, 1)
	c := g.At(1, 1)
	if c.Terrain != TerrainObstacle {
		t.Fatalf("expected obstacle terrain, got %s", TerrainName(c.Terrain))
	}
	if c.Passable() {
		t.Fatal("obstacle cell should not be passable")
	}
}

func TestGrid_EditsOutOfBoundsAreNoOps(t *testing.T) {
	g := New(3, 3)
	g.AddCover(-1, 0, 0.5)
	g.AddObstacle(3, 3)
	g.AddHazard(0, 9, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			c := g.At(x, y)
			if c.Terrain != TerrainOpen || c.Danger != 0 || c.Cover != 0 {
				t.Fatalf("out-of-bounds edit touched cell (%d,%d): %+v", x, y, c)
			}
		}
	}
}

func TestGrid_LastPlacementWins(t *testing.T) {
	g := New(4, 4)
	g.AddCover(1, 1, 0.8)
	g.AddObstacle(1, 1)
	if got := g.At(1, 1).Terrain; got != TerrainObstacle {
		t.Fatalf("expected obstacle after overwrite, got %s", TerrainName(got))
	}
	// Earlier cover value is retained but irrelevant once the cell blocks.
	if got := g.At(1, 1).Cover; got != 0.8 {
		t.Fatalf("overwrite should not reset cover value, got %v", got)
	}

	g.AddObstacle(2, 2)
	g.AddCover(2, 2, 0.5)
	if got := g.At(2, 2).Terrain; got != TerrainCover {
		t.Fatalf("expected cover after overwrite, got %s", TerrainName(got))
	}
}

func TestTerrainName_KnownAndUnknown(t *testing.T) {
	if TerrainName(TerrainHazard) != "Hazard" {
		t.Fatalf("unexpected name: %s", TerrainName(TerrainHazard))
	}
	if TerrainName(terrainCount) != "Unknown" {
		t.Fatal("sentinel value should map to Unknown")
	}
}
