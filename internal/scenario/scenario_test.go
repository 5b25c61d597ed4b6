package scenario

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Garsondee/Path-Sense/internal/tactical"
)

func TestCrossfire_MatchesReferenceMap(t *testing.T) {
	s := Crossfire()
	g := s.Build()

	if g.Width() != 15 || g.Height() != 10 {
		t.Fatalf("expected 15x10, got %dx%d", g.Width(), g.Height())
	}
	for y := 2; y <= 7; y++ {
		c := g.At(2, y)
		if c.Terrain != tactical.TerrainObstacle {
			t.Fatalf("expected wall at (2,%d), got %v", y, c.Terrain)
		}
	}
	for _, p := range []tactical.Point{{X: 3, Y: 3}, {X: 3, Y: 4}, {X: 7, Y: 6}, {X: 7, Y: 7}, {X: 11, Y: 2}, {X: 11, Y: 3}} {
		c := g.At(p.X, p.Y)
		if c.Terrain != tactical.TerrainCover || c.Cover != tactical.DefaultCover {
			t.Fatalf("expected default cover at %v, got %+v", p, c)
		}
	}
	for _, p := range []tactical.Point{{X: 8, Y: 5}, {X: 12, Y: 7}, {X: 12, Y: 5}} {
		if g.At(p.X, p.Y).Terrain != tactical.TerrainHazard {
			t.Fatalf("expected hazard source at %v", p)
		}
	}
	// (12,1) is reached only by the hazard at (12,5,r=6), four cells away:
	// falloff 1 - 4/6.
	if got, want := g.At(12, 1).Danger, 1.0-4.0/6.0; !within(got, want, 1e-9) {
		t.Fatalf("danger at (12,1) = %v, want %v", got, want)
	}
}

func TestBuild_ReturnsFreshGrid(t *testing.T) {
	s := Crossfire()
	a := s.Build()
	a.AddObstacle(5, 5)
	b := s.Build()
	if b.At(5, 5).Terrain == tactical.TerrainObstacle {
		t.Fatal("edits to one build leaked into the next")
	}
}

func TestMinefield_DeterministicPerSeed(t *testing.T) {
	a := Minefield(42).Build()
	b := Minefield(42).Build()
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			ca, cb := a.At(x, y), b.At(x, y)
			if diff := cmp.Diff(*ca, *cb); diff != "" {
				t.Fatalf("same seed produced different cell at (%d,%d):\n%s", x, y, diff)
			}
		}
	}

	c := Minefield(43).Build()
	same := true
	for y := 0; y < a.Height() && same; y++ {
		for x := 0; x < a.Width(); x++ {
			if a.At(x, y).Terrain != c.At(x, y).Terrain {
				same = false
				break
			}
		}
	}
	if same {
		t.Fatal("different seeds produced identical terrain")
	}
}

func TestMinefield_EndpointsStayClear(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		s := Minefield(seed)
		g := s.Build()
		for _, p := range []tactical.Point{s.Start, s.Goal} {
			for dy := -2; dy <= 2; dy++ {
				for dx := -2; dx <= 2; dx++ {
					x, y := p.X+dx, p.Y+dy
					if !g.Inside(x, y) {
						continue
					}
					if g.At(x, y).Terrain != tactical.TerrainOpen {
						t.Fatalf("seed %d: cell (%d,%d) near endpoint %v is %v",
							seed, x, y, p, g.At(x, y).Terrain)
					}
				}
			}
		}
	}
}

func TestByName_FindsEveryPreset(t *testing.T) {
	for _, name := range Names() {
		s, ok := ByName(name, 1)
		if !ok {
			t.Fatalf("preset %q not found by name", name)
		}
		if s.Name != name {
			t.Fatalf("lookup for %q returned %q", name, s.Name)
		}
		g := s.Build()
		if !g.Inside(s.Start.X, s.Start.Y) || !g.Inside(s.Goal.X, s.Goal.Y) {
			t.Fatalf("preset %q has out-of-bounds endpoints", name)
		}
	}
	if _, ok := ByName("no-such-map", 1); ok {
		t.Fatal("unknown name resolved to a scenario")
	}
}

func TestPresets_AreSearchable(t *testing.T) {
	for _, s := range All(7) {
		g := s.Build()
		if _, err := tactical.FindRoute(g, s.Start, s.Goal); err != nil {
			t.Fatalf("preset %q rejected by the search: %v", s.Name, err)
		}
	}
}

func within(got, want, tol float64) bool {
	d := got - want
	return d < tol && d > -tol
}
