package tactical

import "testing"

func TestAnalyze_WallTraits(t *testing.T) {
	g := New(5, 5)
	// Vertical wall at x=2 with a single gap at y=2.
	g.AddObstacle(2, 0)
	g.AddObstacle(2, 1)
	g.AddObstacle(2, 3)
	g.AddObstacle(2, 4)

	tm := Analyze(g)

	if tm.At(1, 1)&CellTraitWallAdj == 0 {
		t.Fatal("(1,1) borders the wall, expected wall-adjacent")
	}
	if tm.At(0, 0)&CellTraitWallAdj != 0 {
		t.Fatal("(0,0) touches no obstacle, got wall-adjacent")
	}
	// The gap has obstacles above and below and open cells east and west.
	if tm.At(2, 2)&CellTraitChoke == 0 {
		t.Fatal("wall gap (2,2) not flagged as a choke")
	}
	if tm.At(1, 2)&CellTraitChoke != 0 {
		t.Fatal("(1,2) flagged as a choke with only one obstacle side")
	}
}

func TestAnalyze_CornerTrait(t *testing.T) {
	g := New(4, 4)
	g.AddObstacle(2, 1) // east of (1,1)
	g.AddObstacle(1, 2) // north of (1,1)

	tm := Analyze(g)
	if tm.At(1, 1)&CellTraitCorner == 0 {
		t.Fatal("(1,1) sits in an obstacle corner, trait missing")
	}
	if tm.At(0, 0)&CellTraitCorner != 0 {
		t.Fatal("(0,0) flagged as a corner with no obstacles nearby")
	}
}

func TestAnalyze_ExposureBlockedByObstacles(t *testing.T) {
	g := New(7, 3)
	g.AddHazard(6, 1, 1)
	g.AddObstacle(3, 1)

	tm := Analyze(g)
	if tm.At(4, 1)&CellTraitExposed == 0 {
		t.Fatal("(4,1) has clear sight to the hazard, expected exposed")
	}
	// (2,1) looks straight down the row but the wall at (3,1) blocks it.
	if tm.At(2, 1)&CellTraitExposed != 0 {
		t.Fatal("(2,1) flagged exposed through an obstacle")
	}
	if tm.At(0, 0)&CellTraitExposed == 0 {
		t.Fatal("(0,0) has a clear diagonal to the hazard, expected exposed")
	}
}

func TestAnalyze_ObstaclesCarryNoTraits(t *testing.T) {
	g := New(3, 3)
	g.AddObstacle(1, 1)
	g.AddHazard(2, 2, 2)

	tm := Analyze(g)
	if tm.At(1, 1) != CellTraitNone {
		t.Fatalf("obstacle cell carries traits %v", tm.At(1, 1))
	}
}

func TestTraitMap_AtOutOfBounds(t *testing.T) {
	tm := Analyze(New(2, 2))
	if tm.At(-1, 0) != CellTraitNone || tm.At(0, 5) != CellTraitNone {
		t.Fatal("out-of-bounds trait lookup should be none")
	}
}

func TestRouteExposure_CountsExposedSteps(t *testing.T) {
	g := New(6, 3)
	g.AddHazard(5, 1, 1)
	g.AddObstacle(2, 1)

	tm := Analyze(g)
	r := &Route{Points: []Point{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 4, Y: 1}}}
	// (1,1) is shielded by the obstacle; the other two see the hazard.
	if got := tm.RouteExposure(r); got != 2 {
		t.Fatalf("route exposure %d, want 2", got)
	}
	if tm.RouteExposure(nil) != 0 {
		t.Fatal("nil route should have zero exposure")
	}
}
