// Package view is the interactive ebiten debugger for the route finder:
// preset maps, live re-search on edit, and overlays for every derived layer
// the engine computes.
package view

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Path-Sense/internal/report"
	"github.com/Garsondee/Path-Sense/internal/scenario"
	"github.com/Garsondee/Path-Sense/internal/tactical"
)

const (
	cellPx       = 48 // world pixels per grid cell
	windowWidth  = 1280
	windowHeight = 800
	panSpeed     = 8.0
)

// App is the debugger's ebiten.Game. One scenario is loaded at a time; any
// change to endpoints, profile, or map triggers a fresh search with a trace.
type App struct {
	scenarios []scenario.Scenario
	scenIdx   int
	profiles  []report.Profile
	profIdx   int
	seed      int64

	grid   *tactical.Grid
	start  tactical.Point
	goal   tactical.Point
	route  *tactical.Route
	trace  *tactical.Trace
	traits *tactical.TraitMap
	status string

	showDanger bool
	showCover  bool
	showTrace  bool
	showTraits bool

	camX, camY float64 // world-space camera centre
	camZoom    float64

	worldBuf *ebiten.Image
	dirty    bool // worldBuf needs a redraw

	prevKeys  map[ebiten.Key]bool
	prevLeft  bool
	prevRight bool
}

// New creates the debugger over the preset scenarios, starting on the first.
func New(seed int64) *App {
	a := &App{
		scenarios: scenario.All(seed),
		profiles:  report.Profiles(),
		seed:      seed,
		camZoom:   1.0,
		prevKeys:  make(map[ebiten.Key]bool),
	}
	// Start on the default tuning.
	for i, p := range a.profiles {
		if p.Name == "balanced" {
			a.profIdx = i
		}
	}
	a.loadScenario(0)
	return a
}

// loadScenario rebuilds the grid and buffers for scenario i and re-searches.
func (a *App) loadScenario(i int) {
	a.scenIdx = i
	sc := a.scenarios[i]
	a.grid = sc.Build()
	a.start = sc.Start
	a.goal = sc.Goal
	a.worldBuf = ebiten.NewImage(a.grid.Width()*cellPx, a.grid.Height()*cellPx)
	a.camX = float64(a.grid.Width()*cellPx) / 2
	a.camY = float64(a.grid.Height()*cellPx) / 2
	a.camZoom = 1.0
	a.research()
}

// research runs the search for the current endpoints and profile and
// refreshes every derived layer.
func (a *App) research() {
	a.traits = tactical.Analyze(a.grid)
	a.trace = tactical.NewTrace()
	route, err := tactical.FindRoute(a.grid, a.start, a.goal,
		tactical.WithWeights(a.profiles[a.profIdx].Weights),
		tactical.WithTrace(a.trace))
	switch {
	case err != nil:
		a.route = nil
		a.status = err.Error()
	case route == nil:
		a.route = nil
		a.status = "unreachable"
	default:
		a.route = route
		a.status = fmt.Sprintf("%d moves  cost %.2f  danger %.2f  expanded %d",
			route.Len(), route.Cost, route.Danger, route.Expanded)
	}
	a.dirty = true
}

// Update handles input. Edge-triggered keys go through prevKeys so holding a
// key fires once.
func (a *App) Update() error {
	pressed := func(k ebiten.Key) bool {
		now := ebiten.IsKeyPressed(k)
		fired := now && !a.prevKeys[k]
		a.prevKeys[k] = now
		return fired
	}

	if pressed(ebiten.KeyTab) {
		a.loadScenario((a.scenIdx + 1) % len(a.scenarios))
	}
	if pressed(ebiten.KeyP) {
		a.profIdx = (a.profIdx + 1) % len(a.profiles)
		a.research()
	}
	if pressed(ebiten.KeyR) {
		// Reroll the random preset; fixed presets just rebuild.
		a.seed++
		a.scenarios = scenario.All(a.seed)
		a.loadScenario(a.scenIdx)
	}
	if pressed(ebiten.Key2) {
		a.showDanger = !a.showDanger
		a.dirty = true
	}
	if pressed(ebiten.Key3) {
		a.showCover = !a.showCover
		a.dirty = true
	}
	if pressed(ebiten.Key4) {
		a.showTrace = !a.showTrace
		a.dirty = true
	}
	if pressed(ebiten.Key5) {
		a.showTraits = !a.showTraits
		a.dirty = true
	}
	if pressed(ebiten.KeyC) {
		if err := clipboard.WriteAll(a.reportText()); err != nil {
			a.status = "clipboard copy failed: " + err.Error()
		} else {
			a.status = "report copied to clipboard"
		}
	}

	// Camera pan and zoom.
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		a.camX -= panSpeed / a.camZoom
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		a.camX += panSpeed / a.camZoom
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		a.camY -= panSpeed / a.camZoom
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		a.camY += panSpeed / a.camZoom
	}
	_, wy := ebiten.Wheel()
	if wy != 0 {
		a.camZoom *= 1 + wy*0.1
		if a.camZoom < 0.25 {
			a.camZoom = 0.25
		}
		if a.camZoom > 4 {
			a.camZoom = 4
		}
	}

	// Left click moves the goal, right click the start.
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if left && !a.prevLeft {
		a.placeEndpoint(&a.goal, "goal")
	}
	if right && !a.prevRight {
		a.placeEndpoint(&a.start, "start")
	}
	a.prevLeft, a.prevRight = left, right

	return nil
}

// placeEndpoint moves one endpoint to the hovered cell, rejecting obstacles.
func (a *App) placeEndpoint(dst *tactical.Point, label string) {
	p, ok := a.hoveredCell()
	if !ok {
		return
	}
	if !a.grid.At(p.X, p.Y).Passable() {
		a.status = label + " cannot sit on an obstacle"
		return
	}
	*dst = p
	a.research()
}

// hoveredCell maps the cursor to grid coordinates under the camera
// transform.
func (a *App) hoveredCell() (tactical.Point, bool) {
	mx, my := ebiten.CursorPosition()
	wx := (float64(mx)-windowWidth/2)/a.camZoom + a.camX
	wy := (float64(my)-windowHeight/2)/a.camZoom + a.camY
	x := int(wx) / cellPx
	// Row 0 renders at the bottom of the world buffer.
	y := a.grid.Height() - 1 - int(wy)/cellPx
	if wx < 0 || wy < 0 || !a.grid.Inside(x, y) {
		return tactical.Point{}, false
	}
	return tactical.Point{X: x, Y: y}, true
}

// reportText is the plain-text route report placed on the clipboard.
func (a *App) reportText() string {
	sc := a.scenarios[a.scenIdx]
	prof := a.profiles[a.profIdx]
	if a.route == nil {
		return fmt.Sprintf("--- Path-Sense report ---\nscenario=%s profile=%s\n%s\n",
			sc.Name, prof.Name, a.status)
	}
	rep := report.ForRoute(a.grid, a.route)
	exposure := a.traits.RouteExposure(a.route)
	return fmt.Sprintf("--- Path-Sense report ---\n"+
		"scenario=%s profile=%s (danger=%.1f cover=%.1f)\n"+
		"start=(%d,%d) goal=(%d,%d)\n"+
		"moves=%d cost=%.3f danger_sum=%.3f peak_danger=%.3f\n"+
		"cover_cells=%d exposed_cells=%d expanded=%d grade=%s\n",
		sc.Name, prof.Name, prof.Weights.Danger, prof.Weights.Cover,
		a.start.X, a.start.Y, a.goal.X, a.goal.Y,
		rep.Length, rep.Cost, rep.DangerSum, rep.PeakDanger,
		rep.CoverCells, exposure, a.route.Expanded, rep.Grade)
}

// Layout reports the fixed window size.
func (a *App) Layout(_, _ int) (int, int) {
	return windowWidth, windowHeight
}
