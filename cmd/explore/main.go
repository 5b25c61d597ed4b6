// Command explore is a full-screen terminal map editor over the route
// finder. Place and erase terrain under a cursor and watch the optimal
// route re-plan live.
//
// Keys: hjkl or arrows move, o obstacle, c cover, b+digit hazard (radius
// 1-9), x erase, s/g move start/goal here, w cycle weight profile,
// r reroll the map, q quit.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Path-Sense/internal/report"
	"github.com/Garsondee/Path-Sense/internal/scenario"
	"github.com/Garsondee/Path-Sense/internal/tactical"
)

// edit is one placement the user made on top of the scenario. Placements
// never un-set terrain, so erase works by rebuilding the grid with the
// erased edits dropped.
type edit struct {
	kind   rune // 'o', 'c', 'b'
	x, y   int
	radius int
}

type explorer struct {
	screen tcell.Screen

	scen     scenario.Scenario
	seed     int64
	edits    []edit
	grid     *tactical.Grid
	start    tactical.Point
	goal     tactical.Point
	route    *tactical.Route
	status   string
	profiles []report.Profile
	profIdx  int

	curX, curY  int
	hazardArmed bool // next digit key sets the hazard radius at the cursor
}

func newExplorer(seed int64) (*explorer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	e := &explorer{
		screen:   screen,
		seed:     seed,
		profiles: report.Profiles(),
	}
	for i, p := range e.profiles {
		if p.Name == "balanced" {
			e.profIdx = i
		}
	}
	e.loadScenario(scenario.Minefield(seed))
	return e, nil
}

func (e *explorer) loadScenario(sc scenario.Scenario) {
	e.scen = sc
	e.edits = nil
	e.start = sc.Start
	e.goal = sc.Goal
	e.curX, e.curY = sc.Start.X, sc.Start.Y
	e.rebuild()
}

// rebuild reconstructs the grid from the scenario plus the surviving edits
// and re-searches.
func (e *explorer) rebuild() {
	e.grid = e.scen.Build()
	for _, ed := range e.edits {
		switch ed.kind {
		case 'o':
			e.grid.AddObstacle(ed.x, ed.y)
		case 'c':
			e.grid.AddCover(ed.x, ed.y, tactical.DefaultCover)
		case 'b':
			e.grid.AddHazard(ed.x, ed.y, ed.radius)
		}
	}
	e.research()
}

func (e *explorer) research() {
	prof := e.profiles[e.profIdx]
	route, err := tactical.FindRoute(e.grid, e.start, e.goal, tactical.WithWeights(prof.Weights))
	switch {
	case err != nil:
		e.route = nil
		e.status = err.Error()
	case route == nil:
		e.route = nil
		e.status = "unreachable"
	default:
		e.route = route
		e.status = fmt.Sprintf("%d moves  cost %.2f  danger %.2f", route.Len(), route.Cost, route.Danger)
	}
}

func (e *explorer) moveCursor(dx, dy int) {
	nx, ny := e.curX+dx, e.curY+dy
	if e.grid.Inside(nx, ny) {
		e.curX, e.curY = nx, ny
	}
}

// eraseAt drops every edit at the cursor and rebuilds. Scenario-placed
// terrain is untouched; only the user's own edits erase.
func (e *explorer) eraseAt(x, y int) {
	kept := e.edits[:0]
	for _, ed := range e.edits {
		if ed.x != x || ed.y != y {
			kept = append(kept, ed)
		}
	}
	e.edits = kept
	e.rebuild()
}

func (e *explorer) handleKey(ev *tcell.EventKey) bool {
	if e.hazardArmed {
		e.hazardArmed = false
		if ev.Key() == tcell.KeyRune && ev.Rune() >= '1' && ev.Rune() <= '9' {
			e.edits = append(e.edits, edit{kind: 'b', x: e.curX, y: e.curY, radius: int(ev.Rune() - '0')})
			e.rebuild()
		}
		return true
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		e.moveCursor(-1, 0)
	case tcell.KeyRight:
		e.moveCursor(1, 0)
	case tcell.KeyUp:
		e.moveCursor(0, 1)
	case tcell.KeyDown:
		e.moveCursor(0, -1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'h':
			e.moveCursor(-1, 0)
		case 'l':
			e.moveCursor(1, 0)
		case 'k':
			e.moveCursor(0, 1)
		case 'j':
			e.moveCursor(0, -1)
		case 'o':
			e.edits = append(e.edits, edit{kind: 'o', x: e.curX, y: e.curY})
			e.rebuild()
		case 'c':
			e.edits = append(e.edits, edit{kind: 'c', x: e.curX, y: e.curY})
			e.rebuild()
		case 'b':
			e.hazardArmed = true
		case 'x':
			e.eraseAt(e.curX, e.curY)
		case 's':
			if e.grid.At(e.curX, e.curY).Passable() {
				e.start = tactical.Point{X: e.curX, Y: e.curY}
				e.research()
			}
		case 'g':
			if e.grid.At(e.curX, e.curY).Passable() {
				e.goal = tactical.Point{X: e.curX, Y: e.curY}
				e.research()
			}
		case 'w':
			e.profIdx = (e.profIdx + 1) % len(e.profiles)
			e.research()
		case 'r':
			e.seed++
			e.loadScenario(scenario.Minefield(e.seed))
		}
	}
	return true
}

var (
	styleDefault  = tcell.StyleDefault
	styleObstacle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleCover    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleHazard   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleDangerHi = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleDangerLo = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleRoute    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleEndpoint = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleCursor   = tcell.StyleDefault.Reverse(true)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// cellRune is the single-character form of the ASCII renderer's glyphs.
func cellRune(c *tactical.Cell) (rune, tcell.Style) {
	switch c.Terrain {
	case tactical.TerrainObstacle:
		return 'X', styleObstacle
	case tactical.TerrainCover:
		return '#', styleCover
	case tactical.TerrainHazard:
		return 'B', styleHazard
	}
	switch {
	case c.Danger > 0.7:
		return '!', styleDangerHi
	case c.Danger > 0.3:
		return 'o', styleDangerLo
	default:
		return '.', styleDefault
	}
}

func (e *explorer) draw() {
	e.screen.Clear()

	var onRoute map[tactical.Point]bool
	if e.route != nil {
		onRoute = e.route.PointSet()
	}

	// Grid rows render top-down with y flipped, one column per cell.
	for y := 0; y < e.grid.Height(); y++ {
		sy := e.grid.Height() - 1 - y
		for x := 0; x < e.grid.Width(); x++ {
			p := tactical.Point{X: x, Y: y}
			r, style := cellRune(e.grid.At(x, y))
			switch {
			case p == e.start:
				r, style = 'S', styleEndpoint
			case p == e.goal:
				r, style = 'G', styleEndpoint
			case onRoute[p]:
				r, style = '*', styleRoute
			}
			if x == e.curX && y == e.curY {
				style = styleCursor
			}
			e.screen.SetContent(x*2, sy, r, nil, style)
		}
	}

	prof := e.profiles[e.profIdx]
	statusY := e.grid.Height() + 1
	lines := []string{
		fmt.Sprintf("(%d,%d)  profile=%s  route: %s", e.curX, e.curY, prof.Name, e.status),
	}
	if e.hazardArmed {
		lines = append(lines, "hazard radius? [1-9]")
	} else {
		lines = append(lines, "hjkl move  o/c/b place  x erase  s/g endpoints  w profile  r reroll  q quit")
	}
	for i, l := range lines {
		for j, r := range l {
			e.screen.SetContent(j, statusY+i, r, nil, styleStatus)
		}
	}

	e.screen.Show()
}

func (e *explorer) run() {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			events <- e.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !e.handleKey(ev) {
					return
				}
			case *tcell.EventResize:
				e.screen.Sync()
			}
		case <-ticker.C:
			e.draw()
		}
	}
}

func main() {
	var seed int64
	flag.Int64Var(&seed, "seed", 42, "seed for the starting minefield map")
	flag.Parse()

	e, err := newExplorer(seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise terminal: %v\n", err)
		os.Exit(1)
	}
	defer e.screen.Fini()

	e.run()
}
