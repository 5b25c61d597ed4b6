package view

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Path-Sense/internal/tactical"
)

var (
	colorOpen     = color.RGBA{R: 34, G: 40, B: 34, A: 255}
	colorCover    = color.RGBA{R: 40, G: 90, B: 50, A: 255}
	colorObstacle = color.RGBA{R: 80, G: 80, B: 88, A: 255}
	colorHazard   = color.RGBA{R: 160, G: 40, B: 40, A: 255}
	colorGridLine = color.RGBA{R: 20, G: 24, B: 20, A: 255}
	colorRoute    = color.RGBA{R: 240, G: 220, B: 80, A: 255}
	colorStart    = color.RGBA{R: 80, G: 200, B: 255, A: 255}
	colorGoal     = color.RGBA{R: 120, G: 255, B: 120, A: 255}
)

var titleFace = text.NewGoXFace(basicfont.Face7x13)

// Draw blits the cached world buffer under the camera transform and lays the
// HUD and inspector on top in screen space.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 12, G: 14, B: 12, A: 255})

	if a.dirty {
		a.drawWorld()
		a.dirty = false
	}

	var cam ebiten.GeoM
	cam.Translate(-a.camX, -a.camY)
	cam.Scale(a.camZoom, a.camZoom)
	cam.Translate(windowWidth/2, windowHeight/2)
	screen.DrawImage(a.worldBuf, &ebiten.DrawImageOptions{GeoM: cam})

	a.drawHUD(screen)
	a.drawInspector(screen)
}

// cellRect is the world-buffer pixel origin of a grid cell. Row 0 sits at
// the bottom, matching the ASCII renderer's orientation.
func (a *App) cellRect(x, y int) (float32, float32) {
	return float32(x * cellPx), float32((a.grid.Height() - 1 - y) * cellPx)
}

// drawWorld repaints the world buffer: terrain, the enabled overlays, and
// the route. Called only when something changed.
func (a *App) drawWorld() {
	buf := a.worldBuf
	buf.Fill(colorGridLine)

	order := map[tactical.Point]int{}
	if a.showTrace {
		order = a.trace.VisitOrder()
	}
	visits := len(order)

	for y := 0; y < a.grid.Height(); y++ {
		for x := 0; x < a.grid.Width(); x++ {
			c := a.grid.At(x, y)
			px, py := a.cellRect(x, y)

			base := colorOpen
			switch c.Terrain {
			case tactical.TerrainCover:
				base = colorCover
			case tactical.TerrainObstacle:
				base = colorObstacle
			case tactical.TerrainHazard:
				base = colorHazard
			}
			vector.DrawFilledRect(buf, px+1, py+1, cellPx-2, cellPx-2, base, false)

			if a.showDanger && c.Danger > 0 && c.Terrain != tactical.TerrainObstacle {
				heat := color.RGBA{R: 255, G: 60, B: 0, A: uint8(160 * c.Danger)}
				vector.DrawFilledRect(buf, px+1, py+1, cellPx-2, cellPx-2, heat, false)
			}
			if a.showCover && c.Cover > 0 {
				tint := color.RGBA{R: 0, G: 255, B: 120, A: uint8(120 * c.Cover)}
				vector.DrawFilledRect(buf, px+1, py+1, cellPx-2, cellPx-2, tint, false)
			}
			if a.showTraits {
				a.drawTraitMarks(buf, x, y, px, py)
			}
			if a.showTrace && visits > 0 {
				if i, ok := order[tactical.Point{X: x, Y: y}]; ok {
					// Earlier pops draw brighter, so the expansion wave reads
					// at a glance.
					shade := uint8(200 - 150*i/visits)
					vector.StrokeRect(buf, px+4, py+4, cellPx-8, cellPx-8, 1,
						color.RGBA{R: shade, G: shade, B: 255, A: 200}, false)
				}
			}
		}
	}

	if a.route != nil {
		prev := a.start
		for _, p := range a.route.Points {
			x0, y0 := a.cellCentre(prev)
			x1, y1 := a.cellCentre(p)
			vector.StrokeLine(buf, x0, y0, x1, y1, 3, colorRoute, false)
			prev = p
		}
	}

	a.drawMarker(buf, a.start, colorStart)
	a.drawMarker(buf, a.goal, colorGoal)
}

func (a *App) cellCentre(p tactical.Point) (float32, float32) {
	px, py := a.cellRect(p.X, p.Y)
	return px + cellPx/2, py + cellPx/2
}

func (a *App) drawMarker(buf *ebiten.Image, p tactical.Point, col color.RGBA) {
	cx, cy := a.cellCentre(p)
	vector.DrawFilledCircle(buf, cx, cy, cellPx/4, col, false)
}

// drawTraitMarks puts small corner ticks on cells with derived traits.
func (a *App) drawTraitMarks(buf *ebiten.Image, x, y int, px, py float32) {
	tr := a.traits.At(x, y)
	if tr&tactical.CellTraitChoke != 0 {
		vector.StrokeRect(buf, px+2, py+2, cellPx-4, cellPx-4, 2,
			color.RGBA{R: 255, G: 160, B: 0, A: 220}, false)
	} else if tr&tactical.CellTraitCorner != 0 {
		vector.DrawFilledRect(buf, px+2, py+2, 6, 6,
			color.RGBA{R: 255, G: 255, B: 255, A: 200}, false)
	}
	if tr&tactical.CellTraitExposed != 0 {
		vector.DrawFilledRect(buf, px+cellPx-8, py+2, 6, 6,
			color.RGBA{R: 255, G: 60, B: 60, A: 220}, false)
	}
}

func (a *App) drawHUD(screen *ebiten.Image) {
	sc := a.scenarios[a.scenIdx]
	prof := a.profiles[a.profIdx]

	title := fmt.Sprintf("Path-Sense - %s", sc.Name)
	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 6)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, title, titleFace, op)

	lines := []string{
		fmt.Sprintf("profile: %s (danger=%.1f cover=%.1f)", prof.Name, prof.Weights.Danger, prof.Weights.Cover),
		"route: " + a.status,
		"",
		"[Tab] map  [P] profile  [R] reroll  [C] copy report",
		"[2] danger  [3] cover  [4] trace  [5] traits",
		"L-click goal  R-click start  WASD/arrows pan  wheel zoom",
	}
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, 8, 24+i*14)
	}
}

// drawInspector prints the hovered cell's full state in the bottom-left.
func (a *App) drawInspector(screen *ebiten.Image) {
	p, ok := a.hoveredCell()
	if !ok {
		return
	}
	c := a.grid.At(p.X, p.Y)
	tr := a.traits.At(p.X, p.Y)

	onRoute := ""
	if a.route != nil && a.route.PointSet()[p] {
		onRoute = "  on-route"
	}
	visit := ""
	if i, seen := a.trace.VisitOrder()[p]; seen {
		visit = fmt.Sprintf("  visited #%d", i)
	}

	lines := []string{
		fmt.Sprintf("cell (%d,%d): %s%s%s", p.X, p.Y, tactical.TerrainName(c.Terrain), onRoute, visit),
		fmt.Sprintf("danger=%.3f cover=%.2f traits=%s", c.Danger, c.Cover, traitNames(tr)),
	}
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, 8, windowHeight-34+i*14)
	}
}

func traitNames(tr tactical.CellTrait) string {
	if tr == tactical.CellTraitNone {
		return "none"
	}
	out := ""
	add := func(s string) {
		if out != "" {
			out += ","
		}
		out += s
	}
	if tr&tactical.CellTraitWallAdj != 0 {
		add("wall-adjacent")
	}
	if tr&tactical.CellTraitCorner != 0 {
		add("corner")
	}
	if tr&tactical.CellTraitChoke != 0 {
		add("choke")
	}
	if tr&tactical.CellTraitExposed != 0 {
		add("exposed")
	}
	return out
}
