package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/Garsondee/Path-Sense/internal/tactical"
)

// viridisColors is the usual viridis ramp for danger intensity.
var viridisColors = []string{
	"#440154", "#482777", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
}

// WriteChart renders an interactive HTML scatter of the grid's danger field
// with the route overlaid as a second series. Obstacles are omitted (they
// carry no traversable danger); every other cell plots at its coordinates
// with danger as the colour dimension.
func WriteChart(w io.Writer, g *tactical.Grid, route *tactical.Route, title string) error {
	cells := make([]opts.ScatterData, 0, g.Width()*g.Height())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := g.At(x, y)
			if c.Terrain == tactical.TerrainObstacle {
				continue
			}
			cells = append(cells, opts.ScatterData{Value: []interface{}{x, y, c.Danger}})
		}
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Theme: "dark", Width: "900px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("%dx%d grid", g.Width(), g.Height())}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: -1, Max: g.Width(), Name: "x"}),
		charts.WithYAxisOpts(opts.YAxis{Min: -1, Max: g.Height(), Name: "y"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        1,
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: viridisColors},
		}),
	)
	scatter.AddSeries("danger", cells, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 14}))

	if route != nil {
		steps := make([]opts.ScatterData, 0, route.Len())
		for _, p := range route.Points {
			// Colour route points at full scale so they read on top of the field.
			steps = append(steps, opts.ScatterData{Value: []interface{}{p.X, p.Y, 1.0}})
		}
		scatter.AddSeries("route", steps, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 7}))
	}

	if err := scatter.Render(w); err != nil {
		return fmt.Errorf("render danger chart: %w", err)
	}
	return nil
}
