package report

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// profilePalette cycles per-profile line colours.
var profilePalette = []color.RGBA{
	{R: 214, G: 69, B: 65, A: 255},
	{R: 65, G: 131, B: 215, A: 255},
	{R: 38, G: 166, B: 91, A: 255},
	{R: 244, G: 179, B: 80, A: 255},
	{R: 155, G: 89, B: 182, A: 255},
}

// SavePlots writes two PNGs into dir: route cost and route danger per
// profile, with scenarios along the x axis in sweep order. Unreachable
// pairs leave gaps (their points are skipped, not plotted as zero).
func SavePlots(dir string, results []SweepResult) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create plot dir: %w", err)
	}

	// Index scenarios and profiles in first-seen order.
	var scenarios, profiles []string
	scenarioIdx := map[string]int{}
	profileIdx := map[string]int{}
	for _, r := range results {
		if _, ok := scenarioIdx[r.Scenario]; !ok {
			scenarioIdx[r.Scenario] = len(scenarios)
			scenarios = append(scenarios, r.Scenario)
		}
		if _, ok := profileIdx[r.Profile]; !ok {
			profileIdx[r.Profile] = len(profiles)
			profiles = append(profiles, r.Profile)
		}
	}

	pCost := plot.New()
	pCost.Title.Text = "Route cost per profile"
	pCost.X.Label.Text = "Scenario"
	pCost.Y.Label.Text = "Weighted cost"

	pDanger := plot.New()
	pDanger.Title.Text = "Route danger per profile"
	pDanger.X.Label.Text = "Scenario"
	pDanger.Y.Label.Text = "Danger sum"

	for _, p := range []*plot.Plot{pCost, pDanger} {
		p.NominalX(scenarios...)
		p.Legend.Top = true
	}

	for pi, prof := range profiles {
		var costPts, dangerPts plotter.XYs
		for _, r := range results {
			if r.Profile != prof || !r.Reachable {
				continue
			}
			x := float64(scenarioIdx[r.Scenario])
			costPts = append(costPts, plotter.XY{X: x, Y: r.Cost})
			dangerPts = append(dangerPts, plotter.XY{X: x, Y: r.DangerSum})
		}
		col := profilePalette[pi%len(profilePalette)]

		costLine, err := plotter.NewLine(costPts)
		if err != nil {
			return fmt.Errorf("cost line for %s: %w", prof, err)
		}
		costLine.Width = vg.Points(1)
		costLine.Color = col
		pCost.Add(costLine)
		pCost.Legend.Add(prof, costLine)

		dangerLine, err := plotter.NewLine(dangerPts)
		if err != nil {
			return fmt.Errorf("danger line for %s: %w", prof, err)
		}
		dangerLine.Width = vg.Points(1)
		dangerLine.Color = col
		pDanger.Add(dangerLine)
		pDanger.Legend.Add(prof, dangerLine)
	}

	costFile := filepath.Join(dir, "sweep_cost.png")
	if err := pCost.Save(10*vg.Inch, 5*vg.Inch, costFile); err != nil {
		return fmt.Errorf("save cost plot: %w", err)
	}
	dangerFile := filepath.Join(dir, "sweep_danger.png")
	if err := pDanger.Save(10*vg.Inch, 5*vg.Inch, dangerFile); err != nil {
		return fmt.Errorf("save danger plot: %w", err)
	}
	return nil
}
