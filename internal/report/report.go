// Package report turns routes and sweep runs into numbers a human can act
// on: per-route metrics and grades, concurrent weight-profile sweeps with
// aggregate statistics, a SQLite results store, and chart/plot output.
package report

import (
	"github.com/Garsondee/Path-Sense/internal/tactical"
)

// RouteReport summarises one found route for display.
type RouteReport struct {
	Length     int
	Cost       float64
	DangerSum  float64
	PeakDanger float64 // highest single-cell danger crossed
	MeanDanger float64 // DangerSum / Length
	CoverCells int     // route cells carrying cover
	Grade      string
}

// ForRoute computes the report for a route over the grid it was found on.
// Grading looks at plain per-cell danger, never the weighted cost, so the
// same route grades the same under any search tuning.
func ForRoute(g *tactical.Grid, r *tactical.Route) RouteReport {
	rep := RouteReport{Length: r.Len(), Cost: r.Cost, DangerSum: r.Danger}
	for _, p := range r.Points {
		c := g.At(p.X, p.Y)
		if c == nil {
			continue
		}
		if c.Danger > rep.PeakDanger {
			rep.PeakDanger = c.Danger
		}
		if c.Cover > 0 {
			rep.CoverCells++
		}
	}
	if rep.Length > 0 {
		rep.MeanDanger = rep.DangerSum / float64(rep.Length)
	}
	rep.Grade = LetterGrade(rep.MeanDanger)
	return rep
}

// LetterGrade maps mean danger per step to a letter grade. A route that
// averages under 2% exposure per step is as safe as routes get; anything
// above 25% spends most of its time deep in a hazard field.
func LetterGrade(meanDanger float64) string {
	switch {
	case meanDanger < 0.02:
		return "A"
	case meanDanger < 0.06:
		return "B"
	case meanDanger < 0.12:
		return "C"
	case meanDanger < 0.25:
		return "D"
	default:
		return "F"
	}
}

// Profile is a named weight tuning for the search.
type Profile struct {
	Name    string
	Weights tactical.Weights
}

// Profiles returns the built-in tunings. "balanced" is the search default;
// "reckless" barely cares about danger, "cautious" pays dearly to avoid it,
// and "exposed" ignores cover entirely.
func Profiles() []Profile {
	return []Profile{
		{Name: "reckless", Weights: tactical.Weights{Danger: 1.0, Cover: 0.4}},
		{Name: "balanced", Weights: tactical.DefaultWeights()},
		{Name: "cautious", Weights: tactical.Weights{Danger: 10.0, Cover: 0.4}},
		{Name: "exposed", Weights: tactical.Weights{Danger: 5.0, Cover: 0.0}},
	}
}

// ProfileByName looks up a built-in profile.
func ProfileByName(name string) (Profile, bool) {
	for _, p := range Profiles() {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}
