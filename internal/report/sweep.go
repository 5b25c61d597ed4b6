package report

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/Garsondee/Path-Sense/internal/scenario"
	"github.com/Garsondee/Path-Sense/internal/tactical"
)

// SweepResult is the outcome of searching one scenario under one profile.
type SweepResult struct {
	Scenario  string
	Profile   string
	Reachable bool
	Length    int
	Cost      float64
	DangerSum float64
	Expanded  int
	Grade     string
}

// Sweep searches every scenario x profile pair and returns the results in
// scenario-major order. Each scenario's grid is built once and shared across
// its profile searches; the search keeps all state per call, so the shared
// grid needs no locking. workers bounds the number of concurrent searches
// (values below 1 mean unbounded).
func Sweep(ctx context.Context, scenarios []scenario.Scenario, profiles []Profile, workers int) ([]SweepResult, error) {
	results := make([]SweepResult, len(scenarios)*len(profiles))

	eg, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}
	for si, sc := range scenarios {
		g := sc.Build()
		for pi, prof := range profiles {
			idx := si*len(profiles) + pi
			eg.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				r, err := tactical.FindRoute(g, sc.Start, sc.Goal, tactical.WithWeights(prof.Weights))
				if err != nil {
					return fmt.Errorf("sweep %s/%s: %w", sc.Name, prof.Name, err)
				}
				res := SweepResult{Scenario: sc.Name, Profile: prof.Name}
				if r != nil {
					res.Reachable = true
					res.Length = r.Len()
					res.Cost = r.Cost
					res.DangerSum = r.Danger
					res.Expanded = r.Expanded
					res.Grade = ForRoute(g, r).Grade
				}
				results[idx] = res
				return nil
			})
		}
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Aggregate summarises one profile's results across every scenario it
// reached.
type Aggregate struct {
	Profile      string
	Routes       int // reachable scenario count
	Unreachable  int
	MeanLength   float64
	StdevLength  float64
	MeanCost     float64
	MinCost      float64
	MaxCost      float64
	MeanDanger   float64
	StdevDanger  float64
	MeanExpanded float64
}

// Aggregates groups sweep results by profile, preserving first-seen profile
// order. Unreachable results count but contribute nothing to the statistics.
func Aggregates(results []SweepResult) []Aggregate {
	type acc struct {
		lengths, costs, dangers, expanded []float64
		unreachable                       int
	}
	order := []string{}
	byProfile := map[string]*acc{}
	for _, r := range results {
		a, ok := byProfile[r.Profile]
		if !ok {
			a = &acc{}
			byProfile[r.Profile] = a
			order = append(order, r.Profile)
		}
		if !r.Reachable {
			a.unreachable++
			continue
		}
		a.lengths = append(a.lengths, float64(r.Length))
		a.costs = append(a.costs, r.Cost)
		a.dangers = append(a.dangers, r.DangerSum)
		a.expanded = append(a.expanded, float64(r.Expanded))
	}

	out := make([]Aggregate, 0, len(order))
	for _, name := range order {
		a := byProfile[name]
		agg := Aggregate{Profile: name, Routes: len(a.costs), Unreachable: a.unreachable}
		if len(a.costs) > 0 {
			agg.MeanLength, agg.StdevLength = meanStdev(a.lengths)
			agg.MeanCost, _ = meanStdev(a.costs)
			agg.MinCost, agg.MaxCost = minMax(a.costs)
			agg.MeanDanger, agg.StdevDanger = meanStdev(a.dangers)
			agg.MeanExpanded, _ = meanStdev(a.expanded)
		}
		out = append(out, agg)
	}
	return out
}

// meanStdev wraps gonum's unweighted moments; a single sample has zero
// deviation rather than NaN.
func meanStdev(xs []float64) (mean, stdev float64) {
	mean = stat.Mean(xs, nil)
	if len(xs) > 1 {
		stdev = stat.StdDev(xs, nil)
	}
	return mean, stdev
}

func minMax(xs []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, x := range xs {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	return lo, hi
}
