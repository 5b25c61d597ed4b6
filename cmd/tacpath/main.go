// Command tacpath is the demo CLI: it builds a preset map, runs the tactical
// search, and prints the map before and after with the route overlaid. On the
// crossfire preset with default weights its output matches the original demo
// byte for byte.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Garsondee/Path-Sense/internal/render"
	"github.com/Garsondee/Path-Sense/internal/report"
	"github.com/Garsondee/Path-Sense/internal/scenario"
	"github.com/Garsondee/Path-Sense/internal/tactical"
)

func main() {
	var (
		scenarioName string
		dangerWeight float64
		coverWeight  float64
		seed         int64
		showTrace    bool
		chartFile    string
		quiet        bool
	)
	flag.StringVar(&scenarioName, "scenario", "crossfire",
		"preset map to run ("+strings.Join(scenario.Names(), ", ")+")")
	flag.Float64Var(&dangerWeight, "danger-weight", tactical.DefaultWeights().Danger, "danger cost weight")
	flag.Float64Var(&coverWeight, "cover-weight", tactical.DefaultWeights().Cover, "cover cost discount")
	flag.Int64Var(&seed, "seed", 42, "seed for the minefield preset")
	flag.BoolVar(&showTrace, "trace", false, "print frontier statistics after the search")
	flag.StringVar(&chartFile, "chart", "", "write an HTML danger chart to this file")
	flag.BoolVar(&quiet, "quiet", false, "suppress the map printouts, keep the stats")
	flag.Parse()

	sc, ok := scenario.ByName(scenarioName, seed)
	if !ok {
		log.Fatalf("unknown scenario %q (supported: %s)", scenarioName, strings.Join(scenario.Names(), ", "))
	}
	g := sc.Build()

	if !quiet {
		fmt.Println("=== MAP BEFORE SEARCH ===")
		fmt.Print(render.Map(g, nil, sc.Start, sc.Goal))
	}

	var trace *tactical.Trace
	opts := []tactical.SearchOption{
		tactical.WithWeights(tactical.Weights{Danger: dangerWeight, Cover: coverWeight}),
	}
	if showTrace {
		trace = tactical.NewTrace()
		opts = append(opts, tactical.WithTrace(trace))
	}

	route, err := tactical.FindRoute(g, sc.Start, sc.Goal, opts...)
	if err != nil {
		log.Fatalf("search failed: %v", err)
	}
	if route == nil {
		fmt.Println("\nNo path found.")
		return
	}

	if !quiet {
		fmt.Println("\n=== MAP WITH PATH ===")
		fmt.Print(render.Map(g, route, sc.Start, sc.Goal))
	}
	fmt.Print(render.Stats(route))

	if showTrace {
		fmt.Printf("\nExpanded    : %d\nRelaxations : %d\n",
			route.Expanded, trace.Count(tactical.TraceRelax))
	}

	if chartFile != "" {
		f, err := os.Create(chartFile)
		if err != nil {
			log.Fatalf("create chart file: %v", err)
		}
		if err := report.WriteChart(f, g, route, sc.Name+" danger"); err != nil {
			f.Close()
			log.Fatalf("write chart: %v", err)
		}
		if err := f.Close(); err != nil {
			log.Fatalf("close chart file: %v", err)
		}
	}
}
