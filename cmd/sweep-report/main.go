// Command sweep-report runs the search across every requested scenario and
// weight profile, prints per-pair results and aggregates, and optionally
// persists the run, saves PNG plots, and writes an HTML danger chart for the
// first scenario.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Garsondee/Path-Sense/internal/report"
	"github.com/Garsondee/Path-Sense/internal/scenario"
	"github.com/Garsondee/Path-Sense/internal/tactical"
)

func main() {
	var (
		scenariosCSV string
		profilesCSV  string
		workers      int
		dbFile       string
		plotsDir     string
		chartFile    string
		seed         int64
		label        string
	)
	flag.StringVar(&scenariosCSV, "scenarios", "", "comma-separated preset names (default: all)")
	flag.StringVar(&profilesCSV, "profiles", "", "comma-separated profile names (default: all)")
	flag.IntVar(&workers, "workers", 4, "max concurrent searches")
	flag.StringVar(&dbFile, "db", "", "persist the run into this SQLite file")
	flag.StringVar(&plotsDir, "plots", "", "write PNG sweep plots into this directory")
	flag.StringVar(&chartFile, "chart", "", "write an HTML danger chart for the first scenario")
	flag.Int64Var(&seed, "seed", 42, "seed for the minefield preset")
	flag.StringVar(&label, "label", "sweep", "label stored with the run")
	flag.Parse()

	scenarios, err := resolveScenarios(scenariosCSV, seed)
	if err != nil {
		log.Fatal(err)
	}
	profiles, err := resolveProfiles(profilesCSV)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("=== Route Sweep Report ===\n")
	fmt.Printf("scenarios=%d profiles=%d workers=%d seed=%d\n\n", len(scenarios), len(profiles), workers, seed)

	results, err := report.Sweep(context.Background(), scenarios, profiles, workers)
	if err != nil {
		log.Fatalf("sweep failed: %v", err)
	}

	printResults(scenarios, profiles, results)
	printAggregates(report.Aggregates(results))

	if dbFile != "" {
		store, err := report.OpenStore(dbFile)
		if err != nil {
			log.Fatalf("open store: %v", err)
		}
		runID, err := store.SaveRun(label, len(scenarios), len(profiles), results)
		if cerr := store.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			log.Fatalf("save run: %v", err)
		}
		fmt.Printf("\nsaved run %s to %s\n", runID, dbFile)
	}

	if plotsDir != "" {
		if err := report.SavePlots(plotsDir, results); err != nil {
			log.Fatalf("save plots: %v", err)
		}
		fmt.Printf("plots written to %s\n", plotsDir)
	}

	if chartFile != "" {
		if err := writeFirstScenarioChart(chartFile, scenarios[0]); err != nil {
			log.Fatalf("write chart: %v", err)
		}
		fmt.Printf("chart written to %s\n", chartFile)
	}
}

func resolveScenarios(csv string, seed int64) ([]scenario.Scenario, error) {
	if csv == "" {
		return scenario.All(seed), nil
	}
	var out []scenario.Scenario
	for _, name := range strings.Split(csv, ",") {
		name = strings.TrimSpace(name)
		sc, ok := scenario.ByName(name, seed)
		if !ok {
			return nil, fmt.Errorf("unknown scenario %q (supported: %s)", name, strings.Join(scenario.Names(), ", "))
		}
		out = append(out, sc)
	}
	return out, nil
}

func resolveProfiles(csv string) ([]report.Profile, error) {
	if csv == "" {
		return report.Profiles(), nil
	}
	var out []report.Profile
	for _, name := range strings.Split(csv, ",") {
		name = strings.TrimSpace(name)
		p, ok := report.ProfileByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown profile %q", name)
		}
		out = append(out, p)
	}
	return out, nil
}

func printResults(scenarios []scenario.Scenario, profiles []report.Profile, results []report.SweepResult) {
	for si := range scenarios {
		fmt.Printf("--- %s ---\n", scenarios[si].Name)
		for pi := range profiles {
			r := results[si*len(profiles)+pi]
			if !r.Reachable {
				fmt.Printf("  %-9s unreachable\n", r.Profile)
				continue
			}
			fmt.Printf("  %-9s moves=%-3d cost=%-8.2f danger=%-6.2f expanded=%-4d grade=%s\n",
				r.Profile, r.Length, r.Cost, r.DangerSum, r.Expanded, r.Grade)
		}
		fmt.Println()
	}
}

func printAggregates(aggs []report.Aggregate) {
	fmt.Println("=== Aggregates (per profile) ===")
	for _, a := range aggs {
		fmt.Printf("%-9s routes=%d unreachable=%d\n", a.Profile, a.Routes, a.Unreachable)
		if a.Routes == 0 {
			continue
		}
		fmt.Printf("  length: mean=%.1f stdev=%.1f\n", a.MeanLength, a.StdevLength)
		fmt.Printf("  cost:   mean=%.2f min=%.2f max=%.2f\n", a.MeanCost, a.MinCost, a.MaxCost)
		fmt.Printf("  danger: mean=%.2f stdev=%.2f  expanded: mean=%.0f\n", a.MeanDanger, a.StdevDanger, a.MeanExpanded)
	}
}

func writeFirstScenarioChart(path string, sc scenario.Scenario) error {
	g := sc.Build()
	route, err := tactical.FindRoute(g, sc.Start, sc.Goal)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.WriteChart(f, g, route, sc.Name+" danger"); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
