// Command run_benchmarks runs every assigner over a directory of
// instance files and writes per-run metrics as CSV.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/edaniels/golog"

	"github.com/elektrokombinacija/armfleet/internal/algo"
	"github.com/elektrokombinacija/armfleet/internal/core"
	"github.com/elektrokombinacija/armfleet/internal/sim"
)

// Result is one planner run on one instance.
type Result struct {
	Instance      string
	Assigner      string
	Robots        int
	Operations    int
	Success       bool
	RuntimeMS     float64
	MakespanMS    int64
	MinSeparation float64
	DwellErrors   int
}

func main() {
	var (
		dir = flag.String("instances", "instances", "instance directory")
		out = flag.String("out", "benchmarks.csv", "CSV output path")
	)
	flag.Parse()

	logger := golog.NewDevelopmentLogger("run_benchmarks")

	paths, err := filepath.Glob(filepath.Join(*dir, "*.txt"))
	if err != nil || len(paths) == 0 {
		logger.Fatalf("no instances under %s", *dir)
	}
	sort.Strings(paths)

	assigners := map[string]func() algo.Assigner{
		"greedy": func() algo.Assigner { return algo.NewGreedy() },
		"exact":  func() algo.Assigner { return algo.NewBranchBound() },
	}
	names := make([]string, 0, len(assigners))
	for name := range assigners {
		names = append(names, name)
	}
	sort.Strings(names)

	var results []Result
	for _, path := range paths {
		inst, err := loadInstance(path)
		if err != nil {
			logger.Errorw("skipping instance", "path", path, "error", err)
			continue
		}
		for _, name := range names {
			results = append(results, runOne(path, name, assigners[name](), inst, logger))
		}
	}

	if err := writeCSV(*out, results); err != nil {
		logger.Fatal(err)
	}
	printSummary(results)
}

func loadInstance(path string) (*core.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return core.ParseInstance(f)
}

func runOne(path, name string, assigner algo.Assigner, inst *core.Instance, logger golog.Logger) Result {
	res := Result{
		Instance:   filepath.Base(path),
		Assigner:   name,
		Robots:     len(inst.Robots),
		Operations: len(inst.Operations),
	}

	planner, err := algo.NewPlanner(inst, algo.DefaultConfig(), assigner, logger)
	if err != nil {
		return res
	}
	defer planner.Close()

	start := time.Now()
	sol, err := planner.Plan()
	res.RuntimeMS = float64(time.Since(start).Microseconds()) / 1000
	if err != nil {
		logger.Debugw("plan failed", "instance", res.Instance, "assigner", name, "error", err)
		return res
	}

	audit := sim.Replay(inst, sol, sim.DefaultConfig())
	res.Success = true
	res.MakespanMS = sol.Makespan
	res.MinSeparation = audit.MinSeparation.Distance

	for opIdx, dwell := range audit.PickDwellMS {
		if diff := dwell - inst.Operations[opIdx].ProcessTime; diff < -1 || diff > 1 {
			res.DwellErrors++
		}
	}
	for opIdx, dwell := range audit.PlaceDwellMS {
		if diff := dwell - inst.Operations[opIdx].ProcessTime; diff < -1 || diff > 1 {
			res.DwellErrors++
		}
	}
	return res
}

func writeCSV(path string, results []Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"instance", "assigner", "robots", "operations", "success",
		"runtime_ms", "makespan_ms", "min_separation_m", "dwell_errors"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			r.Instance,
			r.Assigner,
			strconv.Itoa(r.Robots),
			strconv.Itoa(r.Operations),
			strconv.FormatBool(r.Success),
			strconv.FormatFloat(r.RuntimeMS, 'f', 3, 64),
			strconv.FormatInt(r.MakespanMS, 10),
			strconv.FormatFloat(r.MinSeparation, 'f', 4, 64),
			strconv.Itoa(r.DwellErrors),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func printSummary(results []Result) {
	type agg struct {
		runs, successes int
		runtime         float64
		makespan        int64
	}
	byAssigner := make(map[string]*agg)
	for _, r := range results {
		a := byAssigner[r.Assigner]
		if a == nil {
			a = &agg{}
			byAssigner[r.Assigner] = a
		}
		a.runs++
		a.runtime += r.RuntimeMS
		if r.Success {
			a.successes++
			a.makespan += r.MakespanMS
		}
	}

	names := make([]string, 0, len(byAssigner))
	for name := range byAssigner {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		a := byAssigner[name]
		avgMakespan := int64(0)
		if a.successes > 0 {
			avgMakespan = a.makespan / int64(a.successes)
		}
		fmt.Printf("%-8s %d/%d solved, avg runtime %.1f ms, avg makespan %d ms\n",
			name, a.successes, a.runs, a.runtime/float64(a.runs), avgMakespan)
	}
}
