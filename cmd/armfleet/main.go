// Command armfleet plans collision-free schedules for a fleet of
// six-axis arms over a set of pick-and-place operations.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/edaniels/golog"

	"github.com/elektrokombinacija/armfleet/internal/algo"
	"github.com/elektrokombinacija/armfleet/internal/core"
)

func main() {
	var (
		inPath   = flag.String("in", "", "instance file (default stdin)")
		outPath  = flag.String("out", "", "result file (default stdout)")
		assigner = flag.String("assigner", "greedy", "assignment strategy: greedy or exact")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	logger := golog.NewDevelopmentLogger("armfleet")
	if *verbose {
		logger = golog.NewDebugLogger("armfleet")
	}

	if err := run(*inPath, *outPath, *assigner, logger); err != nil {
		logger.Fatal(err)
	}
}

func run(inPath, outPath, assignerName string, logger golog.Logger) error {
	var in io.Reader = os.Stdin
	if inPath != "" {
		f, err := os.Open(inPath)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	inst, err := core.ParseInstance(in)
	if err != nil {
		return err
	}
	logger.Debugf("loaded %d robots, %d operations", len(inst.Robots), len(inst.Operations))

	var assigner algo.Assigner
	switch assignerName {
	case "greedy":
		assigner = algo.NewGreedy()
	case "exact":
		assigner = algo.NewBranchBound()
	default:
		return fmt.Errorf("unknown assigner %q", assignerName)
	}

	planner, err := algo.NewPlanner(inst, algo.DefaultConfig(), assigner, logger)
	if err != nil {
		return err
	}
	defer planner.Close()

	sol, err := planner.Plan()
	if err != nil {
		return err
	}
	logger.Debugf("makespan %d ms", sol.Makespan)

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	_, err = io.WriteString(out, sol.Render())
	return err
}
