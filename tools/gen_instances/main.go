// Command gen_instances writes deterministic random fleet instances in
// the planner's text format, for benchmarking and regression suites.
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
)

// Params defines one generated family of instances.
type Params struct {
	Seed       int64
	Robots     int
	Operations int
	// Pitch is the base spacing along the x axis in metres.
	Pitch float64
	// WorkRadius bounds pick/place offsets from the owning base.
	WorkRadius float64
	// ProcessMinMS and ProcessMaxMS bound the dwell times.
	ProcessMinMS int64
	ProcessMaxMS int64
}

func main() {
	var (
		outDir = flag.String("out", "instances", "output directory")
		count  = flag.Int("count", 5, "instances to generate")
		seed   = flag.Int64("seed", 42, "base random seed")
		robots = flag.Int("robots", 3, "robots per instance")
		ops    = flag.Int("ops", 8, "operations per instance")
		pitch  = flag.Float64("pitch", 1.4, "base spacing (m)")
		radius = flag.Float64("radius", 0.55, "work radius around bases (m)")
	)
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for i := 0; i < *count; i++ {
		p := Params{
			Seed:         *seed + int64(i),
			Robots:       *robots,
			Operations:   *ops,
			Pitch:        *pitch,
			WorkRadius:   *radius,
			ProcessMinMS: 100,
			ProcessMaxMS: 800,
		}
		name := fmt.Sprintf("armfleet_K%d_N%d_%d.txt", p.Robots, p.Operations, p.Seed)
		path := filepath.Join(*outDir, name)
		if err := os.WriteFile(path, []byte(generate(p)), 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(path)
	}
}

// generate renders one instance. Pick and place points are sampled in
// a band around a base so every operation has at least one eligible
// robot.
func generate(p Params) string {
	rng := rand.New(rand.NewSource(p.Seed))

	var b strings.Builder
	fmt.Fprintf(&b, "%d %d\n", p.Robots, p.Operations)

	bases := make([][3]float64, p.Robots)
	for r := 0; r < p.Robots; r++ {
		bases[r] = [3]float64{float64(r) * p.Pitch, 0, 0}
		fmt.Fprintf(&b, "%.3f %.3f %.3f\n", bases[r][0], bases[r][1], bases[r][2])
	}

	// Wide limits on the base and wrist joints, tighter elsewhere.
	jointLines := []string{
		"-170 170 90 45",
		"-120 120 90 45",
		"-120 120 90 45",
		"-120 120 90 45",
		"-170 170 90 45",
		"-170 170 90 45",
	}
	b.WriteString(strings.Join(jointLines, "\n"))
	b.WriteString("\n0.1 0.2\n")

	for i := 0; i < p.Operations; i++ {
		base := bases[rng.Intn(p.Robots)]
		px, py, pz := samplePoint(rng, base, p.WorkRadius)
		qx, qy, qz := samplePoint(rng, base, p.WorkRadius)
		process := p.ProcessMinMS + rng.Int63n(p.ProcessMaxMS-p.ProcessMinMS+1)
		fmt.Fprintf(&b, "%.3f %.3f %.3f %.3f %.3f %.3f %d\n", px, py, pz, qx, qy, qz, process)
	}
	return b.String()
}

// samplePoint draws a reachable point near a base: radial distance in
// [0.25, radius] of the base, elevation in [0.15, 0.45] m.
func samplePoint(rng *rand.Rand, base [3]float64, radius float64) (x, y, z float64) {
	angle := rng.Float64() * 2 * math.Pi
	dist := 0.25 + rng.Float64()*(radius-0.25)
	x = base[0] + dist*math.Cos(angle)
	y = base[1] + dist*math.Sin(angle)
	z = 0.15 + rng.Float64()*0.3
	return
}
