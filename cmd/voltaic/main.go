// Command voltaic analyzes a YAML circuit netlist and prints the DC
// operating point, optionally followed by the full derivation trace. It is
// a thin consumer of the engine: all numerics live in the library packages.
//
// Usage:
//
//	voltaic --file divider.yaml
//	voltaic --file ladder.yaml --trace
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/voltlab/voltaic/analyze"
	"github.com/voltlab/voltaic/netlist"
	"github.com/voltlab/voltaic/solve"
)

func main() {
	var (
		file      = pflag.StringP("file", "f", "", "YAML netlist to analyze")
		showTrace = pflag.BoolP("trace", "t", false, "print the derivation trace")
		tolerance = pflag.Float64("tolerance", solve.DefaultTolerance, "solver pivot tolerance")
	)
	pflag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *file == "" {
		pflag.Usage()
		os.Exit(2)
	}

	ckt, err := netlist.Load(*file)
	if err != nil {
		logger.Error("loading netlist", "file", *file, "err", err)
		os.Exit(1)
	}

	opts := analyze.DefaultOptions()
	opts.Solve.Tolerance = *tolerance

	res, err := analyze.Analyze(ckt, opts)
	if err != nil {
		if errors.Is(err, solve.ErrSingular) && res != nil {
			// Show the partial derivation so the degenerate stage is visible.
			for _, s := range res.Steps {
				fmt.Println(s)
			}
			logger.Error("circuit has no unique solution", "circuit", ckt.Name)
		} else {
			logger.Error("analysis failed", "circuit", ckt.Name, "err", err)
		}
		os.Exit(1)
	}

	fmt.Printf("%s — node potentials:\n", ckt.Name)
	fmt.Printf("  V(%s) = 0.000000 V (ground)\n", ckt.Ground)
	for _, n := range ckt.Nodes {
		if n.ID == ckt.Ground {
			continue
		}
		fmt.Printf("  V(%s) = %.6f V\n", n.ID, res.NodeVoltages[n.ID])
	}

	fmt.Println("component results:")
	for _, cr := range res.Components {
		fmt.Printf("  %-8s %-15s V=%12.6f  I=%12.6f  P=%12.6f\n",
			cr.ComponentID, cr.Kind, cr.Voltage, cr.Current, cr.Power)
	}

	if *showTrace {
		fmt.Println("\nderivation trace:")
		for _, s := range res.Steps {
			fmt.Println(s)
		}
	}
}
