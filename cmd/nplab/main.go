// Command nplab generates a toy NP-complete problem instance and compares
// the brute-force solver against its optimized counterpart on it.
//
// Usage:
//
//	nplab -problem sat    -size 12 -seed 42 -timeout 5s
//	nplab -problem subset -size 18 -seed 7  -csv out.csv
//	nplab -problem tsp    -size 9  -timeout 2s
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/samber/lo"

	"github.com/katalvlaran/nplab/bench"
	"github.com/katalvlaran/nplab/generate"
	"github.com/katalvlaran/nplab/sat"
	"github.com/katalvlaran/nplab/solver"
	"github.com/katalvlaran/nplab/subsetsum"
	"github.com/katalvlaran/nplab/tsp"
)

func main() {
	var (
		problem = flag.String("problem", "sat", "problem kind: sat | subset | tsp")
		size    = flag.Int("size", 10, "instance size (variables / numbers / cities)")
		seed    = flag.Int64("seed", 1, "generator seed")
		timeout = flag.Duration("timeout", 10*time.Second, "per-solver budget (0 = unlimited)")
		csvPath = flag.String("csv", "", "optional CSV output path")
	)
	flag.Parse()

	inst, cfgs, err := setup(*problem, *size, *seed, *timeout)
	if err != nil {
		log.Fatalf("nplab: %v", err)
	}

	runner := bench.NewRunner()
	results, err := runner.Compare(context.Background(), cfgs, inst)
	if err != nil {
		log.Fatalf("nplab: %v", err)
	}

	printTable(inst, results)

	if *csvPath != "" {
		f, err := os.Create(*csvPath)
		if err != nil {
			log.Fatalf("nplab: %v", err)
		}
		defer f.Close()
		if err = bench.WriteCSV(f, results); err != nil {
			log.Fatalf("nplab: %v", err)
		}
		fmt.Printf("\nwrote %s\n", *csvPath)
	}
}

// setup generates the instance and pairs it with the two solver configs
// appropriate for the requested problem kind.
func setup(problem string, size int, seed int64, timeout time.Duration) (solver.ProblemInstance, []bench.Config, error) {
	switch strings.ToLower(problem) {
	case "sat":
		inst, err := generate.ThreeSAT(size, 4*size, seed)
		if err != nil {
			return solver.ProblemInstance{}, nil, err
		}

		return inst, []bench.Config{
			{Solver: sat.BruteForce{}, Timeout: timeout},
			{Solver: sat.DPLL{}, Timeout: timeout},
		}, nil

	case "subset":
		inst, err := generate.SubsetSum(size, 0, seed)
		if err != nil {
			return solver.ProblemInstance{}, nil, err
		}

		return inst, []bench.Config{
			{Solver: subsetsum.BruteForce{}, Timeout: timeout},
			{Solver: subsetsum.DP{}, Timeout: timeout},
		}, nil

	case "tsp":
		inst, err := generate.EuclideanTSP(size, 100, seed)
		if err != nil {
			return solver.ProblemInstance{}, nil, err
		}

		return inst, []bench.Config{
			{Solver: tsp.BruteForce{}, Timeout: timeout},
			{Solver: tsp.NewNearestNeighbor(tsp.WithTwoOpt()), Timeout: timeout},
		}, nil

	default:
		return solver.ProblemInstance{}, nil, fmt.Errorf("unknown problem kind %q", problem)
	}
}

// printTable renders the comparison in aligned columns.
func printTable(inst solver.ProblemInstance, results []bench.BenchmarkResult) {
	fmt.Printf("%s instance, size %d\n\n", inst.Kind, inst.Size)

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "algorithm\tsolved\ttimed out\telapsed\twork")
	for _, rec := range results {
		fmt.Fprintf(tw, "%s\t%v\t%v\t%s\t%s\n",
			rec.Result.Algorithm,
			rec.Result.Solved,
			rec.Result.TimedOut,
			rec.Result.Elapsed.Round(time.Microsecond),
			formatCounters(rec.Result.Counters),
		)
	}
	_ = tw.Flush()
}

// formatCounters renders non-zero counters as "key=value" pairs in a
// stable order.
func formatCounters(counters map[string]int64) string {
	keys := lo.Keys(counters)
	sort.Strings(keys)

	pairs := lo.FilterMap(keys, func(key string, _ int) (string, bool) {
		if counters[key] == 0 {
			return "", false
		}

		return fmt.Sprintf("%s=%d", key, counters[key]), true
	})
	if len(pairs) == 0 {
		return "-"
	}

	return strings.Join(pairs, " ")
}
