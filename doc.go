// Package nplab is a hands-on laboratory for NP-complete problems: build
// instances, solve them with naive and optimized algorithms side by side,
// and measure how fast the exponential wall arrives.
//
// 🚀 What is nplab?
//
//	A small, deterministic teaching library that brings together:
//		• 3-SAT: exhaustive truth tables vs. DPLL with unit propagation
//		• Subset Sum: pruned exhaustive search vs. pseudo-polynomial DP
//		• TSP: factorial enumeration vs. nearest-neighbor + 2-opt
//		• Seeded generators that plant verifiable witnesses
//		• A watchdog benchmark runner with CSV export
//
// ✨ Why nplab?
//
//   - One contract - every algorithm variant implements solver.Solver, so
//     benchmarks and demos treat all six polymorphically
//   - Honest accounting - work counters report operations actually
//     performed, never estimates
//   - Timeouts that teach - a timed-out search is reported as abandoned,
//     explicitly distinct from a proven absence of solutions
//
// Everything is organized under focused subpackages:
//
//	solver/    — shared contract: instances, results, options, deadlines
//	sat/       — CNF model, expression grammar, both SAT engines
//	subsetsum/ — instance model and both Subset Sum engines
//	tsp/       — distance-matrix model and both TSP engines
//	generate/  — seeded instance generators with planted ground truth
//	bench/     — watchdog runner, comparisons, CSV export
//	cmd/nplab  — the demo CLI
//
// Quick start:
//
//	inst, _ := generate.ThreeSAT(12, 48, 42)
//	res, _ := sat.DPLL{}.Solve(inst, solver.Options{TimeLimit: time.Second})
//
//	go get github.com/katalvlaran/nplab
package nplab
