// Package tsp provides Travelling Salesman Problem solvers over a square
// distance matrix ([][]float64).
//
// 🚀 What's included:
//
//   - BruteForce — exhaustive search over all (n−1)! distinct tours.
//     The start city is fixed at 0 to avoid rotational duplicates; both
//     orientations of each undirected tour are still enumerated, matching
//     the reported tours_evaluated counter exactly.
//
//   - Complexity: O((n−1)! · n); practical only for n ≲ 12.
//
//   - NearestNeighbor — greedy heuristic extending the tour to the nearest
//     unvisited city, from one configurable start or from every start
//     (keeping the best), with optional 2-opt local-search refinement.
//
//   - Complexity: O(n²) per start; 2-opt adds O(iter·n²).
//
// Tours are closed cycles: len(tour) == n+1 with tour[0] == tour[n] equal
// to the start city. Costs sum matrix entries along consecutive pairs plus
// the return edge, stabilized to 1e−9 to prevent FP drift.
//
// The heuristic gives no optimality guarantee, but two properties always
// hold and are tested: its tour is a valid closed permutation of all
// cities, and its reported length is never shorter than the true optimum.
//
// All matrices must be square with a zero diagonal, finite entries and no
// negative distances; 2-opt additionally requires symmetry. Violations
// fail fast with strict sentinels from types.go.
package tsp
