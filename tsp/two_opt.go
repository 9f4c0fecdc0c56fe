// Package tsp - 2-opt local search.
//
// twoOptImprove performs deterministic first-improvement 2-opt on a closed
// tour: with a=T[i−1], b=T[i], c=T[k], d=T[k+1],
//
//	Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d)
//
// and a move (reversing segment [i..k]) is applied when Δ < −eps, after
// which the scan restarts. The search stops at a local optimum, at the
// iteration cap, or when the cooperative deadline fires - the tour stays
// valid in every case.
//
// Symmetric matrices only: reversing a segment preserves its internal cost
// only when w(u,v) == w(v,u). The caller enforces that via validateDist.
package tsp

import "github.com/katalvlaran/nplab/solver"

// twoOptImprove refines a closed tour in place-semantics style (the input
// slice is not mutated). Returns the refined tour, its cost, the number of
// accepted moves, and whether the deadline cut the search short.
//
// Complexity: O(n²) candidate checks per pass; O(n) per accepted move.
func twoOptImprove(dist [][]float64, initTour []int, eps float64, maxIters int, deadline *solver.Deadline) ([]int, float64, int64, bool) {
	n := len(initTour) - 1
	cur := make([]int, n+1)
	copy(cur, initTour)

	cost, err := TourCost(dist, cur)
	if err != nil {
		// Callers validate upfront; an invalid tour here is unreachable,
		// and returning the input unchanged keeps the contract total.
		return cur, cost, 0, false
	}

	var accepted int64
	for {
		improved := false

		var (
			a, b, c, d int
			delta      float64
			i, k       int
		)
		for i = 1; i <= n-2; i++ {
			for k = i + 1; k <= n-1; k++ {
				a = cur[i-1]
				b = cur[i]
				c = cur[k]
				d = cur[k+1]

				delta = (dist[a][c] + dist[b][d]) - (dist[a][b] + dist[c][d])
				if delta >= -eps {
					continue
				}

				// Apply by in-place reversal of segment [i..k].
				for l, r := i, k; l < r; l, r = l+1, r-1 {
					cur[l], cur[r] = cur[r], cur[l]
				}
				cost += delta
				accepted++
				improved = true

				if maxIters > 0 && accepted >= int64(maxIters) {
					return cur, round1e9(cost), accepted, false
				}
				if deadline.Exceeded() {
					return cur, round1e9(cost), accepted, true
				}

				// First-improvement policy: restart the scan.
				break
			}
			if improved {
				break
			}
		}

		if !improved {
			break
		}
	}

	return cur, round1e9(cost), accepted, false
}
