// Package tsp - tour cost utilities shared by both solvers.
//
// Small, allocation-conscious, side-effect free helpers. Costs are
// stabilized to 1e−9 absolute precision so repeated runs and different
// platforms report identical optima.
package tsp

import "math"

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// TourCost sums matrix entries along consecutive tour pairs, the closing
// edge included (the tour is closed, so the last pair is tour[n-1]→tour[n]
// with tour[n]==tour[0]).
//
// Contract: tour indices must be in range; callers validate the matrix
// upfront, but index bounds are still guarded here.
//
// Complexity: O(n) time, O(1) space.
func TourCost(dist [][]float64, tour []int) (float64, error) {
	n := len(dist)
	if len(tour) < 2 {
		return 0, ErrInvalidTour
	}

	var (
		sum  float64
		i    int
		u, v int
	)
	for i = 0; i < len(tour)-1; i++ {
		u = tour[i]
		v = tour[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrInvalidTour
		}
		sum += dist[u][v]
	}

	return round1e9(sum), nil
}
