// Package tsp - distance-matrix validation shared by both solvers.
package tsp

import "math"

// validateDist performs full matrix validation:
//   - square, n ≥ 2,
//   - diagonal ≈ 0 (|d_ii| ≤ symTol), finite,
//   - no negative entries,
//   - no NaN/±Inf anywhere (a complete matrix is required),
//   - if symmetric: |d_ij − d_ji| ≤ symTol.
//
// Returns n (matrix order) on success.
//
// Complexity: O(n²).
func validateDist(dist [][]float64, symmetric bool) (int, error) {
	n := len(dist)
	if n < 2 {
		return 0, ErrTooFewCities
	}

	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		if len(dist[i]) != n {
			return 0, ErrNonSquare
		}
		d = dist[i][i]
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return 0, ErrIncompleteMatrix
		}
		if math.Abs(d) > symTol {
			return 0, ErrNonZeroDiagonal
		}
	}

	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			d = dist[i][j]
			if math.IsNaN(d) || math.IsInf(d, 0) {
				return 0, ErrIncompleteMatrix
			}
			if d < 0 {
				return 0, ErrNegativeWeight
			}
		}
	}

	if symmetric {
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if math.Abs(dist[i][j]-dist[j][i]) > symTol {
					return 0, ErrAsymmetry
				}
			}
		}
	}

	return n, nil
}

// validateStart verifies start ∈ [0..n-1].
//
// Complexity: O(1).
func validateStart(n, start int) error {
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}

	return nil
}
