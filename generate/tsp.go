// Package generate - TSP instance generators.
package generate

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/nplab/solver"
	"github.com/katalvlaran/nplab/tsp"
)

// RandomTSP generates a symmetric distance matrix with a zero diagonal and
// distances uniform in (0, maxDistance]. No structure is guaranteed beyond
// symmetry - the triangle inequality may be violated.
//
// Contracts: n ≥ 2, maxDistance > 0.
//
// Complexity: O(n²).
func RandomTSP(n int, maxDistance float64, seed int64) (solver.ProblemInstance, error) {
	if n < 2 {
		return solver.ProblemInstance{}, ErrBadCityCount
	}
	if maxDistance <= 0 || math.IsNaN(maxDistance) || math.IsInf(maxDistance, 0) {
		return solver.ProblemInstance{}, ErrBadDistanceBound
	}

	rng := rand.New(rand.NewSource(seed))
	dist := squareMatrix(n)

	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			// (0, maxDistance]: never zero, so distinct cities never alias.
			d = (1 - rng.Float64()) * maxDistance
			dist[i][j] = d
			dist[j][i] = d
		}
	}

	return wrapTSP(n, maxDistance, seed, dist, nil), nil
}

// EuclideanTSP generates cities as uniform points in a side×side square
// with pairwise Euclidean distances; the triangle inequality holds by
// construction. Point coordinates are stored under MetaPoints.
//
// Contracts: n ≥ 2, side > 0.
//
// Complexity: O(n²).
func EuclideanTSP(n int, side float64, seed int64) (solver.ProblemInstance, error) {
	if n < 2 {
		return solver.ProblemInstance{}, ErrBadCityCount
	}
	if side <= 0 || math.IsNaN(side) || math.IsInf(side, 0) {
		return solver.ProblemInstance{}, ErrBadDistanceBound
	}

	rng := rand.New(rand.NewSource(seed))

	points := make([][2]float64, n)
	for i := range points {
		points[i] = [2]float64{rng.Float64() * side, rng.Float64() * side}
	}

	dist := squareMatrix(n)

	var (
		i, j   int
		dx, dy float64
		d      float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dx = points[i][0] - points[j][0]
			dy = points[i][1] - points[j][1]
			d = math.Hypot(dx, dy)
			dist[i][j] = d
			dist[j][i] = d
		}
	}

	return wrapTSP(n, side*math.Sqrt2, seed, dist, points), nil
}

// squareMatrix allocates an n×n zero matrix.
func squareMatrix(n int) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}

	return m
}

// wrapTSP assembles the ProblemInstance shared by both TSP generators.
func wrapTSP(n int, maxDistance float64, seed int64, dist [][]float64, points [][2]float64) solver.ProblemInstance {
	meta := map[string]any{}
	if points != nil {
		meta[MetaPoints] = points
	}

	return solver.ProblemInstance{
		Kind: solver.TSP,
		Size: n,
		Parameters: map[string]any{
			"cities":       n,
			"max_distance": maxDistance,
			"seed":         seed,
		},
		Payload:  tsp.Instance{Dist: dist},
		Metadata: meta,
	}
}
