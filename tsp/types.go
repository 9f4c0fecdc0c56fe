// Package tsp - payload model and strict sentinel errors.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors.
//   - O(n²) worst-case validation; no hidden allocations in hot paths.
package tsp

import (
	"errors"

	"github.com/katalvlaran/nplab/solver"
)

var (
	// ErrNonSquare is returned when the distance matrix is not square.
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrNonZeroDiagonal is returned when some dist[i][i] deviates from 0.
	ErrNonZeroDiagonal = errors.New("tsp: diagonal not zero within tolerance")

	// ErrNegativeWeight is returned for a negative distance entry.
	ErrNegativeWeight = errors.New("tsp: negative distance")

	// ErrIncompleteMatrix is returned when an entry is NaN or ±Inf; the
	// solvers require a complete distance matrix.
	ErrIncompleteMatrix = errors.New("tsp: non-finite distance entry")

	// ErrAsymmetry is returned when an operation requiring symmetry (2-opt
	// segment reversal) receives an asymmetric matrix.
	ErrAsymmetry = errors.New("tsp: matrix is not symmetric within tolerance")

	// ErrTooFewCities is returned for matrices smaller than 2×2.
	ErrTooFewCities = errors.New("tsp: at least 2 cities required")

	// ErrTooManyCities is returned when a brute-force run exceeds
	// MaxBruteForceCities.
	ErrTooManyCities = errors.New("tsp: too many cities for brute force")

	// ErrStartOutOfRange is returned when the start city is not in [0..n-1].
	ErrStartOutOfRange = errors.New("tsp: start city out of range")

	// ErrInvalidTour is returned when a tour is not a closed permutation of
	// all cities anchored at the expected start.
	ErrInvalidTour = errors.New("tsp: invalid tour")
)

// MaxBruteForceCities bounds the factorial enumeration: 11! ≈ 4·10⁷ tours
// still finishes in a teaching budget, 13! does not.
const MaxBruteForceCities = 12

// symTol is the structural tolerance for diagonal/symmetry checks,
// independent from the 2-opt improvement epsilon.
const symTol = 1e-12

// Instance is the TSP payload: an n×n distance matrix over city indices.
// Symmetric for the basic generator; solvers state their own symmetry
// requirements.
type Instance struct {
	Dist [][]float64
}

// Kind implements solver.Payload.
func (Instance) Kind() solver.Kind { return solver.TSP }

// Cities returns n, the matrix order.
func (inst Instance) Cities() int { return len(inst.Dist) }

// Wrap packages an Instance into a solver.ProblemInstance for callers that
// do not go through package generate.
func Wrap(inst Instance) solver.ProblemInstance {
	return solver.ProblemInstance{
		Kind:    solver.TSP,
		Size:    inst.Cities(),
		Payload: inst,
	}
}

// unwrap performs the boundary tag check shared by both solvers.
func unwrap(pi solver.ProblemInstance) (Instance, error) {
	if pi.Payload == nil {
		return Instance{}, solver.ErrNilPayload
	}
	inst, ok := pi.Payload.(Instance)
	if !ok {
		return Instance{}, solver.ErrPayloadMismatch
	}

	return inst, nil
}

// ValidateTour verifies that tour is a closed Hamiltonian cycle over n
// cities anchored at start: length n+1, tour[0]==tour[n]==start, every
// city visited exactly once.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n, start int) error {
	if n < 2 || len(tour) != n+1 {
		return ErrInvalidTour
	}
	if tour[0] != start || tour[n] != start {
		return ErrInvalidTour
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return ErrInvalidTour
		}
		if seen[v] {
			return ErrInvalidTour
		}
		seen[v] = true
	}

	return nil
}
