// Package tsp - exhaustive permutation search.
//
// The start city is fixed at 0, so the enumeration covers every distinct
// rotation class exactly once: (n−1)! tours. For undirected instances each
// cycle is still visited in both orientations; the /2 halving is
// deliberately not applied so the tours_evaluated counter matches the
// enumeration exactly.
package tsp

import (
	"math"
	"time"

	"github.com/katalvlaran/nplab/solver"
)

// BruteForce is the exhaustive TSP solver.
type BruteForce struct{}

// AlgorithmName implements solver.Solver.
func (BruteForce) AlgorithmName() string { return "Brute Force TSP" }

// ComplexityClass implements solver.Solver.
func (BruteForce) ComplexityClass() string { return "Factorial: O((n-1)!)" }

// TSResult is the typed witness both TSP solvers attach to Result.Witness:
// downstream consumers key off the tour and its distance together.
type TSResult struct {
	// Tour is the closed sequence of city indices: len n+1,
	// Tour[0]==Tour[n]==0.
	Tour []int

	// Cost is the total cycle distance, stabilized to 1e−9.
	Cost float64
}

// Solve implements solver.Solver.
//
// Contracts:
//   - inst.Payload must be a tsp.Instance; ErrPayloadMismatch otherwise.
//   - 2 ≤ n ≤ MaxBruteForceCities.
//
// Returns the optimal tour as Result.Witness (TSResult) and the work
// counter "tours_evaluated". The deadline is checked once per tour
// (throttled); on expiry the result reports TimedOut with the best-so-far
// discarded, since a partial optimum would be indistinguishable from a
// proven one.
//
// Complexity: O((n−1)! · n) time, O(n) space.
func (s BruteForce) Solve(pi solver.ProblemInstance, opts solver.Options) (solver.Result, error) {
	if err := opts.Validate(); err != nil {
		return solver.Result{}, err
	}
	inst, err := unwrap(pi)
	if err != nil {
		return solver.Result{}, err
	}
	n, err := validateDist(inst.Dist, false)
	if err != nil {
		return solver.Result{}, err
	}
	if n > MaxBruteForceCities {
		return solver.Result{}, ErrTooManyCities
	}

	var (
		start    = time.Now()
		deadline = solver.NewDeadline(opts.TimeLimit)
		tours    int64
	)

	res := func(solved bool, witness any, timedOut bool) solver.Result {
		return solver.Result{
			Algorithm: s.AlgorithmName(),
			Solved:    solved,
			Witness:   witness,
			Counters:  map[string]int64{solver.CounterToursEvaluated: tours},
			Elapsed:   time.Since(start),
			TimedOut:  timedOut,
		}
	}

	// perm holds cities 1..n-1 in lexicographic order; the full tour is
	// 0, perm..., 0.
	perm := make([]int, n-1)
	for i := range perm {
		perm[i] = i + 1
	}

	var (
		tour     = make([]int, n+1)
		best     []int
		bestCost = math.Inf(1)
		cost     float64
	)
	for {
		tours++
		tour[0] = 0
		copy(tour[1:], perm)
		tour[n] = 0

		cost, err = TourCost(inst.Dist, tour)
		if err != nil {
			return solver.Result{}, err
		}
		if cost < bestCost {
			bestCost = cost
			best = append(best[:0], tour...)
		}

		if deadline.Exceeded() {
			return res(false, nil, true), nil
		}
		if !nextPermutation(perm) {
			break
		}
	}

	witness := TSResult{Tour: append([]int(nil), best...), Cost: bestCost}

	return res(true, witness, false), nil
}

// nextPermutation advances p to its lexicographic successor in place,
// returning false once p was the last permutation.
//
// Complexity: O(len(p)).
func nextPermutation(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}

	return true
}
