// Package subsetsum - dynamic-programming solver.
//
// Canonical reachability table: reach[i][j] is true when some subset of the
// first i numbers sums to j, for j in 0..target. One witness is then
// reconstructed by walking the table backward from reach[n][target].
//
// The table only covers non-negative integer sums; negative numbers or a
// negative target are rejected with ErrDPRangeUnsupported so callers fall
// back to BruteForce deliberately instead of receiving a silent wrong
// answer.
package subsetsum

import (
	"time"

	"github.com/katalvlaran/nplab/solver"
)

// DP is the pseudo-polynomial Subset Sum solver.
type DP struct{}

// AlgorithmName implements solver.Solver.
func (DP) AlgorithmName() string { return "Dynamic Programming Subset Sum" }

// ComplexityClass implements solver.Solver.
func (DP) ComplexityClass() string { return "Pseudo-polynomial: O(n·target)" }

// Solve implements solver.Solver.
//
// Contracts:
//   - Numbers[i] ≥ 0 and Target ≥ 0, else ErrDPRangeUnsupported.
//   - (n+1)·(target+1) ≤ MaxDPTableCells, else ErrDPTableTooLarge.
//
// Agreement with BruteForce on solvability holds for every shared
// instance; the witness may differ but always verifies.
//
// The "dp_cells" counter reports cells actually filled. The table fill is
// a tight loop bounded by the cell budget, so no cooperative deadline is
// consulted here; the budget guard plays that role.
//
// Complexity: O(n·target) time and memory.
func (s DP) Solve(pi solver.ProblemInstance, opts solver.Options) (solver.Result, error) {
	if err := opts.Validate(); err != nil {
		return solver.Result{}, err
	}
	inst, err := unwrap(pi)
	if err != nil {
		return solver.Result{}, err
	}
	if inst.Target < 0 || hasNegative(inst.Numbers) {
		return solver.Result{}, ErrDPRangeUnsupported
	}

	var (
		start  = time.Now()
		n      = len(inst.Numbers)
		target = inst.Target
	)
	if (int64(n)+1)*(int64(target)+1) > MaxDPTableCells {
		return solver.Result{}, ErrDPTableTooLarge
	}

	// reach[i][j]: some subset of Numbers[:i] sums to j.
	reach := make([][]bool, n+1)
	for i := range reach {
		reach[i] = make([]bool, target+1)
		reach[i][0] = true // the empty subset
	}

	var (
		cells int64
		i, j  int
	)
	for i = 1; i <= n; i++ {
		v := inst.Numbers[i-1]
		for j = 1; j <= target; j++ {
			cells++
			reach[i][j] = reach[i-1][j]
			if v <= j && reach[i-1][j-v] {
				reach[i][j] = true
			}
		}
	}

	res := solver.Result{
		Algorithm: s.AlgorithmName(),
		Counters:  map[string]int64{solver.CounterDPCells: cells},
		Elapsed:   time.Since(start),
	}
	if !reach[n][target] {
		return res, nil
	}

	// Backward walk: element i-1 is included exactly when the prefix
	// without it cannot reach the current remainder.
	witness := make([]int, 0, n)
	j = target
	for i = n; i > 0 && j > 0; i-- {
		if !reach[i-1][j] {
			witness = append(witness, i-1)
			j -= inst.Numbers[i-1]
		}
	}

	res.Solved = true
	res.Witness = sortedWitness(witness)
	res.Elapsed = time.Since(start)

	return res, nil
}
