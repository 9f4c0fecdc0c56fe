// Package subsetsum_test - both Subset Sum solvers through the public API:
// the classic solvable/unsolvable pair, negative-number handling, DP range
// contracts, solver agreement, and the cooperative timeout.
package subsetsum_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nplab/generate"
	"github.com/katalvlaran/nplab/solver"
	"github.com/katalvlaran/nplab/subsetsum"
)

// classicNumbers is the textbook instance used across scenario tests.
var classicNumbers = []int{3, 34, 4, 12, 5, 2}

// solveBoth runs brute force and DP on the instance with default options.
func solveBoth(t *testing.T, inst subsetsum.Instance) (brute, dp solver.Result) {
	t.Helper()
	var err error
	brute, err = subsetsum.BruteForce{}.Solve(subsetsum.Wrap(inst), solver.DefaultOptions())
	require.NoError(t, err)
	dp, err = subsetsum.DP{}.Solve(subsetsum.Wrap(inst), solver.DefaultOptions())
	require.NoError(t, err)

	return brute, dp
}

// TestSolvers_ClassicSolvable checks {3,34,4,12,5,2} with target 9: both
// solvers must find a subset and both witnesses must verify.
func TestSolvers_ClassicSolvable(t *testing.T) {
	inst := subsetsum.Instance{Numbers: classicNumbers, Target: 9}

	brute, dp := solveBoth(t, inst)
	for _, res := range []solver.Result{brute, dp} {
		assert.True(t, res.Solved, "%s must reach target 9", res.Algorithm)

		witness, ok := res.Witness.([]int)
		require.True(t, ok, "witness must be []int indices")
		good, err := subsetsum.Verify(inst, witness)
		require.NoError(t, err)
		assert.True(t, good, "%s witness must sum to the target", res.Algorithm)
	}
}

// TestSolvers_ClassicUnsolvable checks the same numbers with target 30,
// which no subset reaches: both solvers must prove absence, not time out.
func TestSolvers_ClassicUnsolvable(t *testing.T) {
	inst := subsetsum.Instance{Numbers: classicNumbers, Target: 30}

	brute, dp := solveBoth(t, inst)
	for _, res := range []solver.Result{brute, dp} {
		assert.False(t, res.Solved, "%s: no subset sums to 30", res.Algorithm)
		assert.False(t, res.TimedOut, "%s: absence must be proven, not assumed", res.Algorithm)
		assert.Nil(t, res.Witness)
	}
}

// TestSolvers_SmallUnsolvable checks {5,7,11} with target 3: every number
// exceeds the target, so both solvers must prove absence immediately.
func TestSolvers_SmallUnsolvable(t *testing.T) {
	inst := subsetsum.Instance{Numbers: []int{5, 7, 11}, Target: 3}

	brute, dp := solveBoth(t, inst)
	assert.False(t, brute.Solved)
	assert.False(t, dp.Solved)
}

// TestBruteForce_TargetZero confirms the empty subset is a legal witness.
func TestBruteForce_TargetZero(t *testing.T) {
	inst := subsetsum.Instance{Numbers: []int{5, 7}, Target: 0}

	res, err := subsetsum.BruteForce{}.Solve(subsetsum.Wrap(inst), solver.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, res.Solved)
	assert.Empty(t, res.Witness, "target 0 is reached by the empty subset")
}

// TestBruteForce_Negatives covers arbitrary-sign inputs, which only the
// brute-force solver supports.
func TestBruteForce_Negatives(t *testing.T) {
	inst := subsetsum.Instance{Numbers: []int{-7, 3, 10, -1}, Target: -8}

	res, err := subsetsum.BruteForce{}.Solve(subsetsum.Wrap(inst), solver.DefaultOptions())
	require.NoError(t, err)
	require.True(t, res.Solved, "-7 + -1 reaches -8")
	good, err := subsetsum.Verify(inst, res.Witness.([]int))
	require.NoError(t, err)
	assert.True(t, good)
}

// TestBruteForce_InfeasibleByConstruction checks the fast-fail for a
// negative target over non-negative numbers.
func TestBruteForce_InfeasibleByConstruction(t *testing.T) {
	inst := subsetsum.Instance{Numbers: []int{1, 2, 3}, Target: -5}
	_, err := subsetsum.BruteForce{}.Solve(subsetsum.Wrap(inst), solver.DefaultOptions())
	assert.ErrorIs(t, err, subsetsum.ErrInfeasibleTarget)
}

// TestDP_RangeContracts checks that the DP solver rejects inputs outside
// its table range instead of answering wrongly.
func TestDP_RangeContracts(t *testing.T) {
	_, err := subsetsum.DP{}.Solve(subsetsum.Wrap(subsetsum.Instance{Numbers: []int{-1, 2}, Target: 1}), solver.DefaultOptions())
	assert.ErrorIs(t, err, subsetsum.ErrDPRangeUnsupported, "negative numbers are out of range")

	_, err = subsetsum.DP{}.Solve(subsetsum.Wrap(subsetsum.Instance{Numbers: []int{1, 2}, Target: -3}), solver.DefaultOptions())
	assert.ErrorIs(t, err, subsetsum.ErrDPRangeUnsupported, "negative targets are out of range")

	huge := subsetsum.Instance{Numbers: make([]int, 1000), Target: subsetsum.MaxDPTableCells}
	_, err = subsetsum.DP{}.Solve(subsetsum.Wrap(huge), solver.DefaultOptions())
	assert.ErrorIs(t, err, subsetsum.ErrDPTableTooLarge)
}

// TestSolvers_AgreeOnPlantedCorpus cross-checks the solvers over generated
// instances: planted instances must be solved by both, and both witnesses
// must verify.
func TestSolvers_AgreeOnPlantedCorpus(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		t.Run(fmt.Sprintf("seed_%d", seed), func(t *testing.T) {
			pi, err := generate.SubsetSum(12, 0, seed)
			require.NoError(t, err)
			inst := pi.Payload.(subsetsum.Instance)

			brute, err := subsetsum.BruteForce{}.Solve(pi, solver.DefaultOptions())
			require.NoError(t, err)
			dp, err := subsetsum.DP{}.Solve(pi, solver.DefaultOptions())
			require.NoError(t, err)

			require.True(t, brute.Solved, "planted instances are solvable by construction")
			require.True(t, dp.Solved)
			for _, res := range []solver.Result{brute, dp} {
				good, verr := subsetsum.Verify(inst, res.Witness.([]int))
				require.NoError(t, verr)
				assert.True(t, good, "%s witness must verify", res.Algorithm)
			}
		})
	}
}

// TestSolvers_AgreeOnInfeasible checks that parity-infeasible instances
// are reported as proven-absent by both solvers.
func TestSolvers_AgreeOnInfeasible(t *testing.T) {
	pi, err := generate.SubsetSumInfeasible(14, 3)
	require.NoError(t, err)

	brute, err := subsetsum.BruteForce{}.Solve(pi, solver.DefaultOptions())
	require.NoError(t, err)
	dp, err := subsetsum.DP{}.Solve(pi, solver.DefaultOptions())
	require.NoError(t, err)

	assert.False(t, brute.Solved)
	assert.False(t, brute.TimedOut)
	assert.False(t, dp.Solved)
}

// TestBruteForce_CooperativeTimeout gives the exhaustive search a large
// parity-infeasible instance and a 50ms budget: it must come back shortly
// after the deadline with TimedOut=true rather than running to exhaustion.
func TestBruteForce_CooperativeTimeout(t *testing.T) {
	n := 30
	numbers := make([]int, n)
	total := 0
	for i := range numbers {
		numbers[i] = 2 * (1000 + 37*i)
		total += numbers[i]
	}
	// Odd target inside the reachable interval: the parity argument defeats
	// the search, not the interval prune.
	inst := subsetsum.Instance{Numbers: numbers, Target: total/2 | 1}

	started := time.Now()
	res, err := subsetsum.BruteForce{}.Solve(subsetsum.Wrap(inst), solver.Options{TimeLimit: 50 * time.Millisecond})
	require.NoError(t, err)

	assert.True(t, res.TimedOut, "a 2^30 search cannot finish in 50ms")
	assert.False(t, res.Solved)
	assert.Positive(t, res.Counters[solver.CounterSubsetsTried], "partial work is still reported")
	assert.Less(t, time.Since(started), 2*time.Second, "the deadline must cut the search short")
}

// TestVerify_RejectsBadIndices covers out-of-range and duplicate indices.
func TestVerify_RejectsBadIndices(t *testing.T) {
	inst := subsetsum.Instance{Numbers: []int{1, 2, 3}, Target: 3}

	_, err := subsetsum.Verify(inst, []int{0, 3})
	assert.ErrorIs(t, err, subsetsum.ErrBadWitness, "index past the slice")

	_, err = subsetsum.Verify(inst, []int{1, 1})
	assert.ErrorIs(t, err, subsetsum.ErrBadWitness, "duplicate index")

	good, err := subsetsum.Verify(inst, []int{0, 1})
	require.NoError(t, err)
	assert.True(t, good)
}

// TestSolvers_PayloadMismatch checks the boundary tag check on both
// solvers.
func TestSolvers_PayloadMismatch(t *testing.T) {
	foreign := solver.ProblemInstance{Kind: solver.SAT}

	for _, s := range []solver.Solver{subsetsum.BruteForce{}, subsetsum.DP{}} {
		_, err := s.Solve(foreign, solver.DefaultOptions())
		assert.ErrorIs(t, err, solver.ErrNilPayload, "%s must reject a nil payload", s.AlgorithmName())
	}
}
