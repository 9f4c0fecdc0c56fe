// Package generate - Subset Sum instance generators.
package generate

import (
	"math/rand"
	"sort"

	"github.com/samber/lo"

	"github.com/katalvlaran/nplab/solver"
	"github.com/katalvlaran/nplab/subsetsum"
)

// SubsetSum generates a solvable instance: positive integers in
// [1..maxValue], target derived from a random non-empty subset whose
// indices are planted under MetaSubset. maxValue == 0 defaults to 10·size.
//
// Contracts: size ≥ 1, maxValue ≥ 0.
//
// Complexity: O(size).
func SubsetSum(size, maxValue int, seed int64) (solver.ProblemInstance, error) {
	if size < 1 {
		return solver.ProblemInstance{}, ErrBadSetSize
	}
	if maxValue < 0 {
		return solver.ProblemInstance{}, ErrBadMaxValue
	}
	if maxValue == 0 {
		maxValue = size * 10
	}

	rng := rand.New(rand.NewSource(seed))

	numbers := make([]int, size)
	for i := range numbers {
		numbers[i] = 1 + rng.Intn(maxValue)
	}

	// Non-empty witness subset.
	count := 1 + rng.Intn(size)
	witness := append([]int(nil), rng.Perm(size)[:count]...)
	sort.Ints(witness)
	target := lo.SumBy(witness, func(idx int) int { return numbers[idx] })

	return solver.ProblemInstance{
		Kind: solver.SubsetSum,
		Size: size,
		Parameters: map[string]any{
			"size":      size,
			"max_value": maxValue,
			"seed":      seed,
		},
		Payload: subsetsum.Instance{Numbers: numbers, Target: target},
		Metadata: map[string]any{
			MetaSubset: witness,
		},
	}, nil
}

// SubsetSumInfeasible generates a provably unsolvable instance: every
// number is even while the target is odd, so no subset can ever match.
// Used to test that both solvers report "no solution" (as opposed to a
// timeout) when given enough budget.
//
// Contracts: size ≥ 1.
//
// Complexity: O(size).
func SubsetSumInfeasible(size int, seed int64) (solver.ProblemInstance, error) {
	if size < 1 {
		return solver.ProblemInstance{}, ErrBadSetSize
	}

	rng := rand.New(rand.NewSource(seed))

	numbers := make([]int, size)
	for i := range numbers {
		numbers[i] = 2 * (1 + rng.Intn(size*5))
	}
	total := lo.Sum(numbers)
	// Any odd target in range works; stay below the total so the parity
	// argument, not magnitude, is what makes it infeasible.
	target := 2*rng.Intn(total/2) + 1

	return solver.ProblemInstance{
		Kind: solver.SubsetSum,
		Size: size,
		Parameters: map[string]any{
			"size":      size,
			"max_value": size * 10,
			"seed":      seed,
		},
		Payload:  subsetsum.Instance{Numbers: numbers, Target: target},
		Metadata: map[string]any{},
	}, nil
}
