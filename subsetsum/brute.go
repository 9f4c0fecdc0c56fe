// Package subsetsum - depth-first brute-force search.
//
// The search explores include/exclude decisions per element. Elements are
// visited in descending-|value| order. Pruning uses the reachable-sum
// interval: with sufNeg[i] / sufPos[i] the sums of remaining negative /
// positive elements, a branch is dead when
//
//	sum + sufPos[i] < target   or   sum + sufNeg[i] > target
//
// which is exact for arbitrary-sign inputs and degenerates to the familiar
// partial-sum prune on all-positive instances.
package subsetsum

import (
	"errors"
	"sort"
	"time"

	"github.com/katalvlaran/nplab/solver"
)

// errBudget unwinds the recursion when the cooperative deadline fires.
var errBudget = errors.New("subsetsum: time budget exhausted")

// BruteForce is the exhaustive include/exclude Subset Sum solver.
type BruteForce struct{}

// AlgorithmName implements solver.Solver.
func (BruteForce) AlgorithmName() string { return "Brute Force Subset Sum" }

// ComplexityClass implements solver.Solver.
func (BruteForce) ComplexityClass() string { return "Exponential: O(2^n)" }

// bruteState is per-call search state; every invocation owns one.
type bruteState struct {
	nums     []int // numbers reordered descending by |value|
	orig     []int // orig[i] = index of nums[i] in the input slice
	sufPos   []int // sufPos[i] = sum of positive nums[i:]
	sufNeg   []int // sufNeg[i] = sum of negative nums[i:]
	target   int
	deadline *solver.Deadline

	tried  int64
	picked []int // orig indices currently included
}

// Solve implements solver.Solver.
//
// Fails fast with ErrInfeasibleTarget when the target is negative and no
// negative number exists (unreachable by construction). A search abandoned
// on its time budget reports TimedOut=true, Solved=false - explicitly
// distinct from a proven-absent solution.
//
// Complexity: O(2^n) time worst case, O(n) space.
func (s BruteForce) Solve(pi solver.ProblemInstance, opts solver.Options) (solver.Result, error) {
	if err := opts.Validate(); err != nil {
		return solver.Result{}, err
	}
	inst, err := unwrap(pi)
	if err != nil {
		return solver.Result{}, err
	}
	if inst.Target < 0 && !hasNegative(inst.Numbers) {
		return solver.Result{}, ErrInfeasibleTarget
	}

	var (
		start = time.Now()
		n     = len(inst.Numbers)
		st    = &bruteState{
			nums:     make([]int, n),
			orig:     make([]int, n),
			sufPos:   make([]int, n+1),
			sufNeg:   make([]int, n+1),
			target:   inst.Target,
			deadline: solver.NewDeadline(opts.TimeLimit),
			picked:   make([]int, 0, n),
		}
	)

	// Reorder descending by |value|; ties keep input order (stable sort).
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return abs(inst.Numbers[order[a]]) > abs(inst.Numbers[order[b]])
	})
	for i, idx := range order {
		st.nums[i] = inst.Numbers[idx]
		st.orig[i] = idx
	}
	for i := n - 1; i >= 0; i-- {
		st.sufPos[i] = st.sufPos[i+1]
		st.sufNeg[i] = st.sufNeg[i+1]
		if st.nums[i] > 0 {
			st.sufPos[i] += st.nums[i]
		} else {
			st.sufNeg[i] += st.nums[i]
		}
	}

	found, err := st.dfs(0, 0)

	res := solver.Result{
		Algorithm: s.AlgorithmName(),
		Counters:  map[string]int64{solver.CounterSubsetsTried: st.tried},
		Elapsed:   time.Since(start),
	}
	if err != nil {
		if errors.Is(err, errBudget) {
			res.TimedOut = true

			return res, nil
		}

		return solver.Result{}, err
	}
	if found {
		res.Solved = true
		res.Witness = sortedWitness(st.picked)
	}

	return res, nil
}

// dfs explores decisions from position i with the running sum. Each node
// expanded increments the work counter; the sum test happens at node entry
// so the empty subset is a legal witness for target 0.
func (st *bruteState) dfs(i, sum int) (bool, error) {
	st.tried++
	if st.deadline.Exceeded() {
		return false, errBudget
	}
	if sum == st.target {
		// The empty subset is a legal witness for target 0.
		return true, nil
	}
	if i == len(st.nums) {
		return false, nil
	}
	// Reachable-sum interval prune.
	if sum+st.sufPos[i] < st.target || sum+st.sufNeg[i] > st.target {
		return false, nil
	}

	// Include st.nums[i] first: descending-|value| order reaches large
	// targets in fewer decisions.
	st.picked = append(st.picked, st.orig[i])
	ok, err := st.dfs(i+1, sum+st.nums[i])
	if err != nil {
		return false, err
	}
	if ok {
		return true, nil
	}
	st.picked = st.picked[:len(st.picked)-1]

	return st.dfs(i+1, sum)
}

func hasNegative(nums []int) bool {
	for _, v := range nums {
		if v < 0 {
			return true
		}
	}

	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
