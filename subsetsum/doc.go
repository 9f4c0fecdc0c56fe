// Package subsetsum solves the Subset Sum problem: given numbers (integers,
// duplicates allowed) and a target, find a sub-multiset summing exactly to
// the target.
//
// Two algorithms are provided:
//
//   - BruteForce — depth-first search over include/exclude decisions per
//     element, visiting elements in descending-|value| order (shrinks the
//     expected depth to success without changing the worst case) and
//     pruning branches whose reachable sum interval cannot contain the
//     target. Exponential: O(2^n).
//
//   - DP — the canonical reachability table over sums 0..target with
//     witness reconstruction by a backward walk. Pseudo-polynomial:
//     O(n·target) time and memory. Only non-negative integer inputs are
//     supported by the canonical DP; negative or fractional inputs require
//     the brute-force fallback, and the solver says so explicitly with
//     ErrDPRangeUnsupported rather than silently returning a wrong
//     "no solution".
//
// Witnesses are index-based ([]int into Instance.Numbers), which makes the
// sub-multiset property structural: the two solvers may return different
// subsets for the same instance, but every returned witness verifies.
//
// A brute-force search abandoned on its time budget reports
// Result.TimedOut=true — "no solution found within budget" is surfaced as
// a distinct state, never conflated with a proven-absent solution.
package subsetsum
