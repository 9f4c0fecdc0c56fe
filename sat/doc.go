// Package sat solves boolean satisfiability on CNF formulas, with a
// brute-force truth-table search and a DPLL-style backtracking solver.
//
// 🚀 What is SAT?
//
//	Given clauses over variables x1..xN (each clause a disjunction of
//	signed literals), decide whether some truth assignment satisfies
//	every clause. The first problem proven NP-complete; the engine here
//	is deliberately textbook-sized (N ≲ 20 for brute force, larger
//	tolerable for DPLL since pruning reduces branching).
//
// ✨ What's included:
//   - CNF model with DIMACS-signed literals (+v / −v, 1-based)
//   - BruteForce — exhaustive 2^N truth-table enumeration
//   - DPLL — unit propagation + pure-literal elimination + backtracking
//   - Parse — a tiny boolean-expression grammar
//     (VAR | !expr | expr & expr | expr | expr | (expr)),
//     tokenized, converted to postfix via shunting-yard, and evaluated
//     by a postfix machine
//   - Verify — independent witness checking for any solver's output
//
// Both solvers must agree on satisfiability for every shared instance;
// that cross-check is the primary correctness property of the package.
//
// ⚙️ Usage:
//
//	f := sat.CNF{Variables: 3, Clauses: []sat.Clause{{1, 2}, {-1, 3}}}
//	res, err := sat.DPLL{}.Solve(sat.Wrap(f), solver.DefaultOptions())
//	// res.Solved == true; res.Witness.(sat.Assignment) satisfies f
//
// Performance:
//   - BruteForce: O(2^N · |clauses|) time, O(N) space
//   - DPLL: exponential worst case, heavily pruned in practice
package sat
