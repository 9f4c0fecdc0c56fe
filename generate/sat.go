// Package generate - 3-SAT instance generators.
package generate

import (
	"math/rand"

	"github.com/katalvlaran/nplab/sat"
	"github.com/katalvlaran/nplab/solver"
)

// ThreeSAT generates a satisfiable 3-SAT instance with a planted witness.
//
// A full assignment is drawn first; every clause picks 3 distinct
// variables with random polarities, then one literal is flipped to agree
// with the planted assignment when the clause would otherwise be false
// under it. The planted assignment is stored under MetaAssignment.
//
// Contracts: vars ≥ 3, clauses ≥ 1.
//
// Complexity: O(clauses).
func ThreeSAT(vars, clauses int, seed int64) (solver.ProblemInstance, error) {
	if vars < 3 {
		return solver.ProblemInstance{}, ErrBadVariableCount
	}
	if clauses < 1 {
		return solver.ProblemInstance{}, ErrBadClauseCount
	}

	rng := rand.New(rand.NewSource(seed))

	planted := make(sat.Assignment, vars)
	for i := range planted {
		planted[i] = rng.Intn(2) == 1
	}

	cs := make([]sat.Clause, clauses)

	var (
		i, j    int
		clause  sat.Clause
		v       int
		satisfd bool
	)
	for i = 0; i < clauses; i++ {
		clause = make(sat.Clause, 0, 3)
		for _, v = range rng.Perm(vars)[:3] {
			if rng.Intn(2) == 1 {
				clause = append(clause, v+1)
			} else {
				clause = append(clause, -(v + 1))
			}
		}

		satisfd = false
		for _, lit := range clause {
			if litAgrees(lit, planted) {
				satisfd = true

				break
			}
		}
		if !satisfd {
			// Flip one random literal to match the planted assignment.
			j = rng.Intn(3)
			clause[j] = -clause[j]
		}
		cs[i] = clause
	}

	f := sat.CNF{Variables: vars, Clauses: cs}

	return solver.ProblemInstance{
		Kind: solver.SAT,
		Size: vars,
		Parameters: map[string]any{
			"variables": vars,
			"clauses":   clauses,
			"width":     3,
			"seed":      seed,
		},
		Payload: f,
		Metadata: map[string]any{
			MetaAssignment: planted,
		},
	}, nil
}

// RandomCNF generates an unplanted uniform k-SAT instance; it may well be
// unsatisfiable, which is exactly what the brute/DPLL agreement tests
// need.
//
// Contracts: vars ≥ 1, clauses ≥ 1, 1 ≤ k ≤ vars.
//
// Complexity: O(clauses·k).
func RandomCNF(vars, clauses, k int, seed int64) (solver.ProblemInstance, error) {
	if vars < 1 {
		return solver.ProblemInstance{}, ErrBadVariableCount
	}
	if clauses < 1 {
		return solver.ProblemInstance{}, ErrBadClauseCount
	}
	if k < 1 || k > vars {
		return solver.ProblemInstance{}, ErrBadClauseWidth
	}

	rng := rand.New(rand.NewSource(seed))
	cs := make([]sat.Clause, clauses)

	var (
		i      int
		clause sat.Clause
		v      int
	)
	for i = 0; i < clauses; i++ {
		clause = make(sat.Clause, 0, k)
		for _, v = range rng.Perm(vars)[:k] {
			if rng.Intn(2) == 1 {
				clause = append(clause, v+1)
			} else {
				clause = append(clause, -(v + 1))
			}
		}
		cs[i] = clause
	}

	return solver.ProblemInstance{
		Kind: solver.SAT,
		Size: vars,
		Parameters: map[string]any{
			"variables": vars,
			"clauses":   clauses,
			"width":     k,
			"seed":      seed,
		},
		Payload:  sat.CNF{Variables: vars, Clauses: cs},
		Metadata: map[string]any{},
	}, nil
}

// litAgrees reports whether a signed literal is true under the assignment.
func litAgrees(lit int, a sat.Assignment) bool {
	if lit > 0 {
		return a[lit-1]
	}

	return !a[-lit-1]
}
