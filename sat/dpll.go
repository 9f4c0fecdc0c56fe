// Package sat - DPLL-style backtracking solver.
//
// The solver keeps a partial assignment and, at every node:
//  1. simplifies the clause set (drop satisfied clauses, remove false
//     literals), detecting conflicts (an empty clause);
//  2. applies unit propagation until no unit clause remains;
//  3. applies pure-literal elimination when a variable occurs with a single
//     polarity across all unsatisfied clauses;
//  4. otherwise branches on the first unassigned variable, true first,
//     backtracking on conflict.
//
// Termination: either a satisfying total assignment or a proof of
// unsatisfiability by exhaustion. Results must be consistent with
// BruteForce on every shared instance - that cross-check is tested.
package sat

import (
	"errors"
	"time"

	"github.com/katalvlaran/nplab/solver"
)

// errBudget unwinds the recursion when the cooperative deadline fires.
// Internal only; surfaced to callers as Result.TimedOut, never as an error.
var errBudget = errors.New("sat: time budget exhausted")

// value states of a partial assignment.
const (
	unassigned int8 = -1
	assignedF  int8 = 0
	assignedT  int8 = 1
)

// DPLL is the optimized SAT solver with unit propagation and pure-literal
// elimination.
type DPLL struct{}

// AlgorithmName implements solver.Solver.
func (DPLL) AlgorithmName() string { return "DPLL SAT" }

// ComplexityClass implements solver.Solver.
func (DPLL) ComplexityClass() string { return "Exponential worst case, pruned (DPLL)" }

// dpllState carries the per-call search state; each Solve invocation owns
// one exclusively, so concurrent calls never share mutable state.
type dpllState struct {
	deadline *solver.Deadline

	branches     int64
	propagations int64
	eliminations int64
}

// Solve implements solver.Solver.
//
// Contracts:
//   - inst.Payload must be a CNF; ErrPayloadMismatch otherwise.
//
// On success the witness is a total assignment (unbranched variables
// default to false; they only occur in already-satisfied clauses).
//
// Complexity: exponential worst case; O(total literals) per node.
func (s DPLL) Solve(inst solver.ProblemInstance, opts solver.Options) (solver.Result, error) {
	if err := opts.Validate(); err != nil {
		return solver.Result{}, err
	}
	f, err := unwrap(inst)
	if err != nil {
		return solver.Result{}, err
	}

	var (
		start = time.Now()
		st    = &dpllState{deadline: solver.NewDeadline(opts.TimeLimit)}
		vals  = make([]int8, f.Variables)
	)
	for i := range vals {
		vals[i] = unassigned
	}

	sat, err := st.search(f.Clauses, vals)

	res := solver.Result{
		Algorithm: s.AlgorithmName(),
		Counters: map[string]int64{
			solver.CounterAssignmentsTried: st.branches,
			solver.CounterUnitPropagations: st.propagations,
			solver.CounterPureEliminations: st.eliminations,
		},
		Elapsed: time.Since(start),
	}
	if err != nil {
		if errors.Is(err, errBudget) {
			res.TimedOut = true

			return res, nil
		}

		return solver.Result{}, err
	}
	if sat {
		res.Solved = true
		res.Witness = totalize(vals)
	}

	return res, nil
}

// search is the recursive DPLL core over the current clause set and partial
// assignment. It mutates vals on forced moves (units, pures); branching
// works on copies so failed subtrees leave the parent state untouched.
func (st *dpllState) search(clauses []Clause, vals []int8) (bool, error) {
	if st.deadline.Exceeded() {
		return false, errBudget
	}

	simplified, conflict := simplify(clauses, vals)
	if conflict {
		return false, nil
	}
	if len(simplified) == 0 {
		return true, nil
	}

	// Unit propagation: a clause reduced to a single literal forces it.
	if lit := findUnit(simplified); lit != 0 {
		st.propagations++
		assign(vals, lit)

		return st.search(simplified, vals)
	}

	// Pure-literal elimination: a single-polarity variable can be fixed to
	// satisfy every clause it occurs in.
	if lit := findPure(simplified); lit != 0 {
		st.eliminations++
		assign(vals, lit)

		return st.search(simplified, vals)
	}

	// Branch on the first unassigned variable, trying both polarities.
	v := firstUnassigned(vals)
	if v == 0 {
		// All variables assigned and no conflicting clause remains.
		return true, nil
	}
	var (
		lit int
		cp  []int8
	)
	for _, lit = range [2]int{v, -v} {
		st.branches++
		cp = make([]int8, len(vals))
		copy(cp, vals)
		assign(cp, lit)
		ok, err := st.search(simplified, cp)
		if err != nil {
			return false, err
		}
		if ok {
			copy(vals, cp)

			return true, nil
		}
	}

	return false, nil
}

// simplify drops satisfied clauses and removes false literals under the
// partial assignment. The second return is true when an empty (conflicting)
// clause was produced.
//
// Complexity: O(total literals).
func simplify(clauses []Clause, vals []int8) ([]Clause, bool) {
	out := make([]Clause, 0, len(clauses))

	var (
		c         Clause
		lit       int
		v         int8
		reduced   Clause
		satisfied bool
	)
	for _, c = range clauses {
		reduced = reduced[:0]
		satisfied = false
		for _, lit = range c {
			v = lookup(vals, lit)
			switch {
			case v == unassigned:
				reduced = append(reduced, lit)
			case litTrue(lit, v):
				satisfied = true
			}
			if satisfied {
				break
			}
		}
		if satisfied {
			continue
		}
		if len(reduced) == 0 {
			return nil, true
		}
		out = append(out, append(Clause(nil), reduced...))
	}

	return out, false
}

// findUnit returns the literal of the first single-literal clause, or 0.
func findUnit(clauses []Clause) int {
	for _, c := range clauses {
		if len(c) == 1 {
			return c[0]
		}
	}

	return 0
}

// findPure scans literal polarities and returns a literal whose variable
// occurs with only one polarity across all remaining clauses, or 0.
// Deterministic: the lowest-indexed pure variable wins.
//
// Complexity: O(total literals).
func findPure(clauses []Clause) int {
	var (
		pos = map[int]bool{}
		neg = map[int]bool{}
	)
	for _, c := range clauses {
		for _, lit := range c {
			if lit > 0 {
				pos[lit] = true
			} else {
				neg[-lit] = true
			}
		}
	}

	best := 0
	for v := range pos {
		if !neg[v] && (best == 0 || v < best) {
			best = v
		}
	}
	if best != 0 {
		return best
	}
	for v := range neg {
		if !pos[v] && (best == 0 || v < best) {
			best = v
		}
	}
	if best != 0 {
		return -best
	}

	return 0
}

// firstUnassigned returns the 1-based index of the first unassigned
// variable, or 0 when the assignment is total.
func firstUnassigned(vals []int8) int {
	for i, v := range vals {
		if v == unassigned {
			return i + 1
		}
	}

	return 0
}

// assign records the polarity forced or chosen for a literal.
func assign(vals []int8, lit int) {
	if lit > 0 {
		vals[lit-1] = assignedT
	} else {
		vals[-lit-1] = assignedF
	}
}

// lookup returns the partial-assignment state of the literal's variable.
func lookup(vals []int8, lit int) int8 {
	if lit > 0 {
		return vals[lit-1]
	}

	return vals[-lit-1]
}

// litTrue reports whether a literal is satisfied by a decided variable.
func litTrue(lit int, v int8) bool {
	if lit > 0 {
		return v == assignedT
	}

	return v == assignedF
}

// totalize converts a partial assignment to a total witness; variables the
// search never touched default to false.
func totalize(vals []int8) Assignment {
	out := make(Assignment, len(vals))
	for i, v := range vals {
		out[i] = v == assignedT
	}

	return out
}
