// Package sat - exhaustive truth-table solver.
//
// BruteForce enumerates all 2^N assignments as an increasing binary counter
// over variable indices (bit i of the counter is the value of x(i+1)), so
// the visiting order - and therefore the first witness found - is fully
// deterministic. Every assignment tested is counted; the counter reflects
// actual work performed, never an estimate.
package sat

import (
	"time"

	"github.com/katalvlaran/nplab/solver"
)

// BruteForce is the exhaustive truth-table SAT solver.
type BruteForce struct{}

// AlgorithmName implements solver.Solver.
func (BruteForce) AlgorithmName() string { return "Brute Force SAT" }

// ComplexityClass implements solver.Solver.
func (BruteForce) ComplexityClass() string { return "Exponential: O(2^n · m)" }

// Solve enumerates assignments until one satisfies every clause or the
// space is exhausted.
//
// Contracts:
//   - inst.Payload must be a CNF; ErrPayloadMismatch otherwise.
//   - Variables ≤ MaxBruteForceVars; ErrTooManyVariables otherwise.
//
// The deadline (opts.TimeLimit) is checked cooperatively once per
// assignment; on expiry the result reports TimedOut=true, Solved=false,
// with counters covering the work actually done.
//
// Complexity: O(2^n · total literals) time, O(n) space.
func (s BruteForce) Solve(inst solver.ProblemInstance, opts solver.Options) (solver.Result, error) {
	if err := opts.Validate(); err != nil {
		return solver.Result{}, err
	}
	f, err := unwrap(inst)
	if err != nil {
		return solver.Result{}, err
	}
	if f.Variables > MaxBruteForceVars {
		return solver.Result{}, ErrTooManyVariables
	}

	var (
		start    = time.Now()
		deadline = solver.NewDeadline(opts.TimeLimit)
		n        = f.Variables
		a        = make(Assignment, n)
		tried    int64
	)

	res := func(solved bool, witness any, timedOut bool) solver.Result {
		return solver.Result{
			Algorithm: s.AlgorithmName(),
			Solved:    solved,
			Witness:   witness,
			Counters:  map[string]int64{solver.CounterAssignmentsTried: tried},
			Elapsed:   time.Since(start),
			TimedOut:  timedOut,
		}
	}

	var (
		mask  uint64
		total = uint64(1) << uint(n)
		i     int
	)
	for mask = 0; mask < total; mask++ {
		tried++
		for i = 0; i < n; i++ {
			a[i] = mask&(1<<uint(i)) != 0
		}
		if ok, _ := f.Eval(a); ok {
			return res(true, a.Clone(), false), nil
		}
		if deadline.Exceeded() {
			return res(false, nil, true), nil
		}
	}

	// Space exhausted: unsatisfiability is proven, not assumed.
	return res(false, nil, false), nil
}

// SolveExpr runs the same truth-table search over a parsed boolean
// expression instead of a CNF. Used by callers that feed formulas through
// the expression grammar rather than clause lists.
//
// Complexity: O(2^n · |postfix|) time, O(n) space.
func (s BruteForce) SolveExpr(e *Expr, opts solver.Options) (solver.Result, error) {
	if err := opts.Validate(); err != nil {
		return solver.Result{}, err
	}
	if e == nil {
		return solver.Result{}, solver.ErrNilPayload
	}
	n := e.Vars()
	if n > MaxBruteForceVars {
		return solver.Result{}, ErrTooManyVariables
	}

	var (
		start    = time.Now()
		deadline = solver.NewDeadline(opts.TimeLimit)
		a        = make(Assignment, n)
		tried    int64
	)

	res := func(solved bool, witness any, timedOut bool) solver.Result {
		return solver.Result{
			Algorithm: s.AlgorithmName(),
			Solved:    solved,
			Witness:   witness,
			Counters:  map[string]int64{solver.CounterAssignmentsTried: tried},
			Elapsed:   time.Since(start),
			TimedOut:  timedOut,
		}
	}

	var (
		mask  uint64
		total = uint64(1) << uint(n)
		i     int
	)
	for mask = 0; mask < total; mask++ {
		tried++
		for i = 0; i < n; i++ {
			a[i] = mask&(1<<uint(i)) != 0
		}
		ok, err := e.Eval(a)
		if err != nil {
			return solver.Result{}, err
		}
		if ok {
			return res(true, a.Clone(), false), nil
		}
		if deadline.Exceeded() {
			return res(false, nil, true), nil
		}
	}

	return res(false, nil, false), nil
}
