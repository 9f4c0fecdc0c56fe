// Package sat - CNF model, assignments and strict sentinel errors.
//
// Design principles:
//   - Deterministic, side-effect free data holders.
//   - No logging, no panics on user input - only sentinel errors.
//   - Structural validation is the engine's duty at its input boundary;
//     generation-parameter validation belongs to package generate.
package sat

import (
	"errors"

	"github.com/katalvlaran/nplab/solver"
)

var (
	// ErrZeroLiteral is returned when a clause contains the literal 0
	// (reserved as the clause terminator in DIMACS).
	ErrZeroLiteral = errors.New("sat: zero literal in clause")

	// ErrLiteralOutOfRange is returned when |literal| exceeds the declared
	// variable count.
	ErrLiteralOutOfRange = errors.New("sat: literal references unknown variable")

	// ErrNegativeVariables is returned for a negative variable count.
	ErrNegativeVariables = errors.New("sat: negative variable count")

	// ErrTooManyVariables is returned when a formula exceeds the brute-force
	// enumeration cap (MaxBruteForceVars).
	ErrTooManyVariables = errors.New("sat: too many variables for brute force")

	// ErrBadWitness is returned when an assignment's length does not match
	// the formula's variable count.
	ErrBadWitness = errors.New("sat: assignment length mismatch")
)

// MaxBruteForceVars bounds the truth-table enumeration. 2^30 assignments is
// already far beyond interactive budgets; the cap exists to fail fast on
// instances that could never finish rather than to make them feasible.
const MaxBruteForceVars = 30

// Clause is a disjunction of signed literals: +v means variable v, −v means
// its negation. Variables are 1-based; 0 is invalid. An empty clause is
// legal input and is unsatisfiable by definition (falsum).
type Clause []int

// CNF is a conjunction of clauses over variables x1..xVariables.
// It is the SAT payload carried by a solver.ProblemInstance.
type CNF struct {
	Variables int
	Clauses   []Clause
}

// Kind implements solver.Payload.
func (CNF) Kind() solver.Kind { return solver.SAT }

// Validate checks structural validity: Variables ≥ 0, no zero literal,
// every |literal| within [1..Variables].
//
// Complexity: O(total literals).
func (f CNF) Validate() error {
	if f.Variables < 0 {
		return ErrNegativeVariables
	}
	for _, c := range f.Clauses {
		for _, lit := range c {
			if lit == 0 {
				return ErrZeroLiteral
			}
			v := lit
			if v < 0 {
				v = -v
			}
			if v > f.Variables {
				return ErrLiteralOutOfRange
			}
		}
	}

	return nil
}

// Assignment maps variable i+1 to a[i]. Always total (length == Variables).
type Assignment []bool

// Clone returns an independent copy; solvers hand out clones so the caller
// can never alias internal search state.
func (a Assignment) Clone() Assignment {
	out := make(Assignment, len(a))
	copy(out, a)

	return out
}

// Eval folds clause truth values with logical AND, each clause folding its
// literal truth values with logical OR (negation applied per sign).
//
// Returns ErrBadWitness when len(a) != f.Variables.
//
// Complexity: O(total literals).
func (f CNF) Eval(a Assignment) (bool, error) {
	if len(a) != f.Variables {
		return false, ErrBadWitness
	}
	for _, c := range f.Clauses {
		if !clauseTrue(c, a) {
			return false, nil
		}
	}

	return true, nil
}

// clauseTrue reports whether one clause is satisfied under a total
// assignment. An empty clause is false.
func clauseTrue(c Clause, a Assignment) bool {
	for _, lit := range c {
		if lit > 0 {
			if a[lit-1] {
				return true
			}
		} else if !a[-lit-1] {
			return true
		}
	}

	return false
}

// Verify is the independent witness check used by tests and benchmarks:
// it validates the formula first, then evaluates the assignment.
//
// Complexity: O(total literals).
func Verify(f CNF, a Assignment) (bool, error) {
	if err := f.Validate(); err != nil {
		return false, err
	}

	return f.Eval(a)
}

// Wrap packages a CNF into a solver.ProblemInstance for callers that do not
// go through package generate.
func Wrap(f CNF) solver.ProblemInstance {
	return solver.ProblemInstance{
		Kind:    solver.SAT,
		Size:    f.Variables,
		Payload: f,
	}
}

// unwrap performs the boundary tag check shared by both solvers.
func unwrap(inst solver.ProblemInstance) (CNF, error) {
	if inst.Payload == nil {
		return CNF{}, solver.ErrNilPayload
	}
	f, ok := inst.Payload.(CNF)
	if !ok {
		return CNF{}, solver.ErrPayloadMismatch
	}
	if err := f.Validate(); err != nil {
		return CNF{}, err
	}

	return f, nil
}
