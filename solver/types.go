// Package solver - core types and strict sentinel errors.
//
// Design principles (shared by every engine):
//   - Sentinel errors only; callers branch with errors.Is.
//   - No logging, no panics on user input.
//   - Deterministic, side-effect free data holders.
package solver

import (
	"errors"
	"time"
)

// Sentinel errors shared across engines. Engine-specific sentinels live in
// the owning package (sat, subsetsum, tsp).
var (
	// ErrPayloadMismatch is returned when an instance of one problem kind is
	// handed to a solver of another kind. Contract violation; never retried.
	ErrPayloadMismatch = errors.New("solver: payload kind does not match solver")

	// ErrNilPayload is returned when a ProblemInstance carries no payload.
	ErrNilPayload = errors.New("solver: nil payload")

	// ErrBadOptions is returned for internally inconsistent run options
	// (e.g., a negative time limit).
	ErrBadOptions = errors.New("solver: invalid options")

	// ErrBadParameters is returned when a parameter map cannot be decoded
	// into the requested typed struct.
	ErrBadParameters = errors.New("solver: invalid parameter map")
)

// Kind tags the problem family an instance (and its payload) belongs to.
type Kind int

const (
	// SAT - boolean satisfiability over CNF clauses.
	SAT Kind = iota

	// SubsetSum - find a sub-multiset summing exactly to a target.
	SubsetSum

	// TSP - shortest Hamiltonian cycle over a distance matrix.
	TSP
)

// String implements fmt.Stringer for diagnostics and CSV export.
func (k Kind) String() string {
	switch k {
	case SAT:
		return "SAT"
	case SubsetSum:
		return "SubsetSum"
	case TSP:
		return "TSP"
	default:
		return "Unknown"
	}
}

// Payload is the sealed sum type carried by a ProblemInstance.
// Implemented by sat.CNF, subsetsum.Instance and tsp.Instance; the Kind
// method doubles as the runtime tag checked at each engine's boundary.
type Payload interface {
	Kind() Kind
}

// ProblemInstance is a plain data holder for one generated problem.
//
// Immutable once produced; owned by whichever Solve call receives it.
// Metadata may carry ground truth planted by the generator:
//
//	"assignment" []bool       - satisfying assignment (SAT)
//	"subset"     []int        - witness indices (SubsetSum)
//	"points"     [][2]float64 - city coordinates (Euclidean TSP)
type ProblemInstance struct {
	Kind       Kind
	Size       int
	Parameters map[string]any
	Payload    Payload
	Metadata   map[string]any
}

// Stable counter keys reported in Result.Counters. Downstream consumers
// (benchmarks, CSV, tests) key off these directly - do not rename.
const (
	CounterAssignmentsTried      = "assignments_tried"
	CounterUnitPropagations      = "unit_propagations"
	CounterPureEliminations      = "pure_eliminations"
	CounterSubsetsTried          = "subsets_tried"
	CounterDPCells               = "dp_cells"
	CounterToursEvaluated        = "tours_evaluated"
	CounterDistanceCalculations  = "distance_calculations"
	CounterImprovementIterations = "improvement_iterations"
)

// Result is the uniform outcome record produced once per Solve invocation.
// Read-only after return; never persisted by the core.
//
// Witness is domain-specific:
//
//	SAT       - sat.Assignment ([]bool)
//	SubsetSum - []int (indices into Instance.Numbers)
//	TSP       - tsp.TSResult (closed tour plus its cost)
//
// A TimedOut result means the search was abandoned before completion:
// Solved is false but the instance is NOT proven unsolvable.
type Result struct {
	Algorithm string
	Solved    bool
	Witness   any
	Counters  map[string]int64
	Elapsed   time.Duration
	TimedOut  bool
}

// Options configures a single Solve call. Zero value means "no limits".
//
// There is no process-wide default budget; the limit is an explicit value
// threaded into each call.
type Options struct {
	// TimeLimit is the cooperative wall-clock budget. 0 means unlimited.
	// Solvers check elapsed time at loop/recursion boundaries and return a
	// TimedOut result; cancellation is never preemptive.
	TimeLimit time.Duration
}

// DefaultOptions returns the canonical run configuration: no time budget.
func DefaultOptions() Options { return Options{} }

// Validate checks internal consistency of Options.
//
// Complexity: O(1).
func (o Options) Validate() error {
	if o.TimeLimit < 0 {
		return ErrBadOptions
	}

	return nil
}

// Solver is the contract every algorithm variant satisfies, enabling
// benchmarking and demo code to treat the six variants polymorphically.
type Solver interface {
	// Solve consumes one instance and returns a result record.
	// The payload kind must match the engine; ErrPayloadMismatch otherwise.
	Solve(inst ProblemInstance, opts Options) (Result, error)

	// AlgorithmName returns a human-readable algorithm name.
	AlgorithmName() string

	// ComplexityClass returns the theoretical complexity description.
	ComplexityClass() string
}
