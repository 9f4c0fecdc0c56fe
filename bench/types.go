// Package bench - configuration and result records.
package bench

import (
	"errors"
	"time"

	"github.com/katalvlaran/nplab/solver"
)

var (
	// ErrNilSolver is returned when a Config carries no solver.
	ErrNilSolver = errors.New("bench: nil solver in config")

	// ErrBadTimeout is returned for a negative timeout.
	ErrBadTimeout = errors.New("bench: negative timeout")
)

// DefaultGrace is how far past its cooperative budget a solver may run
// before the watchdog abandons the worker goroutine.
const DefaultGrace = 100 * time.Millisecond

// Config names one algorithm entry in a benchmark run.
type Config struct {
	// Name labels the run in reports; defaults to the solver's
	// AlgorithmName when empty.
	Name string

	// Solver is the algorithm under measurement.
	Solver solver.Solver

	// Timeout is the per-run budget, passed to the solver as its
	// cooperative TimeLimit and enforced (plus grace) by the watchdog.
	// 0 means unlimited.
	Timeout time.Duration
}

// Validate checks the config before a run.
//
// Complexity: O(1).
func (c Config) Validate() error {
	if c.Solver == nil {
		return ErrNilSolver
	}
	if c.Timeout < 0 {
		return ErrBadTimeout
	}

	return nil
}

// BenchmarkResult captures one timed solver invocation. Abandoned runs
// (watchdog fired) carry a synthesized Result with TimedOut=true and
// Abandoned=true; cooperative timeouts have Abandoned=false.
type BenchmarkResult struct {
	Name      string
	Kind      solver.Kind
	Size      int
	Result    solver.Result
	Abandoned bool
	Timestamp time.Time
}
