// Package bench - the watchdog runner.
package bench

import (
	"context"
	"time"

	"github.com/katalvlaran/nplab/solver"
)

// Runner executes configured solvers against instances with watchdog
// protection. The zero value is not valid; construct with NewRunner.
type Runner struct {
	grace time.Duration
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithGrace overrides the watchdog grace margin (DefaultGrace).
func WithGrace(d time.Duration) RunnerOption {
	return func(r *Runner) { r.grace = d }
}

// NewRunner builds a Runner with the given options.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{grace: DefaultGrace}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// outcome pairs a solver's return values for channel transport.
type outcome struct {
	res solver.Result
	err error
}

// Run executes one solver invocation.
//
// The solve runs on a worker goroutine. Three exits:
//   - the worker finishes (success, cooperative timeout, or error);
//   - ctx is cancelled → ctx.Err() is returned;
//   - the worker overruns Timeout+grace → it is abandoned (the buffered
//     channel lets it finish unobserved) and a synthesized timed-out
//     record is returned with Abandoned=true.
//
// Solver errors (payload mismatch, malformed instance) are returned as-is;
// they are contract violations, not benchmark data points.
func (r *Runner) Run(ctx context.Context, cfg Config, inst solver.ProblemInstance) (BenchmarkResult, error) {
	if err := cfg.Validate(); err != nil {
		return BenchmarkResult{}, err
	}

	name := cfg.Name
	if name == "" {
		name = cfg.Solver.AlgorithmName()
	}
	record := func(res solver.Result, abandoned bool) BenchmarkResult {
		return BenchmarkResult{
			Name:      name,
			Kind:      inst.Kind,
			Size:      inst.Size,
			Result:    res,
			Abandoned: abandoned,
			Timestamp: time.Now(),
		}
	}

	ch := make(chan outcome, 1)
	go func() {
		res, err := cfg.Solver.Solve(inst, solver.Options{TimeLimit: cfg.Timeout})
		ch <- outcome{res: res, err: err}
	}()

	var watchdog <-chan time.Time
	if cfg.Timeout > 0 {
		watchdog = time.After(cfg.Timeout + r.grace)
	}

	select {
	case o := <-ch:
		if o.err != nil {
			return BenchmarkResult{}, o.err
		}

		return record(o.res, false), nil

	case <-ctx.Done():
		return BenchmarkResult{}, ctx.Err()

	case <-watchdog:
		// The worker ignored its cooperative budget; abandon it.
		return record(solver.Result{
			Algorithm: cfg.Solver.AlgorithmName(),
			Elapsed:   cfg.Timeout + r.grace,
			TimedOut:  true,
		}, true), nil
	}
}

// Compare runs every config against the same instance sequentially and
// collects the records. The first contract-violation error aborts the
// comparison; timeouts do not.
func (r *Runner) Compare(ctx context.Context, cfgs []Config, inst solver.ProblemInstance) ([]BenchmarkResult, error) {
	out := make([]BenchmarkResult, 0, len(cfgs))
	for _, cfg := range cfgs {
		rec, err := r.Run(ctx, cfg, inst)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	return out, nil
}
