// Package solver - cooperative deadline helper shared by all engines.
//
// Solvers are single-threaded and synchronous; the only time-related duty
// of the core is to check elapsed wall-clock time at reasonable intervals
// (once per node expanded, per assignment tried, per tour evaluated) and
// report a timeout result cooperatively. External watchdogs live in bench.
package solver

import "time"

// deadlineMask throttles time.Now() calls: the clock is consulted once per
// (deadlineMask+1) Exceeded() calls. Keeps hot loops cheap.
const deadlineMask = 1023

// Deadline is a throttled wall-clock budget check.
//
// The zero value is NOT valid; construct with NewDeadline. A Deadline with
// no budget never fires.
type Deadline struct {
	armed bool
	at    time.Time
	step  int
}

// NewDeadline arms a deadline limit from now; limit==0 disarms it.
//
// Complexity: O(1).
func NewDeadline(limit time.Duration) *Deadline {
	d := &Deadline{}
	if limit > 0 {
		d.armed = true
		d.at = time.Now().Add(limit)
	}

	return d
}

// Exceeded reports whether the budget has run out. The clock is read only
// every deadlineMask+1 calls; callers invoke it once per unit of work.
//
// Complexity: O(1) amortized.
func (d *Deadline) Exceeded() bool {
	if !d.armed {
		return false
	}
	d.step++
	if d.step&deadlineMask != 0 {
		return false
	}

	return time.Now().After(d.at)
}

// ExceededNow consults the clock unconditionally. Used at recursion entry
// points where a stale answer would let deep subtrees run long past budget.
//
// Complexity: O(1).
func (d *Deadline) ExceededNow() bool {
	if !d.armed {
		return false
	}

	return time.Now().After(d.at)
}
