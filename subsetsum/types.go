// Package subsetsum - instance model, witness verification, sentinels.
package subsetsum

import (
	"errors"
	"sort"

	"github.com/katalvlaran/nplab/solver"
)

var (
	// ErrDPRangeUnsupported is returned when the DP solver receives inputs
	// outside the canonical table range (a negative target or negative
	// numbers). Use BruteForce for such instances.
	ErrDPRangeUnsupported = errors.New("subsetsum: DP requires non-negative numbers and target")

	// ErrDPTableTooLarge is returned when n·target exceeds MaxDPTableCells.
	ErrDPTableTooLarge = errors.New("subsetsum: DP table exceeds cell budget")

	// ErrInfeasibleTarget is returned for instances infeasible by
	// construction: a negative target with only non-negative numbers.
	ErrInfeasibleTarget = errors.New("subsetsum: target unreachable by construction")

	// ErrBadWitness is returned when witness indices are out of range or
	// repeated.
	ErrBadWitness = errors.New("subsetsum: invalid witness indices")
)

// MaxDPTableCells bounds the reachability table; instances beyond it are
// rejected instead of exhausting memory on a teaching workload.
const MaxDPTableCells = 1 << 26

// Instance is the Subset Sum payload: numbers (duplicates allowed,
// negatives allowed for brute force) and the target sum.
type Instance struct {
	Numbers []int
	Target  int
}

// Kind implements solver.Payload.
func (Instance) Kind() solver.Kind { return solver.SubsetSum }

// Verify checks an index-based witness: indices must be in range and
// distinct, and the selected numbers must sum exactly to the target.
//
// Complexity: O(len(witness)).
func Verify(inst Instance, witness []int) (bool, error) {
	seen := make(map[int]struct{}, len(witness))
	sum := 0
	for _, idx := range witness {
		if idx < 0 || idx >= len(inst.Numbers) {
			return false, ErrBadWitness
		}
		if _, dup := seen[idx]; dup {
			return false, ErrBadWitness
		}
		seen[idx] = struct{}{}
		sum += inst.Numbers[idx]
	}

	return sum == inst.Target, nil
}

// Wrap packages an Instance into a solver.ProblemInstance for callers that
// do not go through package generate.
func Wrap(inst Instance) solver.ProblemInstance {
	return solver.ProblemInstance{
		Kind:    solver.SubsetSum,
		Size:    len(inst.Numbers),
		Payload: inst,
	}
}

// unwrap performs the boundary tag check shared by both solvers.
func unwrap(pi solver.ProblemInstance) (Instance, error) {
	if pi.Payload == nil {
		return Instance{}, solver.ErrNilPayload
	}
	inst, ok := pi.Payload.(Instance)
	if !ok {
		return Instance{}, solver.ErrPayloadMismatch
	}

	return inst, nil
}

// sortedWitness returns witness indices in ascending order; solvers return
// canonical witnesses so repeated runs compare equal.
func sortedWitness(idx []int) []int {
	out := append([]int(nil), idx...)
	sort.Ints(out)

	return out
}
