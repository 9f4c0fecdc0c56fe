// Package tsp - nearest-neighbor heuristic with optional 2-opt refinement.
package tsp

import (
	"math"
	"time"

	"github.com/katalvlaran/nplab/solver"
)

// defaultEps is the acceptance tolerance for 2-opt improvements: a move is
// applied only when Δ < −eps, keeping FP noise from cycling the search.
const defaultEps = 1e-10

// NearestNeighbor is the greedy TSP heuristic. Construct with
// NewNearestNeighbor and configure via functional options.
//
// By default the greedy construction runs from every start city and keeps
// the best tour; WithStart pins a single start.
type NearestNeighbor struct {
	start     int
	allStarts bool
	twoOpt    bool
	eps       float64
	maxIters  int
}

// NNOption configures a NearestNeighbor solver.
type NNOption func(*NearestNeighbor)

// WithStart pins the greedy construction to one start city.
func WithStart(city int) NNOption {
	return func(nn *NearestNeighbor) {
		nn.start = city
		nn.allStarts = false
	}
}

// WithAllStarts restores the default policy: try every start city, keep
// the cheapest resulting tour.
func WithAllStarts() NNOption {
	return func(nn *NearestNeighbor) { nn.allStarts = true }
}

// WithTwoOpt enables 2-opt local-search refinement of the greedy tour.
// Requires a symmetric matrix (segment reversal preserves cost only then).
func WithTwoOpt() NNOption {
	return func(nn *NearestNeighbor) { nn.twoOpt = true }
}

// WithTwoOptEps sets the improvement acceptance tolerance (Δ < −eps).
func WithTwoOptEps(eps float64) NNOption {
	return func(nn *NearestNeighbor) { nn.eps = eps }
}

// WithTwoOptMaxIters caps accepted 2-opt moves; 0 means "until local
// optimum".
func WithTwoOptMaxIters(n int) NNOption {
	return func(nn *NearestNeighbor) { nn.maxIters = n }
}

// NewNearestNeighbor builds a heuristic solver with the given options.
func NewNearestNeighbor(opts ...NNOption) NearestNeighbor {
	nn := NearestNeighbor{allStarts: true, eps: defaultEps}
	for _, opt := range opts {
		opt(&nn)
	}

	return nn
}

// AlgorithmName implements solver.Solver.
func (nn NearestNeighbor) AlgorithmName() string {
	if nn.twoOpt {
		return "Nearest Neighbor + 2-Opt TSP"
	}

	return "Nearest Neighbor TSP"
}

// ComplexityClass implements solver.Solver.
func (nn NearestNeighbor) ComplexityClass() string {
	if nn.twoOpt {
		return "Polynomial heuristic: O(n²) + O(iter·n²) local search"
	}

	return "Polynomial heuristic: O(n²) per start"
}

// Solve implements solver.Solver.
//
// The heuristic always returns a valid closed tour; its cost is never
// below the true optimum (tested against BruteForce). When the time budget
// expires mid-search the current valid tour is returned with
// TimedOut=true - an abandoned refinement, not an invalid result.
//
// Counters: "distance_calculations" for every matrix read in the greedy
// scan, "improvement_iterations" for accepted 2-opt moves.
//
// Complexity: O(n²) per start; 2-opt adds O(iter·n²).
func (nn NearestNeighbor) Solve(pi solver.ProblemInstance, opts solver.Options) (solver.Result, error) {
	if err := opts.Validate(); err != nil {
		return solver.Result{}, err
	}
	inst, err := unwrap(pi)
	if err != nil {
		return solver.Result{}, err
	}
	n, err := validateDist(inst.Dist, nn.twoOpt)
	if err != nil {
		return solver.Result{}, err
	}
	if !nn.allStarts {
		if err = validateStart(n, nn.start); err != nil {
			return solver.Result{}, err
		}
	}

	var (
		began    = time.Now()
		deadline = solver.NewDeadline(opts.TimeLimit)
		calcs    int64
		iters    int64
		timedOut bool

		best     []int
		bestCost = math.Inf(1)
	)

	starts := []int{nn.start}
	if nn.allStarts {
		starts = starts[:0]
		for c := 0; c < n; c++ {
			starts = append(starts, c)
		}
	}

	var (
		tour []int
		cost float64
	)
	for _, s := range starts {
		tour, cost = greedyTour(inst.Dist, s, &calcs)
		if cost < bestCost {
			bestCost = cost
			best = tour
		}
		if deadline.Exceeded() {
			timedOut = true

			break
		}
	}

	if nn.twoOpt && !timedOut && n >= 4 {
		best, bestCost, iters, timedOut = twoOptImprove(inst.Dist, best, nn.eps, nn.maxIters, deadline)
	}

	if err = ValidateTour(best, n, best[0]); err != nil {
		return solver.Result{}, err
	}

	return solver.Result{
		Algorithm: nn.AlgorithmName(),
		Solved:    true,
		Witness:   TSResult{Tour: best, Cost: round1e9(bestCost)},
		Counters: map[string]int64{
			solver.CounterDistanceCalculations:  calcs,
			solver.CounterImprovementIterations: iters,
		},
		Elapsed:  time.Since(began),
		TimedOut: timedOut,
	}, nil
}

// greedyTour builds a closed tour from start by always moving to the
// nearest unvisited city (ties broken by the smallest index, so the result
// is deterministic). Every matrix read is counted.
//
// Complexity: O(n²) time, O(n) space.
func greedyTour(dist [][]float64, start int, calcs *int64) ([]int, float64) {
	n := len(dist)
	var (
		tour    = make([]int, 0, n+1)
		visited = make([]bool, n)
		cur     = start
		total   float64
	)
	tour = append(tour, start)
	visited[start] = true

	var (
		step, city int
		next       int
		nearest    float64
		d          float64
	)
	for step = 1; step < n; step++ {
		next = -1
		nearest = math.Inf(1)
		for city = 0; city < n; city++ {
			if visited[city] {
				continue
			}
			d = dist[cur][city]
			*calcs++
			if d < nearest {
				nearest = d
				next = city
			}
		}
		tour = append(tour, next)
		visited[next] = true
		total += nearest
		cur = next
	}

	// Closing edge back to the start.
	total += dist[cur][start]
	*calcs++
	tour = append(tour, start)

	return tour, round1e9(total)
}
