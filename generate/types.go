// Package generate - parameter structs, metadata keys, sentinels.
package generate

import "errors"

var (
	// ErrBadVariableCount is returned when a 3-SAT request has fewer than
	// 3 variables.
	ErrBadVariableCount = errors.New("generate: 3-SAT needs at least 3 variables")

	// ErrBadClauseCount is returned for a non-positive clause count.
	ErrBadClauseCount = errors.New("generate: clause count must be positive")

	// ErrBadClauseWidth is returned when k is not in [1..variables].
	ErrBadClauseWidth = errors.New("generate: clause width out of range")

	// ErrBadSetSize is returned for a non-positive Subset Sum set size.
	ErrBadSetSize = errors.New("generate: set size must be positive")

	// ErrBadMaxValue is returned for a negative value bound.
	ErrBadMaxValue = errors.New("generate: max value must be positive")

	// ErrBadCityCount is returned when a TSP request has fewer than 2 cities.
	ErrBadCityCount = errors.New("generate: at least 2 cities required")

	// ErrBadDistanceBound is returned for a non-positive distance bound.
	ErrBadDistanceBound = errors.New("generate: distance bound must be positive")
)

// Metadata keys under which generators plant ground truth.
const (
	// MetaAssignment - sat.Assignment satisfying the planted 3-SAT formula.
	MetaAssignment = "assignment"

	// MetaSubset - []int witness indices for the planted Subset Sum target.
	MetaSubset = "subset"

	// MetaPoints - [][2]float64 city coordinates of a Euclidean TSP
	// instance.
	MetaPoints = "points"
)

// ThreeSATParams mirrors the parameter map of ThreeSAT and RandomCNF
// instances; decode with solver.DecodeParams.
type ThreeSATParams struct {
	Variables int   `mapstructure:"variables"`
	Clauses   int   `mapstructure:"clauses"`
	Width     int   `mapstructure:"width"`
	Seed      int64 `mapstructure:"seed"`
}

// SubsetSumParams mirrors the parameter map of SubsetSum instances.
type SubsetSumParams struct {
	Size     int   `mapstructure:"size"`
	MaxValue int   `mapstructure:"max_value"`
	Seed     int64 `mapstructure:"seed"`
}

// TSPParams mirrors the parameter map of TSP instances.
type TSPParams struct {
	Cities      int     `mapstructure:"cities"`
	MaxDistance float64 `mapstructure:"max_distance"`
	Seed        int64   `mapstructure:"seed"`
}
