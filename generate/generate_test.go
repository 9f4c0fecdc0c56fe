// Package generate_test - seeded generators: determinism, planted ground
// truth, structural guarantees, and the parameter-map round trip.
package generate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nplab/generate"
	"github.com/katalvlaran/nplab/sat"
	"github.com/katalvlaran/nplab/solver"
	"github.com/katalvlaran/nplab/subsetsum"
	"github.com/katalvlaran/nplab/tsp"
)

// TestThreeSAT_PlantedAssignmentSatisfies is the generator's core promise:
// the metadata assignment satisfies every clause of the emitted formula.
func TestThreeSAT_PlantedAssignmentSatisfies(t *testing.T) {
	for seed := int64(0); seed < 30; seed++ {
		pi, err := generate.ThreeSAT(8, 40, seed)
		require.NoError(t, err)

		f := pi.Payload.(sat.CNF)
		require.NoError(t, f.Validate())

		planted := pi.Metadata[generate.MetaAssignment].(sat.Assignment)
		good, err := sat.Verify(f, planted)
		require.NoError(t, err)
		assert.True(t, good, "seed %d: the planted assignment must satisfy the formula", seed)
	}
}

// TestThreeSAT_ClauseShape checks that every clause has exactly 3 literals
// over distinct variables.
func TestThreeSAT_ClauseShape(t *testing.T) {
	pi, err := generate.ThreeSAT(6, 25, 99)
	require.NoError(t, err)

	for _, clause := range pi.Payload.(sat.CNF).Clauses {
		require.Len(t, clause, 3)

		vars := map[int]struct{}{}
		for _, lit := range clause {
			v := lit
			if v < 0 {
				v = -v
			}
			vars[v] = struct{}{}
		}
		assert.Len(t, vars, 3, "clause variables must be distinct")
	}
}

// TestSubsetSum_PlantedSubsetVerifies checks the planted index witness
// against the emitted instance.
func TestSubsetSum_PlantedSubsetVerifies(t *testing.T) {
	for seed := int64(0); seed < 30; seed++ {
		pi, err := generate.SubsetSum(15, 0, seed)
		require.NoError(t, err)

		inst := pi.Payload.(subsetsum.Instance)
		planted := pi.Metadata[generate.MetaSubset].([]int)
		require.NotEmpty(t, planted, "the planted subset is never empty")

		good, err := subsetsum.Verify(inst, planted)
		require.NoError(t, err)
		assert.True(t, good, "seed %d: the planted subset must sum to the target", seed)
	}
}

// TestSubsetSumInfeasible_ParityHolds checks the even-numbers/odd-target
// construction.
func TestSubsetSumInfeasible_ParityHolds(t *testing.T) {
	pi, err := generate.SubsetSumInfeasible(10, 5)
	require.NoError(t, err)

	inst := pi.Payload.(subsetsum.Instance)
	assert.Equal(t, 1, inst.Target%2, "the target must be odd")
	for _, v := range inst.Numbers {
		require.Zero(t, v%2, "every number must be even")
	}
}

// TestDeterminism_SameSeedSameInstance verifies that equal seeds reproduce
// byte-identical instances across all generators.
func TestDeterminism_SameSeedSameInstance(t *testing.T) {
	a1, err := generate.ThreeSAT(7, 30, 42)
	require.NoError(t, err)
	a2, err := generate.ThreeSAT(7, 30, 42)
	require.NoError(t, err)
	assert.Equal(t, a1, a2)

	b1, err := generate.SubsetSum(12, 0, 42)
	require.NoError(t, err)
	b2, err := generate.SubsetSum(12, 0, 42)
	require.NoError(t, err)
	assert.Equal(t, b1, b2)

	c1, err := generate.EuclideanTSP(9, 100, 42)
	require.NoError(t, err)
	c2, err := generate.EuclideanTSP(9, 100, 42)
	require.NoError(t, err)
	assert.Equal(t, c1, c2)

	d1, err := generate.RandomCNF(7, 30, 3, 42)
	require.NoError(t, err)
	d2, err := generate.RandomCNF(7, 30, 3, 42)
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
}

// TestDeterminism_DifferentSeedsDiffer is the cheap sanity complement: two
// seeds should not collide on a non-trivial instance.
func TestDeterminism_DifferentSeedsDiffer(t *testing.T) {
	a, err := generate.RandomTSP(8, 100, 1)
	require.NoError(t, err)
	b, err := generate.RandomTSP(8, 100, 2)
	require.NoError(t, err)
	assert.NotEqual(t, a.Payload, b.Payload)
}

// TestRandomTSP_MatrixShape checks symmetry, zero diagonal, and the open
// distance interval.
func TestRandomTSP_MatrixShape(t *testing.T) {
	pi, err := generate.RandomTSP(10, 50, 7)
	require.NoError(t, err)

	dist := pi.Payload.(tsp.Instance).Dist
	for i := range dist {
		require.Zero(t, dist[i][i])
		for j := range dist[i] {
			if i == j {
				continue
			}
			assert.Equal(t, dist[i][j], dist[j][i], "matrix must be symmetric")
			assert.Greater(t, dist[i][j], 0.0, "distinct cities must never alias")
			assert.LessOrEqual(t, dist[i][j], 50.0)
		}
	}
}

// TestEuclideanTSP_DistancesMatchPoints recomputes every distance from the
// planted coordinates.
func TestEuclideanTSP_DistancesMatchPoints(t *testing.T) {
	pi, err := generate.EuclideanTSP(8, 100, 13)
	require.NoError(t, err)

	dist := pi.Payload.(tsp.Instance).Dist
	points := pi.Metadata[generate.MetaPoints].([][2]float64)
	require.Len(t, points, 8)

	for i := range points {
		for j := range points {
			want := math.Hypot(points[i][0]-points[j][0], points[i][1]-points[j][1])
			assert.InDelta(t, want, dist[i][j], 1e-12)
		}
	}
}

// TestParams_DecodeFromInstance round-trips each generator's parameter map
// through solver.DecodeParams into its typed mirror.
func TestParams_DecodeFromInstance(t *testing.T) {
	pi, err := generate.ThreeSAT(9, 36, 3)
	require.NoError(t, err)
	var sp generate.ThreeSATParams
	require.NoError(t, solver.DecodeParams(pi.Parameters, &sp))
	assert.Equal(t, generate.ThreeSATParams{Variables: 9, Clauses: 36, Width: 3, Seed: 3}, sp)

	pi, err = generate.SubsetSum(11, 40, 3)
	require.NoError(t, err)
	var ssp generate.SubsetSumParams
	require.NoError(t, solver.DecodeParams(pi.Parameters, &ssp))
	assert.Equal(t, generate.SubsetSumParams{Size: 11, MaxValue: 40, Seed: 3}, ssp)

	pi, err = generate.RandomTSP(5, 25, 3)
	require.NoError(t, err)
	var tp generate.TSPParams
	require.NoError(t, solver.DecodeParams(pi.Parameters, &tp))
	assert.Equal(t, generate.TSPParams{Cities: 5, MaxDistance: 25, Seed: 3}, tp)
}

// TestContracts_BadArguments walks each generator's argument sentinels.
func TestContracts_BadArguments(t *testing.T) {
	_, err := generate.ThreeSAT(2, 10, 1)
	assert.ErrorIs(t, err, generate.ErrBadVariableCount)

	_, err = generate.ThreeSAT(5, 0, 1)
	assert.ErrorIs(t, err, generate.ErrBadClauseCount)

	_, err = generate.RandomCNF(5, 10, 6, 1)
	assert.ErrorIs(t, err, generate.ErrBadClauseWidth)

	_, err = generate.SubsetSum(0, 0, 1)
	assert.ErrorIs(t, err, generate.ErrBadSetSize)

	_, err = generate.SubsetSum(5, -1, 1)
	assert.ErrorIs(t, err, generate.ErrBadMaxValue)

	_, err = generate.RandomTSP(1, 10, 1)
	assert.ErrorIs(t, err, generate.ErrBadCityCount)

	_, err = generate.EuclideanTSP(5, -1, 1)
	assert.ErrorIs(t, err, generate.ErrBadDistanceBound)
}
