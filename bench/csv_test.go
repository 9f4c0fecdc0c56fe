// Package bench_test - the CSV column contract.
package bench_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nplab/bench"
	"github.com/katalvlaran/nplab/sat"
	"github.com/katalvlaran/nplab/solver"
)

// TestWriteCSV_HeaderContract pins the exact header downstream consumers
// key off.
func TestWriteCSV_HeaderContract(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bench.WriteCSV(&buf, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, []string{
		"name", "algorithm", "kind", "size", "solved", "timed_out", "abandoned", "elapsed_ms",
		"assignments_tried", "unit_propagations", "pure_eliminations",
		"subsets_tried", "dp_cells",
		"tours_evaluated", "distance_calculations", "improvement_iterations",
	}, rows[0])
}

// TestWriteCSV_Rows writes real benchmark records and checks row shape and
// a handful of cell values.
func TestWriteCSV_Rows(t *testing.T) {
	inst := sat.Wrap(sat.CNF{Variables: 3, Clauses: []sat.Clause{{1, 2}, {-1, 3}}})
	recs, err := bench.NewRunner().Compare(context.Background(), []bench.Config{
		{Name: "brute", Solver: sat.BruteForce{}, Timeout: time.Second},
		{Name: "dpll", Solver: sat.DPLL{}, Timeout: time.Second},
	}, inst)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, bench.WriteCSV(&buf, recs))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one row per record")

	header := rows[0]
	for _, row := range rows[1:] {
		assert.Len(t, row, len(header), "every row matches the header width")
	}

	brute := rows[1]
	assert.Equal(t, "brute", brute[0])
	assert.Equal(t, "Brute Force SAT", brute[1])
	assert.Equal(t, "SAT", brute[2])
	assert.Equal(t, "3", brute[3])
	assert.Equal(t, "true", brute[4], "the scenario formula is satisfiable")
	assert.Equal(t, "false", brute[5])
	assert.Equal(t, "false", brute[6])
	assert.NotEqual(t, "0", brute[8], "assignments_tried must be recorded")
}

// TestWriteCSV_UnknownCountersDropped: counters outside the fixed column
// set must not shift the header.
func TestWriteCSV_UnknownCountersDropped(t *testing.T) {
	rec := bench.BenchmarkResult{
		Name: "custom",
		Kind: solver.SAT,
		Result: solver.Result{
			Algorithm: "Custom",
			Counters:  map[string]int64{"exotic_counter": 42, solver.CounterAssignmentsTried: 7},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, bench.WriteCSV(&buf, []bench.BenchmarkResult{rec}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Len(t, rows[1], len(rows[0]))
	assert.Equal(t, "7", rows[1][8])
	assert.NotContains(t, rows[0], "exotic_counter")
}
