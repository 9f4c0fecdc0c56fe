// Package bench - CSV export with a stable column contract.
package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/samber/lo"

	"github.com/katalvlaran/nplab/solver"
)

// counterColumns fixes the order of counter columns; unknown counters are
// dropped rather than shifting the header.
var counterColumns = []string{
	solver.CounterAssignmentsTried,
	solver.CounterUnitPropagations,
	solver.CounterPureEliminations,
	solver.CounterSubsetsTried,
	solver.CounterDPCells,
	solver.CounterToursEvaluated,
	solver.CounterDistanceCalculations,
	solver.CounterImprovementIterations,
}

// WriteCSV serializes records with the stable header
//
//	name,algorithm,kind,size,solved,timed_out,abandoned,elapsed_ms,<counters...>
//
// Downstream consumers key off these column names directly; keep them
// stable.
func WriteCSV(w io.Writer, results []BenchmarkResult) error {
	cw := csv.NewWriter(w)

	header := append(
		[]string{"name", "algorithm", "kind", "size", "solved", "timed_out", "abandoned", "elapsed_ms"},
		counterColumns...,
	)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("bench: writing csv header: %w", err)
	}

	for _, rec := range results {
		row := []string{
			rec.Name,
			rec.Result.Algorithm,
			rec.Kind.String(),
			strconv.Itoa(rec.Size),
			strconv.FormatBool(rec.Result.Solved),
			strconv.FormatBool(rec.Result.TimedOut),
			strconv.FormatBool(rec.Abandoned),
			strconv.FormatFloat(float64(rec.Result.Elapsed.Microseconds())/1e3, 'f', 3, 64),
		}
		row = append(row, lo.Map(counterColumns, func(key string, _ int) string {
			return strconv.FormatInt(rec.Result.Counters[key], 10)
		})...)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("bench: writing csv row: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}
