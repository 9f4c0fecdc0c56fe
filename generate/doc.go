// Package generate produces seeded random problem instances for the three
// engines, planting known witnesses into instance metadata so tests and
// benchmarks can verify solver output against ground truth.
//
// ✨ Properties shared by every generator:
//   - Determinism — all randomness flows from an explicit Seed; the same
//     parameters and seed reproduce the same instance bit for bit.
//   - Parameter validation happens HERE, not in the engines: the solver
//     core only checks structural payload validity.
//   - Each instance carries its generation parameters as a map that
//     round-trips through solver.DecodeParams into the typed parameter
//     structs below.
//
// Planted witnesses:
//   - ThreeSAT forces every clause to contain at least one literal true
//     under a pre-drawn assignment, stored under MetaAssignment.
//   - SubsetSum derives the target from a random non-empty subset, stored
//     under MetaSubset (indices).
//   - RandomTSP / EuclideanTSP produce symmetric matrices; Euclidean ones
//     honor the triangle inequality by construction.
package generate
