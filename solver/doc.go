// Package solver defines the shared contract between problem instances,
// the algorithms that consume them, and the callers that compare algorithms.
//
// 🚀 What lives here?
//
//	A small, dependency-light core shared by every engine:
//	  • Kind        — tagged problem family (SAT / SubsetSum / TSP)
//	  • Payload     — sealed sum type carried by a ProblemInstance
//	  • Result      — uniform outcome record with work counters
//	  • Solver      — the three-operation contract every variant satisfies
//	  • Options     — explicit per-call run configuration (time budget)
//
// ✨ Design rules:
//   - Instances are immutable once produced; a Solve call owns its own
//     search state exclusively — no shared mutation, no globals.
//   - A timeout is not an error: it is a first-class result state
//     (Result.TimedOut), distinct from a proven-absent solution.
//   - Handing the wrong payload kind to an engine is a contract violation
//     and fails immediately with ErrPayloadMismatch; it is never retried.
//   - Counters reflect work actually performed, never estimates, so
//     brute-force and optimized variants can be compared honestly.
//
// Engines implementing the contract live in sat/, subsetsum/ and tsp/;
// seeded instance construction lives in generate/; timing and comparison
// live in bench/.
package solver
