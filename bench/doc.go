// Package bench times solver runs and exports comparable records.
//
// The solver core is purely cooperative about deadlines: each engine
// checks elapsed wall-clock time at loop/recursion boundaries and returns
// a TimedOut result on its own. This package supplies the external
// watchdog the core deliberately does not contain: Runner executes each
// Solve call on a worker goroutine and, should the solver overrun its
// cooperative budget by more than a grace margin, abandons the worker (it
// is never forcibly killed - it simply finishes into a buffered channel
// nobody reads) and synthesizes a timed-out record.
//
// No shared mutable state exists between concurrent runs; every Solve call
// owns its search state exclusively, so a Runner may be used from multiple
// goroutines.
//
// WriteCSV serializes results with a stable header so spreadsheet and
// plotting consumers can key off column names directly.
package bench
