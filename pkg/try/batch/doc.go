// Package batch runs a collection of operations concurrently under one of
// two failure policies.
//
// - All: fail-fast; the first failure cancels the siblings' context and
//   becomes the failure result, returned once every operation goroutine
//   has settled
// - AllSafe: fail-soft; waits for every operation to settle and aggregates
//   successes and failures into a Partial, in original input order
//
// AllSafe returns a top-level failure only when zero operations succeeded;
// a single success among many failures is still a success carrying the
// mixed aggregate, and callers must branch on the Partial.
//
// Concurrency is unbounded by default; WithLimit bounds the number of
// operations in flight.
package batch
