// Package solo executes a single wrapped operation and returns a typed
// Result instead of letting failures propagate.
//
// - RunSync/RunSyncSelect: one synchronous attempt, no retry
// - Run/RunSelect: sequential attempt loop with fixed-count, fixed-delay retry
//
// Both paths convert panics and returned errors into failure results,
// report failures to the configured logger and error callback, and run the
// OnFinally hook exactly once on every exit path. Panics raised by
// caller-supplied callbacks (select transform, OnError, OnFinally) are
// never recovered.
package solo
