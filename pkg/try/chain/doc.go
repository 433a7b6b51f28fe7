// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of try.Result[T] values.
//
// - From/FromResult: create a Chain
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map: transform the successful value
// - Ensure: trigger side effects without changing the result
// - Finally: reduce to a concrete value via handlers
//
// A failure short-circuits every subsequent step and is carried through to
// Finally unchanged.
package chain
