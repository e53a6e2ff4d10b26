// Package opt provides Option[T], a container over a possibly absent value
// with a built-in tracker for the outcome of the last fallible call run
// against it.
//
// Common usage:
// - Of/OfNilable/OfFunc/Empty: construct Options
// - Filter/Map/FlatMap: presence-aware transformations
// - Apply/And/IfPresent/IfEmpty/IfPresentOrElse: side effects around the value
// - Try/TryMap: run an error-returning call, storing the outcome on the
//   Option instead of propagating the error
// - OnSuccess/OnSuccessTo: continue a pipeline only when the last Try
//   succeeded
// - OnFailure/OnFailureWrap/OnFailureErr: surface a stored failure at the
//   end of a pipeline
//
// Options are immutable values: every operation returns a new Option or the
// receiver itself, never a mutated one. The zero value is the empty Option.
// Type-changing operations live as package-level functions (Map, FlatMap,
// OnSuccessTo, TryMap, ...) because methods cannot introduce type
// parameters; same-type operations are methods for fluent chaining.
package opt
