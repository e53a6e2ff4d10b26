// Package either provides Either[L, R], an immutable two-variant union:
// a Left holding an L, conventionally the error-like branch, or a Right
// holding an R, the success-like branch.
//
// Key operations:
// - Left/Right: construct a variant; the variant never changes afterwards
// - IsLeft/IsRight/Unpack: inspect the variant
// - IfLeft/IfRight/ForEach: side effects picked by variant
// - FilterOrElse/Exists: predicate checks on the Right payload
// - Map: fold a Right payload onto the Left side; identity on Left
// - FlatMap: chain a Right through a mapper producing another Either
// - Fold: collapse both variants into a single value
// - JoinLeft/JoinRight: combine two Eithers by variant
// - ToOpt: convert a Right to a present Option, a Left to the empty one
//
// The transforming combinators are defined from the Right perspective and
// act as identity or pass-through on a Left, mirroring a result-or-error
// union where only the success side is transformed by default.
package either
