// Package await holds the core vocabulary for bridging the two calling
// conventions of asynchronous code: continuations (Callback[T]) and
// deferred results (Outcome[T], produced by the future subpackage).
//
// Highlights:
// - Outcome: immutable success/failure/cancel value with identity and timestamp
// - Callback: the continuation type, with Complete and Once helpers
// - Switch/Map/Try: move between outcome types without manual branching
// - Tee/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error/cancel handlers
//
// Subpackages build on this vocabulary: future implements deferred
// results, bridge implements the two adapters between the conventions.
package await
