// Package future implements deferred results: values that settle exactly
// once to a success or a failure, observable from any number of
// goroutines.
//
// Key operations:
// - New/Deferred/Resolved/Rejected: create futures
// - Await/OutcomeCtx: block for the settled outcome, honoring ctx
// - Then/ThenTry/Map: derive futures, short-circuiting on failure
// - Catch/Ensure: attach branch observers without changing the outcome
// - Settled: forward the outcome into a continuation
// - Discard: drop a future while keeping its failure path observed
//
// A settled failure with no observer is a hazard: nothing can ever react
// to the error. The package detects such leaks at collection time and
// reports them through the unobserved-failure handler (a zap logger by
// default; see SetLogger and SetUnobservedHandler).
package future
