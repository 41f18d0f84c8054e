// Package bridge converts between the two asynchronous calling
// conventions: continuation-style operations (trailing await.Callback)
// and deferred-result operations (future.Future).
//
// Two primitives cover every direction:
// - Wrap/Promisify: continuation-style call -> Future
// - Forward/ForwardCtx: Future -> continuation
//
// Guard covers the one hazardous mixed case: a Future-producing closure
// handed to an API that expects a plain continuation and discards the
// closure's return value. Guard funnels every failure path of the body
// into the continuation's error channel before the Future is dropped.
package bridge
