// Package index implements a small SQLite-backed text index whose
// operations return futures. It is the deferred-result counterpart to
// the continuation-style operations in pkg/fsio: Add accepts text and
// eventually produces the stored entry or a failure.
//
// A single worker goroutine serializes all database access; callers
// never block on the store, they observe the returned future.
package index
