// Package mass implements the asynchronous combinators over deferred
// Results. Each function takes the input as a *core.Deferred, waits for it
// in its own goroutine and returns a new Deferred for the outcome.
//
// A rejected input rejects the output unchanged; rejections are turned into
// Error Results only at ToResult and at the collection boundaries. Package
// lite wraps these functions as curried pipe steps.
package mass
