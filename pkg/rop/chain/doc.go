// Package chain provides a fluent wrapper around Result[T, E]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// Methods cannot take their own type parameters, so steps that change the
// Ok or Error type are free functions taking the chain first.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T, E] or value
// - Then: switch to a new Result[U, E] via a function
// - ThenTry: call a function (U, error) and keep the error as the payload
// - Map: transform the Ok value (T -> U)
// - Rescue: recover from an Error
// - Ensure: run side effects on Ok without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
