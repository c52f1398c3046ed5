// Package solo contains the synchronous combinators over rop.Result. Every
// combinator is a builder: configure it once with a function or value and
// get back a unary func(Result) Result that can be reused and dropped into
// a pipe.
//
// Highlights:
// - MapOk/MapError: transform one side's payload, re-wrapped in the same variant
// - ChainOk/ChainError: hand the payload to a function that picks the variant
// - OkSideEffect/ErrorSideEffect: run side effects, return the input untouched
// - ReplaceOk/ReplaceError: swap the payload for a fixed value
// - UnwrapOk/UnwrapError, MustOk/MustError: leave the Result world
// - Either/Match: fold both variants into one value
// - MapOkAuto: MapOk for handlers that may return either a payload or a Result
//
// Type parameters that cannot be inferred from the handler come first, so
// solo.MapOk[string](strconv.Itoa) names only the error payload type.
package solo
