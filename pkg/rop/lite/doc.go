// Package lite provides the curried asynchronous combinators. Each builder
// takes its handler once and returns a step of the form
// func(ctx, rop.Result) *core.Deferred[rop.Result], ready to be used in a
// pipe. The work itself is done by package mass.
//
// Common usage:
// - ChainOkAsync/ChainErrorAsync: continue with a deferred Result on one variant
// - OkSideEffectAsync/ErrorSideEffectAsync: wait for a side effect, keep the input
// - Lift: run any solo combinator over a deferred input
// - Resultify0/Resultify/Resultify2: make deferred-returning functions Result-safe
package lite
