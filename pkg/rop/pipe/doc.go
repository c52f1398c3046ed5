// Package pipe threads a value through a sequence of asynchronous steps.
//
// A Step takes a settled value and returns a deferred one. PipeAsync awaits
// the start value and then every step output before handing it to the next
// step, so steps never see a pending value. Steps run strictly one after the
// other; the first rejection stops the pipe. Domain failures are expected to
// travel as Error Results through Result-aware steps (see lite), so a pipe
// built from them only rejects on a genuine fault.
//
// Steps of different types are composed with Then or the fixed-arity
// Pipe2, Pipe3 and Pipe4 forms.
package pipe
