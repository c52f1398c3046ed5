// Package core contains the asynchronous plumbing shared by the other
// packages: the Deferred value, channel interop, worker options carried in
// a context, and the locomotive that drives a value through ordered stages.
// It does not define any Result combinators itself.
package core
