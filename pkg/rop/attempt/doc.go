// Package attempt runs actions that may fail or panic and reports the
// outcome as a Result. It is the usual entry point of a pipeline: the
// boundary where an error return from ordinary Go code becomes an Error
// variant the combinators can route.
package attempt
