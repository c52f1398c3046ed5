// Package collect aggregates ordered sequences of Results, or of deferred
// Results. Whenever several failures are present the first one in input
// order is reported; failures are never merged.
package collect
