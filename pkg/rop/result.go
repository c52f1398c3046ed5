package rop

import "fmt"

type variant uint8

const (
	invalidVariant variant = iota
	okVariant
	errorVariant
)

// Unit is the null marker carried by outcome-only results.
type Unit = struct{}

// Result is the outcome of an operation: exactly one of Ok (carrying data)
// or Error (carrying a failure payload). The zero value is neither and is
// treated as malformed.
type Result[T, E any] struct {
	ok      T
	err     E
	variant variant
}

func Ok[T, E any](data T) Result[T, E] {
	return Result[T, E]{
		ok:      data,
		variant: okVariant,
	}
}

func Error[T, E any](message E) Result[T, E] {
	return Result[T, E]{
		err:     message,
		variant: errorVariant,
	}
}

// IsOk reports whether r is the Ok variant.
func IsOk[T, E any](r Result[T, E]) bool {
	return r.IsOk()
}

// IsError reports whether r is the Error variant.
func IsError[T, E any](r Result[T, E]) bool {
	return r.IsError()
}

// IsResult reports whether v is a Result of any payload types holding one
// of the two variants.
func IsResult(v any) bool {
	r, ok := v.(Variant)
	if !ok || IsNil(v) {
		return false
	}
	return r.IsOk() || r.IsError()
}

func (r Result[T, E]) IsOk() bool {
	return r.variant == okVariant
}

func (r Result[T, E]) IsError() bool {
	return r.variant == errorVariant
}

// Value returns the Ok payload, or the zero T for any other variant.
func (r Result[T, E]) Value() T {
	return r.ok
}

// Failure returns the Error payload, or the zero E for any other variant.
func (r Result[T, E]) Failure() E {
	return r.err
}

func (r Result[T, E]) Unpack() (T, E, bool) {
	return r.ok, r.err, r.variant == okVariant
}

func (r Result[T, E]) String() string {
	switch r.variant {
	case okVariant:
		return fmt.Sprintf("{ok: %v}", r.ok)
	case errorVariant:
		return fmt.Sprintf("{error: %v}", r.err)
	default:
		return "{invalid result}"
	}
}

// payloads exposes the variant payloads without their static types.
func (r Result[T, E]) payloads() (any, any) {
	return r.ok, r.err
}
