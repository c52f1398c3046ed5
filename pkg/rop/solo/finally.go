package solo

import (
	"github.com/ib-77/ropasync/pkg/rop"
)

// Either runs onOk or onError depending on the variant and returns what it
// returns. A malformed input panics with *rop.InvalidResultError.
func Either[T, E, Out any](input rop.Result[T, E],
	onOk func(data T) Out,
	onError func(message E) Out) Out {

	if input.IsOk() {
		return onOk(input.Value())
	}
	if input.IsError() {
		return onError(input.Failure())
	}
	panic(&rop.InvalidResultError{Value: input})
}

// Match is the curried Either.
func Match[T, E, Out any](onOk func(data T) Out, onError func(message E) Out) func(input rop.Result[T, E]) Out {
	return func(input rop.Result[T, E]) Out {
		return Either(input, onOk, onError)
	}
}

// UnwrapOk returns the Ok payload. For an Error it returns an
// *rop.UnwrapError whose message is the Error payload.
func UnwrapOk[T, E any](input rop.Result[T, E]) (T, error) {
	if input.IsOk() {
		return input.Value(), nil
	}
	var zero T
	if input.IsError() {
		return zero, &rop.UnwrapError{Payload: input.Failure()}
	}
	return zero, &rop.InvalidResultError{Value: input}
}

// UnwrapError returns the Error payload. For an Ok it returns an
// *rop.UnwrapError whose message is the Ok payload.
func UnwrapError[T, E any](input rop.Result[T, E]) (E, error) {
	if input.IsError() {
		return input.Failure(), nil
	}
	var zero E
	if input.IsOk() {
		return zero, &rop.UnwrapError{Payload: input.Value()}
	}
	return zero, &rop.InvalidResultError{Value: input}
}

func MustOk[T, E any](input rop.Result[T, E]) T {
	data, err := UnwrapOk(input)
	if err != nil {
		panic(err)
	}
	return data
}

func MustError[T, E any](input rop.Result[T, E]) E {
	message, err := UnwrapError(input)
	if err != nil {
		panic(err)
	}
	return message
}

// MapOkAuto is MapOk for handlers that return either a plain U, which is
// wrapped in Ok, or a complete rop.Result[U, E], which is returned as is.
// The check happens once per call on the handler's dynamic return type.
//
// When U is itself a Result type, a returned U is always treated as a
// plain payload; the two readings cannot be told apart.
func MapOkAuto[U, E, T any](onOk func(data T) any) func(input rop.Result[T, E]) rop.Result[U, E] {
	return func(input rop.Result[T, E]) rop.Result[U, E] {
		if !input.IsOk() {
			return retypeOk[T, E, U](input)
		}

		switch out := onOk(input.Value()).(type) {
		case rop.Result[U, E]:
			return out
		case U:
			return rop.Ok[U, E](out)
		default:
			var zero U
			if out == nil && rop.IsNil(any(zero)) {
				return rop.Ok[U, E](zero)
			}
			panic(&rop.InvalidResultError{Value: out})
		}
	}
}
