package solo

import (
	"github.com/ib-77/ropasync/pkg/rop"
)

func MapOk[E, T, U any](onOk func(data T) U) func(input rop.Result[T, E]) rop.Result[U, E] {
	return func(input rop.Result[T, E]) rop.Result[U, E] {
		if input.IsOk() {
			return rop.Ok[U, E](onOk(input.Value()))
		}
		return retypeOk[T, E, U](input)
	}
}

func MapError[T, E, F any](onError func(message E) F) func(input rop.Result[T, E]) rop.Result[T, F] {
	return func(input rop.Result[T, E]) rop.Result[T, F] {
		if input.IsError() {
			return rop.Error[T, F](onError(input.Failure()))
		}
		return retypeError[T, E, F](input)
	}
}

func ChainOk[T, U, E any](onOk func(data T) rop.Result[U, E]) func(input rop.Result[T, E]) rop.Result[U, E] {
	return func(input rop.Result[T, E]) rop.Result[U, E] {
		if input.IsOk() {
			return onOk(input.Value())
		}
		return retypeOk[T, E, U](input)
	}
}

func ChainError[T, E, F any](onError func(message E) rop.Result[T, F]) func(input rop.Result[T, E]) rop.Result[T, F] {
	return func(input rop.Result[T, E]) rop.Result[T, F] {
		if input.IsError() {
			return onError(input.Failure())
		}
		return retypeError[T, E, F](input)
	}
}

func OkSideEffect[E, T any](sideEffect func(data T)) func(input rop.Result[T, E]) rop.Result[T, E] {
	return func(input rop.Result[T, E]) rop.Result[T, E] {
		if input.IsOk() {
			sideEffect(input.Value())
		}
		return input
	}
}

func ErrorSideEffect[T, E any](sideEffect func(message E)) func(input rop.Result[T, E]) rop.Result[T, E] {
	return func(input rop.Result[T, E]) rop.Result[T, E] {
		if input.IsError() {
			sideEffect(input.Failure())
		}
		return input
	}
}

// ReplaceOk swaps the Ok payload for data. Useful when only the fact that
// the previous step succeeded matters.
func ReplaceOk[T, E, U any](data U) func(input rop.Result[T, E]) rop.Result[U, E] {
	return func(input rop.Result[T, E]) rop.Result[U, E] {
		if input.IsOk() {
			return rop.Ok[U, E](data)
		}
		return retypeOk[T, E, U](input)
	}
}

func ReplaceError[T, E, F any](message F) func(input rop.Result[T, E]) rop.Result[T, F] {
	return func(input rop.Result[T, E]) rop.Result[T, F] {
		if input.IsError() {
			return rop.Error[T, F](message)
		}
		return retypeError[T, E, F](input)
	}
}

// ResultToBoolean is true for Ok and false otherwise.
func ResultToBoolean[T, E any](input rop.Result[T, E]) bool {
	return input.IsOk()
}

// retypeOk carries a non-Ok input into a Result with a different Ok type.
// The Error payload is kept; a malformed input stays malformed.
func retypeOk[T, E, U any](input rop.Result[T, E]) rop.Result[U, E] {
	if input.IsError() {
		return rop.Error[U, E](input.Failure())
	}
	return rop.Result[U, E]{}
}

func retypeError[T, E, F any](input rop.Result[T, E]) rop.Result[T, F] {
	if input.IsOk() {
		return rop.Ok[T, F](input.Value())
	}
	return rop.Result[T, F]{}
}
