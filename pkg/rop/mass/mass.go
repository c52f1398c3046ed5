package mass

import (
	"context"

	"github.com/ib-77/ropasync/pkg/rop"
	"github.com/ib-77/ropasync/pkg/rop/core"
)

// ToResult awaits input and reports its outcome as a Result: Ok with the
// resolved value or Error with the rejection reason. The returned Deferred
// never rejects.
func ToResult[T any](ctx context.Context, input *core.Deferred[T]) *core.Deferred[rop.Result[T, error]] {
	return core.Go(ctx, func(ctx context.Context) (rop.Result[T, error], error) {
		if input == nil {
			return rop.Error[T, error](core.ErrNilDeferred), nil
		}

		v, err := input.Await(ctx)
		if err != nil {
			return rop.Error[T, error](err), nil
		}
		return rop.Ok[T, error](v), nil
	})
}

// Applying waits for input and applies a synchronous combinator to it.
func Applying[In, Out any](ctx context.Context, input *core.Deferred[In],
	combinator func(in In) Out) *core.Deferred[Out] {

	return core.Go(ctx, func(ctx context.Context) (Out, error) {
		in, err := await(ctx, input)
		if err != nil {
			var zero Out
			return zero, err
		}
		return combinator(in), nil
	})
}

func ChainingOk[T, U, E any](ctx context.Context, input *core.Deferred[rop.Result[T, E]],
	onOk func(ctx context.Context, data T) *core.Deferred[rop.Result[U, E]]) *core.Deferred[rop.Result[U, E]] {

	return core.Go(ctx, func(ctx context.Context) (rop.Result[U, E], error) {
		in, err := await(ctx, input)
		if err != nil {
			return rop.Result[U, E]{}, err
		}

		if !in.IsOk() {
			if in.IsError() {
				return rop.Error[U, E](in.Failure()), nil
			}
			return rop.Result[U, E]{}, nil
		}

		return await(ctx, onOk(ctx, in.Value()))
	})
}

func ChainingError[T, E, F any](ctx context.Context, input *core.Deferred[rop.Result[T, E]],
	onError func(ctx context.Context, message E) *core.Deferred[rop.Result[T, F]]) *core.Deferred[rop.Result[T, F]] {

	return core.Go(ctx, func(ctx context.Context) (rop.Result[T, F], error) {
		in, err := await(ctx, input)
		if err != nil {
			return rop.Result[T, F]{}, err
		}

		if !in.IsError() {
			if in.IsOk() {
				return rop.Ok[T, F](in.Value()), nil
			}
			return rop.Result[T, F]{}, nil
		}

		return await(ctx, onError(ctx, in.Failure()))
	})
}

// TeeingOk runs sideEffect on the Ok payload and settles with the input
// only after sideEffect has returned. An error from sideEffect rejects.
func TeeingOk[T, E any](ctx context.Context, input *core.Deferred[rop.Result[T, E]],
	sideEffect func(ctx context.Context, data T) error) *core.Deferred[rop.Result[T, E]] {

	return core.Go(ctx, func(ctx context.Context) (rop.Result[T, E], error) {
		in, err := await(ctx, input)
		if err != nil {
			return in, err
		}

		if in.IsOk() {
			if err = sideEffect(ctx, in.Value()); err != nil {
				return in, err
			}
		}
		return in, nil
	})
}

// TeeingError is TeeingOk for the Error payload.
func TeeingError[T, E any](ctx context.Context, input *core.Deferred[rop.Result[T, E]],
	sideEffect func(ctx context.Context, message E) error) *core.Deferred[rop.Result[T, E]] {

	return core.Go(ctx, func(ctx context.Context) (rop.Result[T, E], error) {
		in, err := await(ctx, input)
		if err != nil {
			return in, err
		}

		if in.IsError() {
			if err = sideEffect(ctx, in.Failure()); err != nil {
				return in, err
			}
		}
		return in, nil
	})
}

func await[T any](ctx context.Context, d *core.Deferred[T]) (T, error) {
	if d == nil {
		var zero T
		return zero, core.ErrNilDeferred
	}
	return d.Await(ctx)
}
