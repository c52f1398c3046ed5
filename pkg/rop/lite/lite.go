package lite

import (
	"context"
	"runtime/debug"

	"github.com/ib-77/ropasync/pkg/rop"
	"github.com/ib-77/ropasync/pkg/rop/core"
	"github.com/ib-77/ropasync/pkg/rop/mass"
)

func ChainOkAsync[T, U, E any](onOk func(ctx context.Context, data T) *core.Deferred[rop.Result[U, E]]) func(ctx context.Context,
	input rop.Result[T, E]) *core.Deferred[rop.Result[U, E]] {
	return func(ctx context.Context, input rop.Result[T, E]) *core.Deferred[rop.Result[U, E]] {
		return mass.ChainingOk(ctx, core.Resolve(input), onOk)
	}
}

func ChainErrorAsync[T, E, F any](onError func(ctx context.Context, message E) *core.Deferred[rop.Result[T, F]]) func(ctx context.Context,
	input rop.Result[T, E]) *core.Deferred[rop.Result[T, F]] {
	return func(ctx context.Context, input rop.Result[T, E]) *core.Deferred[rop.Result[T, F]] {
		return mass.ChainingError(ctx, core.Resolve(input), onError)
	}
}

func OkSideEffectAsync[E, T any](sideEffect func(ctx context.Context, data T) error) func(ctx context.Context,
	input rop.Result[T, E]) *core.Deferred[rop.Result[T, E]] {
	return func(ctx context.Context, input rop.Result[T, E]) *core.Deferred[rop.Result[T, E]] {
		return mass.TeeingOk(ctx, core.Resolve(input), sideEffect)
	}
}

func ErrorSideEffectAsync[T, E any](sideEffect func(ctx context.Context, message E) error) func(ctx context.Context,
	input rop.Result[T, E]) *core.Deferred[rop.Result[T, E]] {
	return func(ctx context.Context, input rop.Result[T, E]) *core.Deferred[rop.Result[T, E]] {
		return mass.TeeingError(ctx, core.Resolve(input), sideEffect)
	}
}

// Lift turns any synchronous combinator into one that accepts and returns
// deferred values.
func Lift[In, Out any](combinator func(in In) Out) func(ctx context.Context,
	input *core.Deferred[In]) *core.Deferred[Out] {
	return func(ctx context.Context, input *core.Deferred[In]) *core.Deferred[Out] {
		return mass.Applying(ctx, input, combinator)
	}
}

// Resultify0 converts a function returning a deferred value into one whose
// Deferred always resolves to a Result.
func Resultify0[T any](f func(ctx context.Context) *core.Deferred[T]) func(ctx context.Context) *core.Deferred[rop.Result[T, error]] {
	return func(ctx context.Context) *core.Deferred[rop.Result[T, error]] {
		return mass.ToResult(ctx, call(func() *core.Deferred[T] { return f(ctx) }))
	}
}

func Resultify[A, T any](f func(ctx context.Context, a A) *core.Deferred[T]) func(ctx context.Context,
	a A) *core.Deferred[rop.Result[T, error]] {
	return func(ctx context.Context, a A) *core.Deferred[rop.Result[T, error]] {
		return mass.ToResult(ctx, call(func() *core.Deferred[T] { return f(ctx, a) }))
	}
}

func Resultify2[A, B, T any](f func(ctx context.Context, a A, b B) *core.Deferred[T]) func(ctx context.Context,
	a A, b B) *core.Deferred[rop.Result[T, error]] {
	return func(ctx context.Context, a A, b B) *core.Deferred[rop.Result[T, error]] {
		return mass.ToResult(ctx, call(func() *core.Deferred[T] { return f(ctx, a, b) }))
	}
}

// call invokes f, turning a synchronous panic into a rejected Deferred.
func call[T any](f func() *core.Deferred[T]) (d *core.Deferred[T]) {
	defer func() {
		if p := recover(); p != nil {
			d = core.Reject[T](&rop.PanicError{Value: p, Stack: debug.Stack()})
		}
	}()
	return f()
}
