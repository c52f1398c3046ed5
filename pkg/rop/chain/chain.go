package chain

import (
	"context"

	"github.com/ib-77/ropasync/pkg/rop"
	"github.com/ib-77/ropasync/pkg/rop/attempt"
	"github.com/ib-77/ropasync/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[T, E any] struct {
	ctx    context.Context
	result rop.Result[T, E]
}

// Start creates a new chain from a rop.Result
func Start[T, E any](ctx context.Context, result rop.Result[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from an Ok value
func FromValue[E, T any](ctx context.Context, value T) *Chain[T, E] {
	return Start(ctx, rop.Ok[T, E](value))
}

// Result returns the underlying rop.Result
func (c *Chain[T, E]) Result() rop.Result[T, E] {
	return c.result
}

// Then chains a function that returns rop.Result[U, E]
func Then[T, U, E any](c *Chain[T, E], onOk func(context.Context, T) rop.Result[U, E]) *Chain[U, E] {
	return &Chain[U, E]{
		ctx: c.ctx,
		result: solo.ChainOk(func(data T) rop.Result[U, E] {
			return onOk(c.ctx, data)
		})(c.result),
	}
}

// ThenTry chains a function that returns (U, error); the error becomes the
// Error payload.
func ThenTry[T, U any](c *Chain[T, error], try func(context.Context, T) (U, error)) *Chain[U, error] {
	return Then(c, func(ctx context.Context, data T) rop.Result[U, error] {
		return attempt.Do[U, error](func() (U, error) { return try(ctx, data) })
	})
}

// Map chains a pure transformation function
func Map[T, U, E any](c *Chain[T, E], onOk func(context.Context, T) U) *Chain[U, E] {
	return &Chain[U, E]{
		ctx: c.ctx,
		result: solo.MapOk[E](func(data T) U {
			return onOk(c.ctx, data)
		})(c.result),
	}
}

// Rescue gives an Error a chance to recover into a new Result
func Rescue[T, E, F any](c *Chain[T, E], onError func(context.Context, E) rop.Result[T, F]) *Chain[T, F] {
	return &Chain[T, F]{
		ctx: c.ctx,
		result: solo.ChainError(func(message E) rop.Result[T, F] {
			return onError(c.ctx, message)
		})(c.result),
	}
}

// Ensure performs a side effect on Ok without changing the result
func (c *Chain[T, E]) Ensure(onOk func(context.Context, T)) *Chain[T, E] {
	return &Chain[T, E]{
		ctx: c.ctx,
		result: solo.OkSideEffect[E](func(data T) {
			onOk(c.ctx, data)
		})(c.result),
	}
}

// Finally collapses the chain into a final value using solo.Either
func Finally[T, E, Out any](c *Chain[T, E], onOk func(context.Context, T) Out,
	onError func(context.Context, E) Out) Out {
	return solo.Either(c.result,
		func(data T) Out { return onOk(c.ctx, data) },
		func(message E) Out { return onError(c.ctx, message) })
}
