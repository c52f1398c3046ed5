package pipe

import (
	"context"
	"runtime/debug"

	"github.com/ib-77/ropasync/pkg/rop"
	"github.com/ib-77/ropasync/pkg/rop/core"
)

// Step is one unary stage of a pipe.
type Step[In, Out any] func(ctx context.Context, in In) *core.Deferred[Out]

// Sync wraps a plain function as a Step. A panic in f rejects the step.
func Sync[In, Out any](f func(in In) Out) Step[In, Out] {
	return func(ctx context.Context, in In) (d *core.Deferred[Out]) {
		defer func() {
			if p := recover(); p != nil {
				d = core.Reject[Out](&rop.PanicError{Value: p, Stack: debug.Stack()})
			}
		}()
		return core.Resolve(f(in))
	}
}

// Blocking runs f in its own goroutine; a non-nil error rejects the step.
func Blocking[In, Out any](f func(ctx context.Context, in In) (Out, error)) Step[In, Out] {
	return func(ctx context.Context, in In) *core.Deferred[Out] {
		return core.Go(ctx, func(ctx context.Context) (Out, error) {
			return f(ctx, in)
		})
	}
}

// Then composes two steps: the output of first, once settled, is the input
// of second.
func Then[A, B, C any](first Step[A, B], second Step[B, C]) Step[A, C] {
	return func(ctx context.Context, in A) *core.Deferred[C] {
		return core.Go(ctx, func(ctx context.Context) (C, error) {
			mid, err := await(ctx, first(ctx, in))
			if err != nil {
				var zero C
				return zero, err
			}
			return await(ctx, second(ctx, mid))
		})
	}
}

// PipeAsync awaits start and then runs every step in order on the running
// value. The result rejects with the first rejection; steps after it are
// not called. With no steps the result settles like start.
func PipeAsync[T any](ctx context.Context, start *core.Deferred[T], steps ...Step[T, T]) *core.Deferred[T] {
	if start == nil {
		return core.Reject[T](core.ErrNilDeferred)
	}

	engines := make([]func(ctx context.Context, in T) *core.Deferred[T], len(steps))
	for i, step := range steps {
		engines[i] = step
	}

	return core.Go(ctx, func(ctx context.Context) (T, error) {
		return core.Locomotive(ctx, start, engines, nil)
	})
}

// CreatePipeAsync fixes the steps of a pipe and returns it as a reusable
// function. Every call runs all steps again from the given value.
func CreatePipeAsync[T any](steps ...Step[T, T]) func(ctx context.Context, start T) *core.Deferred[T] {
	fixed := append([]Step[T, T](nil), steps...)
	return func(ctx context.Context, start T) *core.Deferred[T] {
		return PipeAsync(ctx, core.Resolve(start), fixed...)
	}
}

func Pipe2[A, B, C any](s1 Step[A, B], s2 Step[B, C]) Step[A, C] {
	return Then(s1, s2)
}

func Pipe3[A, B, C, D any](s1 Step[A, B], s2 Step[B, C], s3 Step[C, D]) Step[A, D] {
	return Then(Then(s1, s2), s3)
}

func Pipe4[A, B, C, D, E any](s1 Step[A, B], s2 Step[B, C], s3 Step[C, D], s4 Step[D, E]) Step[A, E] {
	return Then(Then(Then(s1, s2), s3), s4)
}

func await[T any](ctx context.Context, d *core.Deferred[T]) (T, error) {
	if d == nil {
		var zero T
		return zero, core.ErrNilDeferred
	}
	return d.Await(ctx)
}
