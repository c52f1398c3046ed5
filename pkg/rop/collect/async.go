package collect

import (
	"context"
	"runtime/debug"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/ropasync/pkg/rop"
	"github.com/ib-77/ropasync/pkg/rop/core"
)

// OksAsync waits for every deferred Result concurrently and then applies
// Oks to them in input order, whatever order they settled in. If any of
// them rejects, the aggregate resolves to Error with the first rejection
// reason observed. The returned Deferred never rejects.
func OksAsync[T any](ctx context.Context,
	inputs []*core.Deferred[rop.Result[T, error]]) *core.Deferred[rop.Result[[]T, error]] {
	return OksAsyncWith(ctx, inputs, func(reason error) error { return reason })
}

// OksAsyncWith is OksAsync for error payloads that are not error values:
// onReject turns a rejection reason into the payload type.
func OksAsyncWith[T, E any](ctx context.Context, inputs []*core.Deferred[rop.Result[T, E]],
	onReject func(reason error) E) *core.Deferred[rop.Result[[]T, E]] {

	return core.Go(ctx, func(ctx context.Context) (rop.Result[[]T, E], error) {
		settled, err := awaitAll(ctx, inputs)
		if err != nil {
			return rop.Error[[]T, E](onReject(err)), nil
		}
		return Oks(settled), nil
	})
}

// AllOkAsync is the outcome-only form of OksAsync.
func AllOkAsync[T any](ctx context.Context,
	inputs []*core.Deferred[rop.Result[T, error]]) *core.Deferred[rop.Result[rop.Unit, error]] {
	return AllOkAsyncWith(ctx, inputs, func(reason error) error { return reason })
}

// AllOkAsyncWith is AllOkAsync for error payloads that are not error values.
func AllOkAsyncWith[T, E any](ctx context.Context, inputs []*core.Deferred[rop.Result[T, E]],
	onReject func(reason error) E) *core.Deferred[rop.Result[rop.Unit, E]] {

	return core.Go(ctx, func(ctx context.Context) (rop.Result[rop.Unit, E], error) {
		settled, err := awaitAll(ctx, inputs)
		if err != nil {
			return rop.Error[rop.Unit, E](onReject(err)), nil
		}
		return AllOk(settled), nil
	})
}

// TraverseAsync starts f for every item and aggregates the outcomes like
// OksAsync. At most core.GetWorkerMaxCount(ctx, 0) calls of f are in flight
// at once; zero or less means no bound.
func TraverseAsync[A, T any](ctx context.Context, items []A,
	f func(ctx context.Context, item A) *core.Deferred[rop.Result[T, error]]) *core.Deferred[rop.Result[[]T, error]] {

	return core.Go(ctx, func(ctx context.Context) (rop.Result[[]T, error], error) {
		settled := make([]rop.Result[T, error], len(items))
		g := &errgroup.Group{}
		if limit := core.GetWorkerMaxCount(ctx, 0); limit > 0 {
			g.SetLimit(limit)
		}

		for i, item := range items {
			g.Go(func() (err error) {
				defer func() {
					if p := recover(); p != nil {
						err = &rop.PanicError{Value: p, Stack: debug.Stack()}
					}
				}()

				settled[i], err = awaitOne(ctx, f(ctx, item))
				return err
			})
		}

		if err := g.Wait(); err != nil {
			return rop.Error[[]T, error](err), nil
		}
		return Oks(settled), nil
	})
}

func awaitAll[T any](ctx context.Context, inputs []*core.Deferred[T]) ([]T, error) {
	settled := make([]T, len(inputs))
	g := &errgroup.Group{}

	for i, d := range inputs {
		g.Go(func() error {
			v, err := awaitOne(ctx, d)
			settled[i] = v
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return settled, nil
}

func awaitOne[T any](ctx context.Context, d *core.Deferred[T]) (T, error) {
	if d == nil {
		var zero T
		return zero, core.ErrNilDeferred
	}
	return d.Await(ctx)
}
