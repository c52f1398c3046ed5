package core

import "context"

// Locomotive awaits start and then drives the value through engines in
// order, awaiting each engine's output before the next one starts. The
// first rejection stops the run and is returned; later engines are not
// called. onStep, when set, observes every settled intermediate value.
func Locomotive[T any](ctx context.Context, start *Deferred[T],
	engines []func(ctx context.Context, in T) *Deferred[T],
	onStep func(ctx context.Context, step int, out T)) (T, error) {

	if start == nil {
		var zero T
		return zero, ErrNilDeferred
	}

	acc, err := start.Await(ctx)
	if err != nil {
		return acc, err
	}

	for i, engine := range engines {
		next := engine(ctx, acc)
		if next == nil {
			var zero T
			return zero, ErrNilDeferred
		}

		acc, err = next.Await(ctx)
		if err != nil {
			return acc, err
		}

		if onStep != nil {
			onStep(ctx, i, acc)
		}
	}

	return acc, nil
}
