package core

import (
	"context"
	"errors"

	"github.com/ib-77/ropasync/pkg/rop"
)

var ErrChanClosed = errors.New("channel closed before a value was received")

// FromChan resolves with the first value received from ch, or rejects with
// ErrChanClosed if ch is closed first.
func FromChan[T any](ctx context.Context, ch <-chan T) *Deferred[T] {
	return Go(ctx, func(ctx context.Context) (T, error) {
		select {
		case v, ok := <-ch:
			if !ok {
				var zero T
				return zero, ErrChanClosed
			}
			return v, nil
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	})
}

// FromChanMany resolves with every value received from ch once it is closed.
func FromChanMany[T any](ctx context.Context, ch <-chan T) *Deferred[[]T] {
	return Go(ctx, func(ctx context.Context) ([]T, error) {
		res := make([]T, 0)
		for {
			select {
			case v, ok := <-ch:
				if !ok {
					return res, nil
				}
				res = append(res, v)
			case <-ctx.Done():
				return res, ctx.Err()
			}
		}
	})
}

// ToChan delivers d's outcome as a single Result and closes the channel.
// A rejection arrives as an Error carrying the rejection reason.
func ToChan[T any](ctx context.Context, d *Deferred[T]) <-chan rop.Result[T, error] {
	out := make(chan rop.Result[T, error], 1)

	go func() {
		defer close(out)

		v, err := d.Await(ctx)
		if err != nil {
			out <- rop.Error[T, error](err)
			return
		}
		out <- rop.Ok[T, error](v)
	}()

	return out
}
