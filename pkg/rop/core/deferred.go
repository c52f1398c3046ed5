package core

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/google/uuid"

	"github.com/ib-77/ropasync/pkg/rop"
)

var (
	ErrNilRejection = errors.New("deferred rejected with nil error")
	ErrNilDeferred  = errors.New("nil deferred value")
)

// Deferred is a value that becomes available once some work completes.
// It settles exactly once, either resolved with a value or rejected with
// an error, and can be awaited any number of times from any goroutine.
// Only Go, Resolve and Reject construct a usable Deferred.
type Deferred[T any] struct {
	id   uuid.UUID
	done chan struct{}
	val  T
	err  error
}

func newDeferred[T any]() *Deferred[T] {
	return &Deferred[T]{
		id:   uuid.New(),
		done: make(chan struct{}),
	}
}

// Go runs fn in its own goroutine and returns its eventual outcome.
// A panic inside fn rejects the Deferred with a *rop.PanicError.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Deferred[T] {
	d := newDeferred[T]()

	go func() {
		defer func() {
			if p := recover(); p != nil {
				var zero T
				d.settle(zero, &rop.PanicError{Value: p, Stack: debug.Stack()})
			}
		}()

		val, err := fn(ctx)
		d.settle(val, err)
	}()

	return d
}

// Resolve returns an already resolved Deferred.
func Resolve[T any](val T) *Deferred[T] {
	d := newDeferred[T]()
	d.settle(val, nil)
	return d
}

// Reject returns an already rejected Deferred. A nil err is replaced by
// ErrNilRejection so the rejection is never mistaken for success.
func Reject[T any](err error) *Deferred[T] {
	if err == nil {
		err = ErrNilRejection
	}
	d := newDeferred[T]()
	var zero T
	d.settle(zero, err)
	return d
}

func (d *Deferred[T]) settle(val T, err error) {
	d.val = val
	d.err = err
	close(d.done)
}

// Await blocks until d settles or ctx is done. A done ctx only stops the
// wait; the underlying work keeps running. A nil or zero Deferred, one not
// built by Go, Resolve or Reject, fails with ErrNilDeferred.
func (d *Deferred[T]) Await(ctx context.Context) (T, error) {
	if d == nil || d.done == nil {
		var zero T
		return zero, ErrNilDeferred
	}

	select {
	case <-d.done:
		return d.val, d.err
	default:
	}

	select {
	case <-d.done:
		return d.val, d.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done is closed once d has settled.
func (d *Deferred[T]) Done() <-chan struct{} {
	return d.done
}

func (d *Deferred[T]) ID() uuid.UUID {
	return d.id
}

func (d *Deferred[T]) String() string {
	select {
	case <-d.done:
		if d.err != nil {
			return fmt.Sprintf("Deferred(%s){rejected: %v}", d.id, d.err)
		}
		return fmt.Sprintf("Deferred(%s){resolved: %v}", d.id, d.val)
	default:
		return fmt.Sprintf("Deferred(%s){pending}", d.id)
	}
}
