package collect

import (
	"github.com/samber/lo"

	"github.com/ib-77/ropasync/pkg/rop"
)

// Oks returns Ok with every payload, in input order, when all results are
// Ok. Otherwise it returns the first Error in input order; results after it
// are never unwrapped. An empty input gives Ok of an empty slice.
func Oks[T, E any](results []rop.Result[T, E]) rop.Result[[]T, E] {
	return lo.Reduce(results, func(acc rop.Result[[]T, E], r rop.Result[T, E], _ int) rop.Result[[]T, E] {
		if !acc.IsOk() {
			return acc
		}
		if !r.IsOk() {
			if r.IsError() {
				return rop.Error[[]T, E](r.Failure())
			}
			panic(&rop.InvalidResultError{Value: r})
		}
		return rop.Ok[[]T, E](append(acc.Value(), r.Value()))
	}, rop.Ok[[]T, E](make([]T, 0, len(results))))
}

// AllOk is the outcome-only form of Oks: Ok(Unit) when every result is Ok,
// else the first Error.
func AllOk[T, E any](results []rop.Result[T, E]) rop.Result[rop.Unit, E] {
	failed, found := lo.Find(results, func(r rop.Result[T, E]) bool {
		return !r.IsOk()
	})
	if !found {
		return rop.Ok[rop.Unit, E](rop.Unit{})
	}
	if !failed.IsError() {
		panic(&rop.InvalidResultError{Value: failed})
	}
	return rop.Error[rop.Unit, E](failed.Failure())
}

// FirstOk returns the first Ok in input order. Without one it returns
// Error(Unit): no particular failure is reported, use Oks or AllOk when the
// cause matters.
func FirstOk[T, E any](results []rop.Result[T, E]) rop.Result[T, rop.Unit] {
	found, ok := lo.Find(results, rop.IsOk[T, E])
	if !ok {
		return rop.Error[T, rop.Unit](rop.Unit{})
	}
	return rop.Ok[T, rop.Unit](found.Value())
}
