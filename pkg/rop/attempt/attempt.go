package attempt

import (
	"runtime/debug"

	"github.com/goccy/go-json"

	"github.com/ib-77/ropasync/pkg/rop"
)

type options[E any] struct {
	message    E
	hasMessage bool
	handler    func(fault error) E
}

// Option configures how a fault is turned into an Error payload.
type Option[E any] func(*options[E])

// WithMessage reports every fault as message.
func WithMessage[E any](message E) Option[E] {
	return func(o *options[E]) {
		o.message = message
		o.hasMessage = true
	}
}

// WithHandler derives the payload from the fault. It wins over WithMessage.
func WithHandler[E any](handler func(fault error) E) Option[E] {
	return func(o *options[E]) { o.handler = handler }
}

// Do calls action and wraps its value in Ok. A returned error or a panic
// is the fault. Without options the fault itself becomes the payload, which
// requires E to accept an error; otherwise Do panics with
// *rop.InvalidResultError.
func Do[T, E any](action func() (T, error), opts ...Option[E]) rop.Result[T, E] {
	cfg := &options[E]{}
	for _, o := range opts {
		o(cfg)
	}

	val, fault := run(action)
	if fault == nil {
		return rop.Ok[T, E](val)
	}

	switch {
	case cfg.handler != nil:
		return rop.Error[T, E](cfg.handler(fault))
	case cfg.hasMessage:
		return rop.Error[T, E](cfg.message)
	}

	payload, ok := any(fault).(E)
	if !ok {
		panic(&rop.InvalidResultError{Value: fault})
	}
	return rop.Error[T, E](payload)
}

// ParseJSON decodes data into a T. On failure the payload is the decoder's
// message unless WithMessage or WithHandler says otherwise.
func ParseJSON[T any](data string, opts ...Option[string]) rop.Result[T, string] {
	if len(opts) == 0 {
		opts = []Option[string]{WithHandler(func(fault error) string { return fault.Error() })}
	}

	return Do(func() (T, error) {
		var v T
		err := json.Unmarshal([]byte(data), &v)
		return v, err
	}, opts...)
}

func run[T any](action func() (T, error)) (val T, fault error) {
	defer func() {
		if p := recover(); p != nil {
			var zero T
			val, fault = zero, &rop.PanicError{Value: p, Stack: debug.Stack()}
		}
	}()
	return action()
}
