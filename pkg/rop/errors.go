package rop

import (
	"errors"
	"fmt"
)

var ErrInvalidResult = errors.New("invalid result")

// InvalidResultError reports a value used where a Result was required that
// holds neither variant, or a handler output that is neither a Result nor
// the expected payload type.
type InvalidResultError struct {
	Value any
}

func (e *InvalidResultError) Error() string {
	if e.Value == nil {
		return ErrInvalidResult.Error()
	}
	return fmt.Sprintf("%s: %v", ErrInvalidResult, e.Value)
}

func (e *InvalidResultError) Is(target error) bool {
	return target == ErrInvalidResult
}

// UnwrapError is returned when a Result is unwrapped on the wrong variant.
// Its message is the payload that was found instead.
type UnwrapError struct {
	Payload any
}

func (e *UnwrapError) Error() string {
	return fmt.Sprint(e.Payload)
}

func (e *UnwrapError) Unwrap() error {
	return AsError(e.Payload)
}

// PanicError is a panic recovered from deferred or unsafe work.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

func (e *PanicError) Unwrap() error {
	return AsError(e.Value)
}
