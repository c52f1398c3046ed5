package rop

// Variant is implemented by every Result regardless of its payload types.
// It lets code that only holds an `any` discriminate Results at runtime.
type Variant interface {
	// IsOk returns true for the Ok variant
	IsOk() bool
	// IsError returns true for the Error variant
	IsError() bool
	// String renders the variant and its payload
	String() string

	payloads() (ok any, err any)
}

// Payload returns the payload held by v's active variant, untyped.
// The bool is false when v is malformed or a nil *Result.
func Payload(v Variant) (any, bool) {
	if IsNil(v) {
		return nil, false
	}
	ok, err := v.payloads()
	switch {
	case v.IsOk():
		return ok, true
	case v.IsError():
		return err, true
	default:
		return nil, false
	}
}
