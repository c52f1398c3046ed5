package rop

import "reflect"

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// AsError returns v when it is a non-nil error, nil otherwise.
func AsError(v any) error {
	if IsNil(v) {
		return nil
	}
	if err, ok := v.(error); ok {
		return err
	}
	return nil
}
