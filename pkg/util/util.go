package util

import (
	"reflect"
)

// IsNil reports whether itf is nil or holds a nil pointer, map, slice,
// channel, func or interface.
func IsNil(itf interface{}) bool {
	if itf == nil {
		return true
	}

	switch v := reflect.ValueOf(itf); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}
