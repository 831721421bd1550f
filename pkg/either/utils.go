package either

import "reflect"

// isAbsent reports whether v is a nil pointer, interface, map, slice, func
// or channel.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface,
		reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// nilable reports whether a value of type t can be nil.
func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface,
		reflect.UnsafePointer:
		return true
	default:
		return false
	}
}
