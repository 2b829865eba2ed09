package mapper

import "reflect"

// identity is a reference-identity key for a source value. Two distinct values that compare equal
// get distinct identities; the same pointer seen twice gets the same one.
//
// Pointers to zero-size values and slices without backing storage may share an address with
// unrelated values, so they have no identity.
type identity struct {
	typ reflect.Type
	ptr uintptr
	n   int // slice length, zero for other kinds
}

// identityOf returns the identity of v. Values without reference semantics (structs held by value,
// scalars, strings) and nil references have none.
func identityOf(v any) (identity, bool) {
	if v == nil {
		return identity{}, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() || rv.Type().Elem().Size() == 0 {
			return identity{}, false
		}
		return identity{typ: rv.Type(), ptr: rv.Pointer()}, true
	case reflect.Map, reflect.Chan, reflect.UnsafePointer:
		if rv.IsNil() {
			return identity{}, false
		}
		return identity{typ: rv.Type(), ptr: rv.Pointer()}, true
	case reflect.Slice:
		if rv.IsNil() || rv.Cap() == 0 || rv.Type().Elem().Size() == 0 {
			return identity{}, false
		}
		return identity{typ: rv.Type(), ptr: rv.Pointer(), n: rv.Len()}, true
	default:
		return identity{}, false
	}
}

// isNilValue reports whether v is nil or a typed nil of a nillable kind.
func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
