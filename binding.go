package mapper

import (
	"fmt"
	"reflect"
)

// Binding assigns one destination member from a value computed off the source.
// Build bindings with Bind, BindContext, BindConvert, Nested or NestedSlice.
type Binding[TIn any] struct {
	Member string
	typ    reflect.Type // declared value type, nil when only known at run time
	value  func(src TIn, ctx *Context) (any, error)
}

// Bind binds member to a pure function of the source.
func Bind[TIn, V any](member string, fn func(src TIn) V) Binding[TIn] {
	return Binding[TIn]{
		Member: member,
		typ:    reflect.TypeFor[V](),
		value: func(src TIn, _ *Context) (any, error) {
			return fn(src), nil
		},
	}
}

// BindContext binds member to a function that may fail or map nested objects through ctx.
func BindContext[TIn, V any](member string, fn func(src TIn, ctx *Context) (V, error)) Binding[TIn] {
	return Binding[TIn]{
		Member: member,
		typ:    reflect.TypeFor[V](),
		value: func(src TIn, ctx *Context) (any, error) {
			v, err := fn(src, ctx)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
	}
}

// BindConvert binds member to get(src) passed through conv. The converter's result must be
// assignable or convertible to the member's type; this is checked on every assignment.
func BindConvert[TIn any](member string, get func(src TIn) any, conv ConverterFunc) Binding[TIn] {
	return Binding[TIn]{
		Member: member,
		value: func(src TIn, _ *Context) (any, error) {
			v := get(src)
			if conv == nil {
				return v, nil
			}
			return conv(v)
		},
	}
}

// Nested binds member to the mapping of get(src) from VIn to VOut, resolved through the
// registry and context of the running operation.
func Nested[TIn, VIn, VOut any](member string, get func(src TIn) VIn) Binding[TIn] {
	return BindContext(member, func(src TIn, ctx *Context) (VOut, error) {
		return MapWith[VIn, VOut](ctx, get(src))
	})
}

// NestedSlice binds member to the element-wise mapping of get(src).
func NestedSlice[TIn, VIn, VOut any](member string, get func(src TIn) []VIn) Binding[TIn] {
	return BindContext(member, func(src TIn, ctx *Context) ([]VOut, error) {
		return MapSliceWith[VIn, VOut](ctx, get(src))
	})
}

// assignment is one compiled step of a member-init plan.
type assignment[TIn any] struct {
	member  string
	index   []int
	typ     reflect.Type // field type
	dynamic bool         // value type only known at run time
	convert bool         // declared type converts, rather than assigns, to typ
	value   func(src TIn, ctx *Context) (any, error)
}

func (a *assignment[TIn]) set(field reflect.Value, v any) error {
	if v == nil {
		field.Set(reflect.Zero(a.typ))
		return nil
	}
	rv := reflect.ValueOf(v)
	switch {
	case a.convert:
		field.Set(rv.Convert(a.typ))
	case !a.dynamic:
		field.Set(rv)
	case rv.Type().AssignableTo(a.typ):
		field.Set(rv)
	case convertible(rv.Type(), a.typ):
		field.Set(rv.Convert(a.typ))
	default:
		return fmt.Errorf("converter returned type %s, expected %s", rv.Type(), a.typ)
	}
	return nil
}

// convertible reports whether a value of type from may be converted to type to without changing
// what it denotes: between numeric kinds, or between types of one kind sharing an underlying type.
// Integer to string and slice to array conversions are refused.
func convertible(from, to reflect.Type) bool {
	if !from.ConvertibleTo(to) {
		return false
	}
	if isNumeric(from.Kind()) && isNumeric(to.Kind()) {
		return true
	}
	return from.Kind() == to.Kind()
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
