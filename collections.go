package mapper

import "fmt"

// MapSlice maps every element of in with one shared context, so elements referencing the same
// source object share one destination. A nil slice maps to nil.
func MapSlice[TIn, TOut any](r *Registry, in []TIn) ([]TOut, error) {
	return MapSliceWith[TIn, TOut](r.NewContext(), in)
}

// MapSliceWith is MapSlice within ctx.
func MapSliceWith[TIn, TOut any](ctx *Context, in []TIn) ([]TOut, error) {
	if in == nil {
		return nil, nil
	}
	if ctx == nil {
		return nil, ErrNilContext
	}
	ctx.registry.Freeze()
	d, err := Resolve[TIn, TOut](ctx.registry)
	if err != nil {
		return nil, err
	}
	fn, err := d.MapperWithCache()
	if err != nil {
		return nil, err
	}
	out := make([]TOut, len(in))
	for i, item := range in {
		v, err := fn(item, ctx)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}
