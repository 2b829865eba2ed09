package mapper

import (
	"log/slog"
	"reflect"
)

// Generic entry points as top-level functions (methods cannot have type parameters)

// Register compiles spec and stores it as the definition for (TIn, TOut).
func Register[TIn, TOut any](r *Registry, spec Spec[TIn, TOut]) (*Definition[TIn, TOut], error) {
	if spec == nil {
		return nil, pairError(ErrInvalidSpecification, reflect.TypeFor[TIn](), reflect.TypeFor[TOut](), "nil specification")
	}
	d, err := newDefinition[TIn, TOut](r, spec)
	if err != nil {
		r.logger().Warn("registration rejected", slog.String("in", reflect.TypeFor[TIn]().String()),
			slog.String("out", reflect.TypeFor[TOut]().String()), slog.Any("error", err))
		return nil, err
	}
	if err := r.add(d); err != nil {
		return nil, err
	}
	r.logger().Debug("registered mapping", slog.String("in", d.inType.String()),
		slog.String("out", d.outType.String()), slog.String("shape", spec.Shape()))
	return d, nil
}

// Resolve returns the definition registered for (TIn, TOut).
func Resolve[TIn, TOut any](r *Registry) (*Definition[TIn, TOut], error) {
	e, err := r.lookup(reflect.TypeFor[TIn](), reflect.TypeFor[TOut]())
	if err != nil {
		return nil, err
	}
	return e.(*Definition[TIn, TOut]), nil
}

// Map maps in to TOut with a fresh context.
func Map[TIn, TOut any](r *Registry, in TIn) (TOut, error) {
	return MapWith[TIn, TOut](r.NewContext(), in)
}

// MapWith maps in to TOut within ctx, reusing every instance ctx already holds.
func MapWith[TIn, TOut any](ctx *Context, in TIn) (TOut, error) {
	var zero TOut
	if ctx == nil {
		return zero, pairError(ErrNilContext, reflect.TypeFor[TIn](), reflect.TypeFor[TOut](), "")
	}
	ctx.registry.Freeze()
	d, err := Resolve[TIn, TOut](ctx.registry)
	if err != nil {
		return zero, err
	}
	return d.Map(in, ctx)
}

// MapTo maps in to TOut with a fresh context, resolving the source type from in's dynamic type.
func MapTo[TOut any](r *Registry, in any) (TOut, error) {
	return MapToWith[TOut](r.NewContext(), in)
}

// MapToWith is MapTo within ctx.
func MapToWith[TOut any](ctx *Context, in any) (TOut, error) {
	var zero TOut
	if ctx == nil {
		return zero, pairError(ErrNilContext, reflect.TypeOf(in), reflect.TypeFor[TOut](), "")
	}
	ctx.registry.Freeze()
	if in == nil {
		return zero, nil
	}
	e, err := ctx.registry.lookup(reflect.TypeOf(in), reflect.TypeFor[TOut]())
	if err != nil {
		return zero, err
	}
	out, err := e.mapAny(in, ctx)
	if err != nil || out == nil {
		return zero, err
	}
	return out.(TOut), nil
}

// Populate assigns the members bound for (TIn, TOut) from in onto out and returns out.
func Populate[TIn, TOut any](r *Registry, in TIn, out TOut) (TOut, error) {
	return PopulateWith(r.NewContext(), in, out)
}

// PopulateWith is Populate within ctx.
func PopulateWith[TIn, TOut any](ctx *Context, in TIn, out TOut) (TOut, error) {
	var zero TOut
	if ctx == nil {
		return zero, pairError(ErrNilContext, reflect.TypeFor[TIn](), reflect.TypeFor[TOut](), "")
	}
	ctx.registry.Freeze()
	d, err := Resolve[TIn, TOut](ctx.registry)
	if err != nil {
		return zero, err
	}
	return d.Populate(in, out, ctx)
}
