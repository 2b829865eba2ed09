package mapper

import (
	"log/slog"
	"reflect"
	"sync"
)

// MapperFunc produces a destination from a source within a mapping context.
type MapperFunc[TIn, TOut any] func(src TIn, ctx *Context) (TOut, error)

// PopulatorFunc assigns a specification's members onto an existing destination and returns it.
type PopulatorFunc[TIn, TOut any] func(src TIn, dst TOut, ctx *Context) (TOut, error)

// Definition is the compiled mapping for one (TIn, TOut) pair. It is immutable once registered.
// The direct mapper is compiled at registration; the cache-aware mapper and the populator are
// compiled on first use and memoized, failures included.
type Definition[TIn, TOut any] struct {
	registry *Registry
	inType   reflect.Type
	outType  reflect.Type
	spec     Spec[TIn, TOut]
	plan     *plan[TIn] // nil unless spec is a MemberInit
	mapper   MapperFunc[TIn, TOut]

	lazyMapperWithCache func() (MapperFunc[TIn, TOut], error)
	lazyPopulator       func() (PopulatorFunc[TIn, TOut], error)
}

func newDefinition[TIn, TOut any](r *Registry, spec Spec[TIn, TOut]) (*Definition[TIn, TOut], error) {
	d := &Definition[TIn, TOut]{
		registry: r,
		inType:   reflect.TypeFor[TIn](),
		outType:  reflect.TypeFor[TOut](),
		spec:     spec,
	}
	switch s := spec.(type) {
	case memberInitSpec[TIn, TOut]:
		p, err := compilePlan[TIn, TOut](r, s.bindings)
		if err != nil {
			return nil, err
		}
		d.plan = p
		d.mapper = d.wrap(p.mapper())
	case transformSpec[TIn, TOut]:
		if s.fn == nil {
			return nil, pairError(ErrInvalidSpecification, d.inType, d.outType, "%s without a function", s.shape)
		}
		d.mapper = d.guard(s.fn)
	default:
		return nil, pairError(ErrInvalidSpecification, d.inType, d.outType, "unknown specification shape %s", spec.Shape())
	}
	d.lazyMapperWithCache = sync.OnceValues(d.compileMapperWithCache)
	d.lazyPopulator = sync.OnceValues(d.compilePopulator)
	return d, nil
}

// InType is the source type.
func (d *Definition[TIn, TOut]) InType() reflect.Type { return d.inType }

// OutType is the destination type.
func (d *Definition[TIn, TOut]) OutType() reflect.Type { return d.outType }

// Spec returns the specification the definition was built from.
func (d *Definition[TIn, TOut]) Spec() Spec[TIn, TOut] { return d.spec }

// Mapper returns the direct mapper: it always builds a new destination and does no identity
// tracking at its own level. A nil ctx gets a fresh context.
func (d *Definition[TIn, TOut]) Mapper() MapperFunc[TIn, TOut] { return d.mapper }

// MapperWithCache returns the identity-aware mapper. For specifications other than MemberInit it is
// the direct mapper.
func (d *Definition[TIn, TOut]) MapperWithCache() (MapperFunc[TIn, TOut], error) {
	return d.lazyMapperWithCache()
}

// Populator returns the populator. It fails with ErrUnsupportedShape unless the specification is a
// MemberInit.
func (d *Definition[TIn, TOut]) Populator() (PopulatorFunc[TIn, TOut], error) {
	return d.lazyPopulator()
}

// Map runs the cache-aware mapper.
func (d *Definition[TIn, TOut]) Map(src TIn, ctx *Context) (TOut, error) {
	fn, err := d.MapperWithCache()
	if err != nil {
		var zero TOut
		return zero, err
	}
	return fn(src, ctx)
}

// Populate runs the populator.
func (d *Definition[TIn, TOut]) Populate(src TIn, dst TOut, ctx *Context) (TOut, error) {
	fn, err := d.Populator()
	if err != nil {
		var zero TOut
		return zero, err
	}
	return fn(src, dst, ctx)
}

func (d *Definition[TIn, TOut]) compileMapperWithCache() (MapperFunc[TIn, TOut], error) {
	if d.plan == nil {
		d.registry.logger().Debug("cache-aware mapper falls back to direct mapper",
			slog.String("in", d.inType.String()), slog.String("out", d.outType.String()), slog.String("shape", d.spec.Shape()))
		return d.mapper, nil
	}
	d.registry.logger().Debug("compiled cache-aware mapper",
		slog.String("in", d.inType.String()), slog.String("out", d.outType.String()), slog.Int("members", len(d.plan.steps)))
	return d.wrap(d.plan.mapperWithCache()), nil
}

func (d *Definition[TIn, TOut]) compilePopulator() (PopulatorFunc[TIn, TOut], error) {
	if d.plan == nil {
		return nil, pairError(ErrUnsupportedShape, d.inType, d.outType,
			"%s is not supported for population, register a MemberInit specification instead", d.spec.Shape())
	}
	d.registry.logger().Debug("compiled populator",
		slog.String("in", d.inType.String()), slog.String("out", d.outType.String()), slog.Int("members", len(d.plan.steps)))
	populate := d.plan.populator()
	return func(src TIn, dst TOut, ctx *Context) (TOut, error) {
		var zero TOut
		if isNilValue(dst) {
			return zero, pairError(ErrNilDestination, d.inType, d.outType, "")
		}
		if isNilValue(src) {
			return dst, nil
		}
		if ctx == nil {
			ctx = d.registry.NewContext()
		}
		if err := populate(src, reflect.ValueOf(dst), ctx); err != nil {
			return zero, err
		}
		return dst, nil
	}, nil
}

// wrap adapts a plan mode to the typed signature and applies the nil source and nil context rules.
func (d *Definition[TIn, TOut]) wrap(run func(TIn, *Context) (reflect.Value, error)) MapperFunc[TIn, TOut] {
	return func(src TIn, ctx *Context) (TOut, error) {
		var zero TOut
		if isNilValue(src) {
			return zero, nil
		}
		if ctx == nil {
			ctx = d.registry.NewContext()
		}
		v, err := run(src, ctx)
		if err != nil {
			return zero, err
		}
		return v.Interface().(TOut), nil
	}
}

func (d *Definition[TIn, TOut]) guard(fn func(TIn, *Context) (TOut, error)) MapperFunc[TIn, TOut] {
	return func(src TIn, ctx *Context) (TOut, error) {
		var zero TOut
		if isNilValue(src) {
			return zero, nil
		}
		if ctx == nil {
			ctx = d.registry.NewContext()
		}
		out, err := fn(src, ctx)
		if err != nil {
			return zero, err
		}
		return out, nil
	}
}

// pair, mapAny and warm let the registry hold definitions of any type pair.
func (d *Definition[TIn, TOut]) pair() typePair { return typePair{in: d.inType, out: d.outType} }

func (d *Definition[TIn, TOut]) mapAny(src any, ctx *Context) (any, error) {
	in, ok := src.(TIn)
	if !ok {
		return nil, pairError(ErrUnregisteredTypePair, reflect.TypeOf(src), d.outType, "")
	}
	return d.Map(in, ctx)
}

func (d *Definition[TIn, TOut]) warm() {
	_, _ = d.MapperWithCache()
	_, _ = d.Populator()
}
