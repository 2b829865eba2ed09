package mapper

import (
	"fmt"
	"reflect"
)

// plan is the compiled form of a MemberInit specification: the destination type plus an ordered
// list of member assignments. The direct, cache-aware and populate modes all run apply over the
// same steps and differ only in how the destination instance is obtained.
type plan[TIn any] struct {
	out   reflect.Type // *T
	steps []assignment[TIn]
}

func compilePlan[TIn, TOut any](r *Registry, bindings []Binding[TIn]) (*plan[TIn], error) {
	in := reflect.TypeFor[TIn]()
	out := reflect.TypeFor[TOut]()
	if out.Kind() != reflect.Pointer || out.Elem().Kind() != reflect.Struct {
		return nil, pairError(ErrInvalidSpecification, in, out, "MemberInit needs a pointer to struct destination")
	}
	meta := r.getOrBuildMetadata(out.Elem())
	p := &plan[TIn]{out: out, steps: make([]assignment[TIn], 0, len(bindings))}
	seen := make(map[string]bool, len(bindings))
	for _, b := range bindings {
		if b.value == nil {
			return nil, pairError(ErrInvalidSpecification, in, out, "member %s has no value", b.Member)
		}
		if seen[b.Member] {
			return nil, pairError(ErrInvalidSpecification, in, out, "member %s bound twice", b.Member)
		}
		seen[b.Member] = true
		if meta.ambiguous[b.Member] {
			return nil, pairError(ErrInvalidSpecification, in, out, "member %s is ambiguous", b.Member)
		}
		fi, ok := meta.fieldsByName[b.Member]
		if !ok {
			return nil, pairError(ErrInvalidSpecification, in, out, "no exported member %s", b.Member)
		}
		if fi.ignore {
			return nil, pairError(ErrInvalidSpecification, in, out, "member %s is tagged as ignored", b.Member)
		}
		step := assignment[TIn]{member: b.Member, index: fi.index, typ: fi.typ, value: b.value}
		switch {
		case b.typ == nil:
			step.dynamic = true
		case b.typ.AssignableTo(fi.typ):
		case convertible(b.typ, fi.typ):
			step.convert = true
		default:
			return nil, pairError(ErrInvalidSpecification, in, out, "member %s of type %s cannot take a %s", b.Member, fi.typ, b.typ)
		}
		p.steps = append(p.steps, step)
	}
	return p, nil
}

// alloc returns a new zeroed destination.
func (p *plan[TIn]) alloc() reflect.Value {
	return reflect.New(p.out.Elem())
}

// apply runs every assignment against dst, a non-nil pointer to the destination struct.
func (p *plan[TIn]) apply(src TIn, dst reflect.Value, ctx *Context) error {
	elem := dst.Elem()
	for i := range p.steps {
		s := &p.steps[i]
		v, err := s.value(src, ctx)
		if err != nil {
			return fmt.Errorf("binding %s: %w", s.member, err)
		}
		if err := s.set(fieldByIndexAlloc(elem, s.index), v); err != nil {
			return fmt.Errorf("binding %s: %w", s.member, err)
		}
	}
	return nil
}

func (p *plan[TIn]) mapper() func(TIn, *Context) (reflect.Value, error) {
	return func(src TIn, ctx *Context) (reflect.Value, error) {
		dst := p.alloc()
		if err := p.apply(src, dst, ctx); err != nil {
			return reflect.Value{}, err
		}
		return dst, nil
	}
}

func (p *plan[TIn]) mapperWithCache() func(TIn, *Context) (reflect.Value, error) {
	return func(src TIn, ctx *Context) (reflect.Value, error) {
		if hit, ok := ctx.TryGetFromCache(src, p.out); ok {
			return reflect.ValueOf(hit), nil
		}
		dst := p.alloc()
		mark, failed := ctx.begin(), true
		defer func() { ctx.end(mark, failed) }()
		// registered before any member runs so a cycle back to src resolves to dst
		ctx.register(src, p.out, dst.Interface())
		if err := p.apply(src, dst, ctx); err != nil {
			return reflect.Value{}, err
		}
		failed = false
		return dst, nil
	}
}

func (p *plan[TIn]) populator() func(TIn, reflect.Value, *Context) error {
	return func(src TIn, dst reflect.Value, ctx *Context) error {
		return p.apply(src, dst, ctx)
	}
}
