package mapper

// Spec is a declarative description of how TOut is produced from TIn.
//
// MemberInit is the structured shape: "allocate a TOut and assign these members". Only that shape can
// be compiled into a cache-aware mapper and a populator. Transform and JSONTransform are opaque and
// support direct mapping only.
type Spec[TIn, TOut any] interface {
	// Shape names the specification form, as reported in errors.
	Shape() string
}

type memberInitSpec[TIn, TOut any] struct {
	bindings []Binding[TIn]
}

func (memberInitSpec[TIn, TOut]) Shape() string { return "MemberInit" }

// MemberInit describes TOut as a freshly allocated struct whose members are assigned by bindings,
// in order. TOut must be a pointer to a struct type.
func MemberInit[TIn, TOut any](bindings ...Binding[TIn]) Spec[TIn, TOut] {
	return memberInitSpec[TIn, TOut]{bindings: append([]Binding[TIn](nil), bindings...)}
}

type transformSpec[TIn, TOut any] struct {
	fn    func(src TIn, ctx *Context) (TOut, error)
	shape string
}

func (s transformSpec[TIn, TOut]) Shape() string { return s.shape }

// Transform describes TOut as the result of an arbitrary function of the source.
func Transform[TIn, TOut any](fn func(src TIn, ctx *Context) (TOut, error)) Spec[TIn, TOut] {
	return transformSpec[TIn, TOut]{fn: fn, shape: "Transform"}
}
