package mapper

// Registration registers one definition into a registry. Build them with Define.
type Registration func(r *Registry) error

// Define returns a Registration for spec, for use with Builder.Add.
func Define[TIn, TOut any](spec Spec[TIn, TOut]) Registration {
	return func(r *Registry) error {
		_, err := Register[TIn, TOut](r, spec)
		return err
	}
}

// Builder provides a fluent API to construct a frozen Registry with every mapping pre-registered.
type Builder struct {
	opts []Option
	regs []Registration
	warm bool
}

// NewBuilder creates a new builder.
func NewBuilder() *Builder { return &Builder{} }

// WithOptions appends registry options to the builder.
func (b *Builder) WithOptions(opts ...Option) *Builder { b.opts = append(b.opts, opts...); return b }

// Add appends registrations; they run in order on Build.
func (b *Builder) Add(regs ...Registration) *Builder { b.regs = append(b.regs, regs...); return b }

// Warm makes Build compile every lazy form before returning.
func (b *Builder) Warm() *Builder { b.warm = true; return b }

// Build registers everything and freezes the result. The first failing registration aborts.
func (b *Builder) Build() (*Registry, error) {
	r := New(b.opts...)
	for _, reg := range b.regs {
		if reg == nil {
			continue
		}
		if err := reg(r); err != nil {
			return nil, err
		}
	}
	if b.warm {
		r.Warm()
	}
	r.Freeze()
	return r, nil
}
