package mapper

import (
	"log/slog"
	"reflect"
	"sort"
	"sync"
	"sync/atomic"
)

type Options struct {
	Logger *slog.Logger // receives configuration and compilation events; nothing is logged per object
}

type Option func(*Options)

func WithLogger(l *slog.Logger) Option { return func(o *Options) { o.Logger = l } }

type typePair struct {
	in  reflect.Type
	out reflect.Type
}

// entry is the type-erased view of a Definition held by the registry.
type entry interface {
	pair() typePair
	mapAny(src any, ctx *Context) (any, error)
	warm()
}

// definitionTable is swapped atomically (copy-on-write) so that lookups never take a lock.
type definitionTable struct {
	byPair map[typePair]entry
}

// Registry holds one Definition per (source, destination) type pair.
//
// Registration is a configuration step. The first mapping operation freezes the registry, after
// which Register fails with ErrRegistryFrozen. Lookups are lock-free and safe for concurrent use.
type Registry struct {
	definitions   atomic.Value // holds *definitionTable
	mu            sync.Mutex   // serializes writers
	frozen        atomic.Bool
	metadataCache sync.Map // map[reflect.Type]*structMetadata
	options       Options
}

// New creates an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{}
	o := Options{}
	for _, f := range opts {
		f(&o)
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	r.options = o
	r.definitions.Store(&definitionTable{byPair: make(map[typePair]entry)})
	return r
}

func (r *Registry) logger() *slog.Logger { return r.options.Logger }

func (r *Registry) table() *definitionTable { return r.definitions.Load().(*definitionTable) }

// Freeze ends the configuration phase. It is called implicitly by every mapping operation.
func (r *Registry) Freeze() {
	if r.frozen.Load() {
		return
	}
	if r.frozen.CompareAndSwap(false, true) {
		r.logger().Debug("registry frozen", slog.Int("definitions", len(r.table().byPair)))
	}
}

// Frozen reports whether the registry still accepts registrations.
func (r *Registry) Frozen() bool { return r.frozen.Load() }

// Warm compiles the lazy forms of every definition. Compilation failures stay memoized and are
// reported when the failing form is used.
func (r *Registry) Warm() {
	for _, e := range r.table().byPair {
		e.warm()
	}
}

// Pairs lists the registered (source, destination) type pairs.
func (r *Registry) Pairs() [][2]reflect.Type {
	t := r.table()
	out := make([][2]reflect.Type, 0, len(t.byPair))
	for p := range t.byPair {
		out = append(out, [2]reflect.Type{p.in, p.out})
	}
	sort.Slice(out, func(i, j int) bool {
		if a, b := out[i][0].String(), out[j][0].String(); a != b {
			return a < b
		}
		return out[i][1].String() < out[j][1].String()
	})
	return out
}

func (r *Registry) add(e entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := e.pair()
	if r.frozen.Load() {
		r.logger().Warn("registration rejected", slog.String("in", p.in.String()), slog.String("out", p.out.String()), slog.String("reason", "frozen"))
		return pairError(ErrRegistryFrozen, p.in, p.out, "")
	}
	old := r.table()
	if _, exists := old.byPair[p]; exists {
		r.logger().Warn("registration rejected", slog.String("in", p.in.String()), slog.String("out", p.out.String()), slog.String("reason", "duplicate"))
		return pairError(ErrDuplicateRegistration, p.in, p.out, "")
	}
	next := &definitionTable{byPair: make(map[typePair]entry, len(old.byPair)+1)}
	for k, v := range old.byPair {
		next.byPair[k] = v
	}
	next.byPair[p] = e
	r.definitions.Store(next)
	return nil
}

func (r *Registry) lookup(in, out reflect.Type) (entry, error) {
	if e, ok := r.table().byPair[typePair{in: in, out: out}]; ok {
		return e, nil
	}
	return nil, pairError(ErrUnregisteredTypePair, in, out, "")
}
