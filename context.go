package mapper

import "reflect"

type cacheKey struct {
	src identity
	out reflect.Type
}

type cacheEntry struct {
	src any // keeps the source reachable so its address cannot be reused while cached
	dst any
}

// undo restores one cache slot to what it held before a registration.
type undo struct {
	key  cacheKey
	prev cacheEntry
	had  bool
}

// Context is the scratch space of a single mapping operation. It remembers which destination
// instance was produced for each source identity so that cycles terminate and shared references stay
// shared in the output graph.
//
// A Context is not safe for concurrent use. Concurrent mapping operations each need their own.
type Context struct {
	registry *Registry
	cache    map[cacheKey]cacheEntry

	// registrations made while a cache-aware mapping is running, so a failed mapping can take back
	// every instance it left half built
	journal []undo
	depth   int
}

// NewContext returns an empty Context resolving nested mappings through r.
func (r *Registry) NewContext() *Context {
	return &Context{registry: r}
}

// Registry returns the registry nested mappings are resolved through.
func (c *Context) Registry() *Registry { return c.registry }

// Len reports how many source/destination pairs the context holds.
func (c *Context) Len() int { return len(c.cache) }

// TryGetFromCache returns the destination of type out previously registered for src.
func (c *Context) TryGetFromCache(src any, out reflect.Type) (any, bool) {
	id, ok := identityOf(src)
	if !ok || c.cache == nil {
		return nil, false
	}
	e, ok := c.cache[cacheKey{src: id, out: out}]
	if !ok {
		return nil, false
	}
	return e.dst, true
}

// RegisterNewInstance records dst as the destination produced for src. Registering the same
// source twice for the same destination type overwrites the earlier entry.
func (c *Context) RegisterNewInstance(src, dst any) {
	if dst == nil {
		return
	}
	c.register(src, reflect.TypeOf(dst), dst)
}

func (c *Context) register(src any, out reflect.Type, dst any) {
	id, ok := identityOf(src)
	if !ok {
		return
	}
	if c.cache == nil {
		c.cache = make(map[cacheKey]cacheEntry)
	}
	key := cacheKey{src: id, out: out}
	if c.depth > 0 {
		prev, had := c.cache[key]
		c.journal = append(c.journal, undo{key: key, prev: prev, had: had})
	}
	c.cache[key] = cacheEntry{src: src, dst: dst}
}

// begin opens a cache-aware mapping and returns the journal mark to roll back to.
func (c *Context) begin() int {
	c.depth++
	return len(c.journal)
}

// end closes the mapping opened at mark. On failure every registration made since mark is undone,
// including those of nested mappings that completed but may point at the failed instance.
func (c *Context) end(mark int, failed bool) {
	c.depth--
	if failed {
		for i := len(c.journal) - 1; i >= mark; i-- {
			u := c.journal[i]
			if u.had {
				c.cache[u.key] = u.prev
			} else {
				delete(c.cache, u.key)
			}
		}
		clear(c.journal[mark:])
		c.journal = c.journal[:mark]
	}
	if c.depth == 0 {
		clear(c.journal)
		c.journal = c.journal[:0]
	}
}

// FromCache is the typed form of Context.TryGetFromCache.
func FromCache[TOut any](c *Context, src any) (TOut, bool) {
	var zero TOut
	v, ok := c.TryGetFromCache(src, reflect.TypeFor[TOut]())
	if !ok {
		return zero, false
	}
	out, ok := v.(TOut)
	return out, ok
}
